package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"swipedeck/internal/deck"
	"swipedeck/internal/transition"
	"swipedeck/internal/ui/animation"
)

// Surface is the terminal side of a deck: it turns renderer commands into an
// animated horizontal position, reports transition ends and carries the
// input bindings installed by the controller.
type Surface struct {
	paneWidth     int
	pixelsPerCell float64
	frame         time.Duration
	now           func() time.Time

	pos   float64 // left edge of the viewport, in cells from the start of pane 0
	tween *animation.Tween
	gen   uint64
	kick  bool

	input      *deck.InputHandlers
	completion func()
	cleaner    func() bool
}

// NewSurface creates a surface with panes paneWidth cells wide.
func NewSurface(paneWidth int, pixelsPerCell float64, frame time.Duration) *Surface {
	if pixelsPerCell <= 0 {
		pixelsPerCell = 1
	}
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	return &Surface{
		paneWidth:     max(paneWidth, 1),
		pixelsPerCell: pixelsPerCell,
		frame:         frame,
		now:           time.Now,
	}
}

// Render implements transition.Renderer.
func (s *Surface) Render(cmd transition.Command) {
	target := s.target(cmd)
	s.gen++
	if cmd.Duration <= 0 {
		s.pos = target
		s.tween = nil
		return
	}
	ease, _ := animation.Lookup(cmd.Ease)
	s.tween = &animation.Tween{
		From:     s.pos,
		To:       target,
		Start:    s.now(),
		Duration: cmd.Duration,
		Ease:     ease,
	}
	s.kick = true
}

func (s *Surface) target(cmd transition.Command) float64 {
	pos := float64(cmd.Index * s.paneWidth)
	if px, ok := cmd.Offset.Pixels(); ok {
		pos += px / s.pixelsPerCell
	}
	return pos
}

// TakeCmd returns the frame tick for an animation started since the last
// call, or nil.
func (s *Surface) TakeCmd() tea.Cmd {
	if !s.kick || s.tween == nil {
		s.kick = false
		return nil
	}
	s.kick = false
	return s.tick(s.gen)
}

func (s *Surface) tick(gen uint64) tea.Cmd {
	return tea.Tick(s.frame, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

// Advance moves the running animation to msg.at. The completion handler runs
// when the final frame lands; frames of superseded animations are dropped.
func (s *Surface) Advance(msg frameMsg) tea.Cmd {
	if msg.gen != s.gen || s.tween == nil {
		return nil
	}
	pos, done := s.tween.At(msg.at)
	s.pos = pos
	if !done {
		return s.tick(msg.gen)
	}
	s.tween = nil
	if s.completion != nil {
		s.completion()
	}
	// the completion may have started another transition
	return s.TakeCmd()
}

// Animating reports whether a transition is in flight.
func (s *Surface) Animating() bool { return s.tween != nil }

// Position returns the viewport's left edge in cells.
func (s *Surface) Position() float64 { return s.pos }

// PaneWidth returns the width of one pane in cells.
func (s *Surface) PaneWidth() int { return s.paneWidth }

// Resize changes the pane width and snaps to index without animating. A
// transition cut short by the resize counts as landed.
func (s *Surface) Resize(paneWidth, index int) {
	s.paneWidth = max(paneWidth, 1)
	s.gen++
	s.pos = float64(index * s.paneWidth)
	if s.tween == nil {
		return
	}
	s.tween = nil
	if s.completion != nil {
		s.completion()
	}
}

// Sample converts a terminal cell to pointer coordinates. Rows are counted
// as twice as tall as columns are wide.
func (s *Surface) Sample(x, y int) (float64, float64) {
	return float64(x) * s.pixelsPerCell, float64(y) * s.pixelsPerCell * 2
}

// BindInput implements deck.InputSource.
func (s *Surface) BindInput(h deck.InputHandlers) { s.input = &h }

// UnbindInput implements deck.InputSource.
func (s *Surface) UnbindInput() { s.input = nil }

// Input returns the bound handlers, or nil.
func (s *Surface) Input() *deck.InputHandlers { return s.input }

// BindCompletion implements deck.CompletionSource.
func (s *Surface) BindCompletion(fn func()) { s.completion = fn }

// UnbindCompletion implements deck.CompletionSource.
func (s *Surface) UnbindCompletion() { s.completion = nil }

// SetCleaner installs the pane content normalizer.
func (s *Surface) SetCleaner(fn func() bool) { s.cleaner = fn }

// Clean implements deck.Cleaner.
func (s *Surface) Clean() bool {
	if s.cleaner == nil {
		return false
	}
	return s.cleaner()
}
