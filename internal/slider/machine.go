package slider

import (
	"math"

	"github.com/google/uuid"
	"github.com/sgostarter/i/l"

	"swipedeck/internal/gesture"
	"swipedeck/internal/transition"
)

// Machine owns the index and the drag/settle lifecycle of one slider.
// It is not safe for concurrent use; hosts drive it from a single event loop.
type Machine struct {
	id     string
	opts   Options
	logger l.Wrapper

	index     int
	itemCount int
	phase     Phase
	intent    gesture.Intent
	tracker   gesture.Tracker
	seq       *transition.Sequencer
	frozen    bool
}

// New creates a machine emitting renderer commands into r.
func New(r transition.Renderer, opts Options) *Machine {
	opts = opts.normalized()
	m := &Machine{
		id:        uuid.NewString(),
		opts:      opts,
		index:     opts.InitialIndex,
		itemCount: opts.ItemCount,
	}
	m.logger = opts.Logger.WithFields(l.StringField(l.ClsKey, "slider"), l.StringField("id", m.id))
	m.seq = transition.NewSequencer(r, func() int { return m.index })
	return m
}

// ID identifies the instance in logs.
func (m *Machine) ID() string { return m.id }

// State returns a snapshot of the current state.
func (m *Machine) State() State {
	dx, dy := m.tracker.Deltas()
	return State{
		Index:          m.index,
		ItemCount:      m.itemCount,
		Phase:          m.phase,
		IsScrolling:    m.intent == gesture.IntentScroll,
		IsScrollLocked: m.intent == gesture.IntentSwipe,
		DeltaX:         dx,
		DeltaY:         dy,
		Origin:         m.tracker.Origin(),
	}
}

// Frozen reports whether Freeze was called.
func (m *Machine) Frozen() bool { return m.frozen }

// Setup places the view at the initial index without animation.
func (m *Machine) Setup() {
	if m.frozen || m.index == 0 {
		return
	}
	m.seq.Emit(transition.Command{Index: m.index, Offset: transition.Canonical()})
}

// Start begins a gesture at s. Only the first sample of a gesture sets the
// origin. Gestures starting while a transition settles are ignored.
func (m *Machine) Start(s gesture.Sample) bool {
	if m.frozen {
		return false
	}
	switch m.phase {
	case PhaseSettling:
		m.logger.Debug("gesture ignored while settling")
		return false
	case PhaseDragging:
		return false
	}
	m.tracker.Begin(s)
	m.phase = PhaseDragging
	return true
}

// Move feeds one sample of the current gesture. It reports whether the host
// should suppress the event's default handling, which is the case once the
// gesture is locked to a swipe.
func (m *Machine) Move(s gesture.Sample) bool {
	if m.frozen || m.phase != PhaseDragging {
		return false
	}
	dx, dy := m.tracker.Update(s)
	m.intent = m.intent.Next(dx, dy)
	if m.intent != gesture.IntentSwipe {
		return false
	}
	if dx != 0 {
		m.seq.Emit(transition.Command{
			Index:  m.index,
			Ease:   transition.LinearEase,
			Offset: transition.Pixels(-dx),
		})
		m.seq.ArmRest()
	}
	return true
}

// End releases the current gesture. A scroll ends quietly; a swipe either
// commits a slide or snaps back to the current pane.
func (m *Machine) End() {
	if m.frozen || m.phase != PhaseDragging {
		return
	}
	dx, _ := m.tracker.Deltas()
	scrolling := m.intent == gesture.IntentScroll

	m.phase = PhaseIdle
	if !scrolling {
		isValid := math.Abs(dx) > m.opts.SwipeThreshold
		advance := dx < 0
		isOutOfBounds := (!advance && m.index == 0) || (advance && m.index == m.itemCount-1)

		if !isValid || isOutOfBounds || !m.commit(advance) {
			m.snapBack()
		}
	}

	m.tracker.Reset()
	m.intent = gesture.IntentUndecided
}

// Cancel is treated exactly like End.
func (m *Machine) Cancel() { m.End() }

// Slide moves one pane forward (advance) or back. It is a no-op at the
// boundary and while a gesture or transition is in progress.
func (m *Machine) Slide(advance bool) bool {
	if m.frozen {
		return false
	}
	if m.phase != PhaseIdle {
		m.logger.WithFields(l.StringField("phase", m.phase.String())).Debug("slide ignored")
		return false
	}
	return m.commit(advance)
}

// UpdateItems replaces the pane count. The index is deliberately left alone
// and is re-validated by the next slide or snap-back.
func (m *Machine) UpdateItems(n int) {
	if m.frozen {
		return
	}
	if n < 1 {
		m.logger.WithFields(l.IntField("items", n)).Debug("item count ignored")
		return
	}
	m.itemCount = n
}

// Complete delivers a transition-end signal from the renderer.
func (m *Machine) Complete() {
	if m.frozen {
		return
	}
	m.seq.Complete()
}

// Freeze detaches the completion hooks and stops all further mutation.
func (m *Machine) Freeze() {
	if m.frozen {
		return
	}
	m.seq.Detach()
	m.frozen = true
	m.logger.Debug("frozen")
}

func (m *Machine) commit(advance bool) bool {
	movement := -1
	if advance {
		movement = 1
	}
	next := clamp(m.index+movement, 0, m.itemCount-1)
	if next == m.index {
		return false
	}

	cb := m.opts.Callbacks
	if cb.BeforeSlide != nil {
		cb.BeforeSlide(SlideInfo{CurrentSlide: m.index, NextSlide: next})
	}
	if advance && cb.OnAdvance != nil {
		cb.OnAdvance(next)
	} else if !advance && cb.OnRetreat != nil {
		cb.OnRetreat(next)
	}
	m.logger.WithFields(l.IntField("from", m.index), l.IntField("to", next)).Debug("slide committed")
	m.index = next
	m.phase = PhaseSettling

	m.seq.Sequence(m.canonical(), func() {
		m.phase = PhaseIdle
		if cb.AfterSlide != nil {
			cb.AfterSlide(m.index)
		}
	})
	return true
}

func (m *Machine) snapBack() {
	// an earlier UpdateItems may have left the index past the last pane
	m.index = clamp(m.index, 0, m.itemCount-1)
	m.phase = PhaseSettling
	m.seq.Sequence(m.canonical(), func() {
		m.phase = PhaseIdle
	})
	if m.opts.Callbacks.OnSnapBack != nil {
		m.opts.Callbacks.OnSnapBack(m.index)
	}
}

func (m *Machine) canonical() transition.Command {
	return transition.Command{
		Index:    m.index,
		Duration: m.opts.SlideSpeed,
		Ease:     m.opts.Ease,
		Offset:   transition.Canonical(),
	}
}
