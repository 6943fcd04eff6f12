package transition

import "time"

// LinearEase is the timing function used for live drag-follow commands.
const LinearEase = "linear"

// Offset is an optional pixel fine-tune on top of the canonical pane position.
type Offset struct {
	px  float64
	set bool
}

// Canonical is the index-derived resting position with no fine-tune.
func Canonical() Offset { return Offset{} }

// Pixels shifts the view px pixels past the canonical position.
func Pixels(px float64) Offset { return Offset{px: px, set: true} }

// Pixels returns the fine-tune and whether one is present.
func (o Offset) Pixels() (float64, bool) { return o.px, o.set }

// IsCanonical reports whether the offset carries no fine-tune.
func (o Offset) IsCanonical() bool { return !o.set }

// Command is the only instruction the core sends toward the display layer.
type Command struct {
	Index    int
	Duration time.Duration
	Ease     string
	Offset   Offset
}

// Renderer applies commands to a visible surface. A renderer signals completion
// of non-zero-duration commands through whatever channel its host wires to
// Sequencer.Complete.
type Renderer interface {
	Render(cmd Command)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(cmd Command)

func (f RendererFunc) Render(cmd Command) { f(cmd) }
