package slider

import (
	"time"

	"github.com/sgostarter/i/l"

	"swipedeck/internal/gesture"
)

// SwipeThreshold is the horizontal distance in pixels a gesture must exceed to
// count as a swipe.
const SwipeThreshold = 50.0

// DefaultSlideSpeed is used when Options.SlideSpeed is left at zero.
const DefaultSlideSpeed = 300 * time.Millisecond

// Phase is the lifecycle stage of the slider.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	default:
		return "idle"
	}
}

// State is a snapshot of the slider.
type State struct {
	Index          int
	ItemCount      int
	Phase          Phase
	IsScrolling    bool
	IsScrollLocked bool
	DeltaX         float64
	DeltaY         float64
	Origin         gesture.Sample
}

// SlideInfo describes a committed move as seen by BeforeSlide.
type SlideInfo struct {
	CurrentSlide int
	NextSlide    int
}

// Callbacks are the host hooks invoked around a committed slide, in this order:
// BeforeSlide, OnAdvance or OnRetreat, then AfterSlide once the transition ends.
type Callbacks struct {
	BeforeSlide func(info SlideInfo)
	AfterSlide  func(currentSlide int)
	OnAdvance   func(nextSlide int)
	OnRetreat   func(nextSlide int)
	// OnSnapBack fires when a released drag returns to its pane. It is not
	// part of the slide sequence.
	OnSnapBack func(index int)
}

// Options configures one slider instance. They are copied on construction.
type Options struct {
	SlideSpeed     time.Duration
	Ease           string
	InitialIndex   int
	ItemCount      int
	SwipeThreshold float64
	Callbacks      Callbacks
	Logger         l.Wrapper
}

func (o Options) normalized() Options {
	if o.SlideSpeed <= 0 {
		o.SlideSpeed = DefaultSlideSpeed
	}
	if o.SwipeThreshold <= 0 {
		o.SwipeThreshold = SwipeThreshold
	}
	if o.ItemCount < 1 {
		o.ItemCount = 1
	}
	o.InitialIndex = clamp(o.InitialIndex, 0, o.ItemCount-1)
	if o.Logger == nil {
		o.Logger = l.NewNopLoggerWrapper()
	}
	return o
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
