package gesture

import "math"

// Intent is the latched classification of a single gesture.
type Intent int

const (
	// IntentUndecided means no sample has been classified yet.
	IntentUndecided Intent = iota
	// IntentSwipe means the gesture is locked to horizontal navigation.
	IntentSwipe
	// IntentScroll means the gesture belongs to native vertical scrolling.
	IntentScroll
)

func (i Intent) String() string {
	switch i {
	case IntentSwipe:
		return "swipe"
	case IntentScroll:
		return "scroll"
	default:
		return "undecided"
	}
}

// IsScrolling decides whether a gesture is a scroll given the current flags and
// the offset from the gesture origin. Once scrolling it stays scrolling, and a
// scroll-locked gesture never becomes one. Equal absolute deltas count as scroll.
func IsScrolling(isScrolling, isScrollLocked bool, deltaX, deltaY float64) bool {
	if isScrolling {
		return true
	}
	return !isScrollLocked && math.Abs(deltaY) >= math.Abs(deltaX)
}

// Next advances the intent with a new pair of deltas. Scroll and swipe are
// both terminal for the rest of the gesture.
func (i Intent) Next(deltaX, deltaY float64) Intent {
	switch i {
	case IntentScroll, IntentSwipe:
		return i
	}
	if IsScrolling(false, false, deltaX, deltaY) {
		return IntentScroll
	}
	if deltaX != 0 {
		return IntentSwipe
	}
	return IntentUndecided
}
