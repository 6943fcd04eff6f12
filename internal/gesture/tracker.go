package gesture

// Sample is one pointer position reported by the input source.
type Sample struct {
	X float64
	Y float64
}

// Tracker accumulates the offsets of one gesture relative to its first sample.
type Tracker struct {
	origin  Sample
	started bool
	deltaX  float64
	deltaY  float64
}

// Begin records the gesture origin. Only the first sample of a gesture counts;
// further calls before Reset are ignored.
func (t *Tracker) Begin(s Sample) bool {
	if t.started {
		return false
	}
	t.origin = s
	t.started = true
	t.deltaX, t.deltaY = 0, 0
	return true
}

// Update stores the offset from the origin to s and returns it.
func (t *Tracker) Update(s Sample) (deltaX, deltaY float64) {
	if !t.started {
		return 0, 0
	}
	t.deltaX = s.X - t.origin.X
	t.deltaY = s.Y - t.origin.Y
	return t.deltaX, t.deltaY
}

// Started reports whether a gesture is being tracked.
func (t *Tracker) Started() bool { return t.started }

// Origin returns the first sample of the current gesture.
func (t *Tracker) Origin() Sample { return t.origin }

// Deltas returns the last computed offsets.
func (t *Tracker) Deltas() (float64, float64) { return t.deltaX, t.deltaY }

// Reset returns the tracker to neutral values.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
