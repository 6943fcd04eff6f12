package animation

import "time"

// Tween interpolates a scalar between two values over a fixed duration.
type Tween struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
	Ease     EaseFunc
}

// At returns the value at now and whether the tween has finished.
func (tw Tween) At(now time.Time) (float64, bool) {
	if tw.Duration <= 0 {
		return tw.To, true
	}
	p := float64(now.Sub(tw.Start)) / float64(tw.Duration)
	if p >= 1 {
		return tw.To, true
	}
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	return tw.From + (tw.To-tw.From)*ease(p), false
}
