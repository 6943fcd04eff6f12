package ui

import "swipedeck/internal/gesture"

// inputEvent is a terminal input event handed to the deck controller. Its
// default action is whatever the model does when nobody prevented it.
type inputEvent struct {
	sample     gesture.Sample
	cancelable bool
	prevented  bool
	stopped    bool
}

func (e *inputEvent) Sample() gesture.Sample { return e.sample }
func (e *inputEvent) Cancelable() bool       { return e.cancelable }
func (e *inputEvent) PreventDefault()        { e.prevented = true }
func (e *inputEvent) StopPropagation()       { e.stopped = true }
