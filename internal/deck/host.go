package deck

import (
	"swipedeck/internal/gesture"
	"swipedeck/internal/transition"
)

// Event is one input event delivered by the host.
type Event interface {
	Sample() gesture.Sample
	Cancelable() bool
	PreventDefault()
	StopPropagation()
}

// InputHandlers are the gesture callbacks a controller installs on its host.
type InputHandlers struct {
	Start  func(Event)
	Move   func(Event)
	End    func(Event)
	Cancel func(Event)
}

// InputSource delivers gesture events to bound handlers.
type InputSource interface {
	BindInput(h InputHandlers)
	UnbindInput()
}

// CompletionSource delivers transition-end signals.
type CompletionSource interface {
	BindCompletion(fn func())
	UnbindCompletion()
}

// Cleaner normalizes pane content on demand. The result is informational.
type Cleaner interface {
	Clean() bool
}

// Host is the surface a controller drives.
type Host interface {
	transition.Renderer
	InputSource
	CompletionSource
	Cleaner
}
