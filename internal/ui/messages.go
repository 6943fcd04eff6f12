package ui

import (
	"time"

	"swipedeck/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg drives one animation frame of transition generation gen
type frameMsg struct {
	gen uint64
	at  time.Time
}

// pagerMsg contains the result of a pager session
type pagerMsg struct {
	err error
}
