package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideStarted   EventType = "SlideStarted"
	EventAdvanced       EventType = "Advanced"
	EventRetreated      EventType = "Retreated"
	EventSlideCompleted EventType = "SlideCompleted"
	EventSnappedBack    EventType = "SnappedBack"
	EventItemsUpdated   EventType = "ItemsUpdated"
	EventDeckCleaned    EventType = "DeckCleaned"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
	EventDeckDestroyed  EventType = "DeckDestroyed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlideStartedEvent is emitted right before a committed slide changes the index
type SlideStartedEvent struct {
	Current int
	Next    int
}

func (e SlideStartedEvent) Type() EventType { return EventSlideStarted }

// AdvancedEvent is emitted when the deck moves forward
type AdvancedEvent struct {
	Next int
}

func (e AdvancedEvent) Type() EventType { return EventAdvanced }

// RetreatedEvent is emitted when the deck moves back
type RetreatedEvent struct {
	Next int
}

func (e RetreatedEvent) Type() EventType { return EventRetreated }

// SlideCompletedEvent is emitted once the transition of a committed slide finishes
type SlideCompletedEvent struct {
	Current int
}

func (e SlideCompletedEvent) Type() EventType { return EventSlideCompleted }

// SnappedBackEvent is emitted when a released drag returns to its pane
type SnappedBackEvent struct {
	Index int
}

func (e SnappedBackEvent) Type() EventType { return EventSnappedBack }

// ItemsUpdatedEvent is emitted when the number of panes changes
type ItemsUpdatedEvent struct {
	Count int
}

func (e ItemsUpdatedEvent) Type() EventType { return EventItemsUpdated }

// DeckCleanedEvent is emitted after stale panes were removed
type DeckCleanedEvent struct {
	Removed int
}

func (e DeckCleanedEvent) Type() EventType { return EventDeckCleaned }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Panes int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// DeckDestroyedEvent is emitted when the deck controller is torn down
type DeckDestroyedEvent struct{}

func (e DeckDestroyedEvent) Type() EventType { return EventDeckDestroyed }
