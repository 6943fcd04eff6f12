package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/sgostarter/i/l"

	"swipedeck/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSlideStarted   = domain.EventSlideStarted
	EventAdvanced       = domain.EventAdvanced
	EventRetreated      = domain.EventRetreated
	EventSlideCompleted = domain.EventSlideCompleted
	EventSnappedBack    = domain.EventSnappedBack
	EventItemsUpdated   = domain.EventItemsUpdated
	EventDeckCleaned    = domain.EventDeckCleaned
	EventError          = domain.EventError
	EventConfigLoaded   = domain.EventConfigLoaded
	EventConfigSaved    = domain.EventConfigSaved
	EventDeckDestroyed  = domain.EventDeckDestroyed
)

// Re-export domain event types
type SlideStartedEvent = domain.SlideStartedEvent
type AdvancedEvent = domain.AdvancedEvent
type RetreatedEvent = domain.RetreatedEvent
type SlideCompletedEvent = domain.SlideCompletedEvent
type SnappedBackEvent = domain.SnappedBackEvent
type ItemsUpdatedEvent = domain.ItemsUpdatedEvent
type DeckCleanedEvent = domain.DeckCleanedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type DeckDestroyedEvent = domain.DeckDestroyedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    l.Wrapper
}

// New creates a new event bus. A nil logger discards bus diagnostics.
func New(logger l.Wrapper) EventBus {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		logger:    logger.WithFields(l.StringField(l.ClsKey, "eventbus")),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.logger.WithFields(l.StringField("event", string(event.Type()))).Debug("publishing")

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		b.logger.WithFields(l.StringField("event", string(event.Type()))).Error("event bus channel full, dropping event")
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and drops undelivered events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				b.deliver(s.handler, event)
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// deliver runs one handler, shielding the dispatcher from panics
func (b *bus) deliver(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.WithFields(
				l.StringField("event", string(event.Type())),
				l.StringField("panic", toString(r)),
				l.StringField("stack", string(debug.Stack())),
			).Error("event handler panic")
		}
	}()
	h(event)
}

func toString(v interface{}) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "non-string panic value"
}
