// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-carrier/pkg/physics"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted       Type = "game_started"
	GameEnded         Type = "game_ended"
	AircraftLaunched  Type = "aircraft_launched"
	AircraftRecovered Type = "aircraft_recovered"
	LaunchDenied      Type = "launch_denied"
	GoalChanged       Type = "goal_changed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// FleetEvent describes a change in the carrier's fleet: a launch, a
// denied launch or a recovery. ActiveCount and CooldownCount are the
// fleet totals after the change.
type FleetEvent struct {
	BaseEvent
	AircraftID    uint64
	ActiveCount   int
	CooldownCount int
}

// NewFleetEvent creates a new fleet event
func NewFleetEvent(eventType Type, source interface{}, aircraftID uint64, active, cooldown int) *FleetEvent {
	return &FleetEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		AircraftID:    aircraftID,
		ActiveCount:   active,
		CooldownCount: cooldown,
	}
}

// GoalEvent carries the new shared goal position
type GoalEvent struct {
	BaseEvent
	Position physics.Vector2D
}

// NewGoalEvent creates a new goal event
func NewGoalEvent(source interface{}, position physics.Vector2D) *GoalEvent {
	return &GoalEvent{
		BaseEvent: BaseEvent{
			EventType: GoalChanged,
			Source:    source,
		},
		Position: position,
	}
}
