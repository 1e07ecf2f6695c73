package events

import (
	"time"
)

// Event is implemented by everything published on the bus
type Event interface {
	// Type is the dotted event name used for filtering, e.g. "cell.revealed"
	Type() string
	Timestamp() time.Time
	GameID() string
}

// BaseEvent carries the fields shared by every game event
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Game      string    `json:"game_id"`
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) GameID() string       { return e.Game }

// EventHandler handles a single event type registered through SubscribeFunc
type EventHandler func(Event)

// Subscriber receives every event type it reports interest in
type Subscriber interface {
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}

// Bus is satisfied by *EventBus
type Bus interface {
	Publish(Event)
	Subscribe(Subscriber)
	Unsubscribe(subscriberID string)
	SubscribeFunc(eventType string, handler EventHandler) string
}

var _ Bus = (*EventBus)(nil)
