package events

import (
	"testing"
	"time"

	"github.com/mitchelldurbincs/proxx/internal/game/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus() *EventBus {
	return NewEventBus(zerolog.Nop())
}

func TestEventBus(t *testing.T) {
	bus := newTestBus()

	received := false
	var receivedEvent Event

	id := bus.SubscribeFunc(TypeGameStarted, func(e Event) {
		received = true
		receivedEvent = e
	})
	assert.Equal(t, "game.started_func_1", id)

	bus.Publish(NewGameStartedEvent("test-game", 8, 8, 10))

	assert.True(t, received, "Event handler should have been called")
	require.NotNil(t, receivedEvent)
	assert.Equal(t, TypeGameStarted, receivedEvent.Type())
	assert.Equal(t, "test-game", receivedEvent.GameID())

	started, ok := receivedEvent.(*GameStartedEvent)
	require.True(t, ok)
	assert.Equal(t, 8, started.Width)
	assert.Equal(t, 10, started.Mines)
}

func TestEventBusMultipleHandlers(t *testing.T) {
	bus := newTestBus()

	var order []int
	bus.SubscribeFunc(TypeCellRevealed, func(e Event) { order = append(order, 1) })
	bus.SubscribeFunc(TypeCellRevealed, func(e Event) { order = append(order, 2) })

	bus.Publish(NewCellRevealedEvent("test-game", core.Position{X: 1, Y: 2}, 0, 5, 5))

	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 2, bus.FuncHandlerCount(TypeCellRevealed))
	assert.Equal(t, 0, bus.FuncHandlerCount(TypeMineHit))
}

// TestSubscriber is a test implementation of Subscriber
type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBusSubscriber(t *testing.T) {
	bus := newTestBus()

	subscriber := &TestSubscriber{
		id: "test-subscriber",
		interestedTypes: map[string]bool{
			TypeGameStarted: true,
			TypeGameEnded:   true,
		},
	}

	bus.Subscribe(subscriber)
	assert.Equal(t, 1, bus.SubscriberCount())

	bus.Publish(NewGameStartedEvent("test-game", 3, 3, 1))
	bus.Publish(NewMineHitEvent("test-game", core.Position{X: 1, Y: 1}, 1))
	bus.Publish(NewGameEndedEvent("test-game", "Lost", 1, time.Second))

	require.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, TypeGameStarted, subscriber.receivedEvents[0].Type())
	assert.Equal(t, TypeGameEnded, subscriber.receivedEvents[1].Type())

	bus.Unsubscribe(subscriber.ID())
	assert.Equal(t, 0, bus.SubscriberCount())
	bus.Publish(NewGameStartedEvent("test-game", 3, 3, 1))

	assert.Len(t, subscriber.receivedEvents, 2)
}

func TestEventBusResubscribeReplaces(t *testing.T) {
	bus := newTestBus()

	first := &TestSubscriber{id: "dup"}
	second := &TestSubscriber{id: "dup"}
	bus.Subscribe(first)
	bus.Subscribe(second)

	bus.Publish(NewGameStartedEvent("g", 1, 1, 0))

	assert.Equal(t, 1, bus.SubscriberCount())
	assert.Empty(t, first.receivedEvents)
	assert.Len(t, second.receivedEvents, 1)
}

type panickingSubscriber struct{}

func (panickingSubscriber) ID() string               { return "panicker" }
func (panickingSubscriber) InterestedIn(string) bool { return true }
func (panickingSubscriber) HandleEvent(Event)        { panic("boom") }

func TestEventBusPanicIsolation(t *testing.T) {
	bus := newTestBus()
	bus.Subscribe(panickingSubscriber{})

	called := false
	bus.SubscribeFunc(TypeMineHit, func(Event) { panic("handler boom") })
	bus.SubscribeFunc(TypeMineHit, func(Event) { called = true })

	assert.NotPanics(t, func() {
		bus.Publish(NewMineHitEvent("g", core.Position{}, 2))
	})
	assert.True(t, called, "later handlers still run after a panic")
}

func TestEventConstructors(t *testing.T) {
	before := time.Now()

	revealed := NewCellRevealedEvent("g1", core.Position{X: 2, Y: 3}, 1, 4, 9)
	assert.Equal(t, TypeCellRevealed, revealed.Type())
	assert.Equal(t, core.Position{X: 2, Y: 3}, revealed.Position)
	assert.Equal(t, 1, revealed.AdjacentMines)
	assert.Equal(t, 4, revealed.Newly)
	assert.Equal(t, 9, revealed.RevealedTotal)
	assert.False(t, revealed.Timestamp().Before(before))

	transition := NewStateTransitionEvent("g1", "InProgress", "Won", "all safe cells revealed")
	assert.Equal(t, TypeStateTransition, transition.Type())
	assert.Equal(t, "InProgress", transition.FromPhase)
	assert.Equal(t, "Won", transition.ToPhase)
	assert.Equal(t, "g1", transition.GameID())
}
