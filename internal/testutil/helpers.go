package testutil

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/mitchelldurbincs/proxx/internal/game/events"
	"github.com/rs/zerolog"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// AssertPanic asserts that the given function panics
func AssertPanic(t *testing.T, f func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic but none occurred: %v", msgAndArgs)
		}
	}()
	f()
}

// EventRecorder is a subscriber that keeps every event it receives
type EventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *EventRecorder) ID() string               { return "test-recorder" }
func (r *EventRecorder) InterestedIn(string) bool { return true }

func (r *EventRecorder) HandleEvent(e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns the recorded events in delivery order
func (r *EventRecorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the type of each recorded event in delivery order
func (r *EventRecorder) Types() []string {
	recorded := r.Events()
	types := make([]string, len(recorded))
	for i, e := range recorded {
		types[i] = e.Type()
	}
	return types
}

// NewRecordingBus returns an event bus with an EventRecorder already subscribed
func NewRecordingBus() (*events.EventBus, *EventRecorder) {
	bus := events.NewEventBus(zerolog.Nop())
	rec := &EventRecorder{}
	bus.Subscribe(rec)
	return bus, rec
}
