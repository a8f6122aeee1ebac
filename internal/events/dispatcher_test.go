package events

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []EventType
	d.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})
	d.Subscribe(EventPushTokenUpdated, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventUserRegistered, UserID: "user-1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(seen) != 1 || seen[0] != EventUserRegistered {
		t.Fatalf("expected only the registered handler to fire, got %v", seen)
	}
}

func TestDispatcherContinuesPastHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondRan bool
	d.Subscribe(EventPreferencesUpdated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventPreferencesUpdated, func(context.Context, Event) error {
		secondRan = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventPreferencesUpdated})
	if !secondRan {
		t.Fatalf("expected later handlers to run despite earlier error")
	}
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected the handler failure to be reported, got %v", err)
	}
}
