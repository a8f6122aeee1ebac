package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered     EventType = "user_registered"
	EventPreferencesUpdated EventType = "preferences_updated"
	EventPushTokenUpdated   EventType = "push_token_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PreferencesUpdatedPayload payload.
type PreferencesUpdatedPayload struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

// PushTokenUpdatedPayload payload.
type PushTokenUpdatedPayload struct {
	PushToken string `json:"push_token"`
}
