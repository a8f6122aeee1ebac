package domain

import "time"

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User is the domain model for registered accounts.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	PushToken    *string
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Preference holds per-user notification delivery settings.
type Preference struct {
	UserID    string
	Email     bool
	Push      bool
	UpdatedAt time.Time
}
