package dto

import "time"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePreferencesRequest payload for notification preference updates.
// Pointers distinguish omitted fields from explicit false.
type UpdatePreferencesRequest struct {
	Email *bool `json:"email"`
	Push  *bool `json:"push"`
}

// UpdatePushTokenRequest payload for device push token updates.
type UpdatePushTokenRequest struct {
	PushToken string `json:"push_token"`
}

// UserResponse is the account shape returned by auth endpoints. There is no
// password field here on purpose; the hash never leaves the service.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
