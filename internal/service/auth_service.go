package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/user-service/internal/auth"
	"github.com/spec-kit/user-service/internal/domain"
	"github.com/spec-kit/user-service/internal/events"
	"github.com/spec-kit/user-service/internal/repository"
	"github.com/spec-kit/user-service/internal/worker"
)

// ErrInvalidCredentials is returned for every failed login attempt. An
// unknown email and a wrong password produce this same error so callers
// cannot probe for account existence.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering an already-registered email.
var ErrEmailTaken = errors.New("email already registered")

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	prefs      repository.PreferenceRepository
	tokens     *auth.TokenCodec
	hashes     *worker.HashPool
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates collaborator requirements for the auth service.
// Everything is injected; the service holds no ambient globals.
type AuthDependencies struct {
	UserRepo       repository.UserRepository
	PreferenceRepo repository.PreferenceRepository
	Tokens         *auth.TokenCodec
	HashPool       *worker.HashPool
	Dispatcher     events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		prefs:      deps.PreferenceRepo,
		tokens:     deps.Tokens,
		hashes:     deps.HashPool,
		dispatcher: deps.Dispatcher,
	}
}

// Register creates a new account with default notification preferences and
// returns a freshly issued session token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, time.Time, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := s.hashes.Hash(ctx, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	pref := &domain.Preference{UserID: user.ID, Email: true, Push: true}
	if err := s.prefs.Create(ctx, pref); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		Name:  user.Name,
		Email: user.Email,
	})

	return user, token, exp, nil
}

// Login authenticates an account. The lookup miss and the password mismatch
// are terminal and indistinguishable: both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}

	if !s.hashes.Verify(ctx, password, user.PasswordHash) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
