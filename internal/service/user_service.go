package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/user-service/internal/domain"
	"github.com/spec-kit/user-service/internal/events"
	"github.com/spec-kit/user-service/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// Profile bundles the externally visible account fields with notification
// preferences. The password hash is structurally absent: this shape is what
// gets cached and what handlers serialize, so no Credential-derived response
// can ever carry it.
type Profile struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	PushToken *string           `json:"push_token,omitempty"`
	Status    domain.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Pref      ProfilePrefs      `json:"preference"`
}

// ProfilePrefs mirrors the notification delivery flags.
type ProfilePrefs struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

// NewProfile projects a user and preference pair into the safe shape.
func NewProfile(user *domain.User, pref *domain.Preference) *Profile {
	return &Profile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		PushToken: user.PushToken,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		Pref:      ProfilePrefs{Email: pref.Email, Push: pref.Push},
	}
}

// UserService serves profile reads and preference/push-token updates.
type UserService struct {
	users      repository.UserRepository
	prefs      repository.PreferenceRepository
	cache      *redis.Client
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewUserService builds the service. The cache client may be nil, in which
// case every read goes to the database.
func NewUserService(users repository.UserRepository, prefs repository.PreferenceRepository, cache *redis.Client, dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	return &UserService{
		users:      users,
		prefs:      prefs,
		cache:      cache,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// GetProfile returns the account and its preferences, served from the cache
// when possible.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if cached := s.cachedProfile(ctx, userID); cached != nil {
		return cached, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	pref, err := s.prefs.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := NewProfile(user, pref)
	s.storeProfile(ctx, userID, profile)
	return profile, nil
}

// UpdatePreferences replaces the notification delivery flags.
func (s *UserService) UpdatePreferences(ctx context.Context, userID string, email, push bool) (*domain.Preference, error) {
	pref := &domain.Preference{UserID: userID, Email: email, Push: push}
	if err := s.prefs.Update(ctx, pref); err != nil {
		return nil, err
	}
	s.invalidateProfile(ctx, userID)

	s.publish(ctx, events.EventPreferencesUpdated, userID, events.PreferencesUpdatedPayload{
		Email: email,
		Push:  push,
	})
	return pref, nil
}

// UpdatePushToken stores the device push token for the account.
func (s *UserService) UpdatePushToken(ctx context.Context, userID, pushToken string) (*domain.User, error) {
	if err := s.users.UpdatePushToken(ctx, userID, pushToken); err != nil {
		return nil, err
	}
	s.invalidateProfile(ctx, userID)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventPushTokenUpdated, userID, events.PushTokenUpdatedPayload{
		PushToken: pushToken,
	})
	return user, nil
}

func profileCacheKey(userID string) string {
	return "user:profile:" + userID
}

func (s *UserService) cachedProfile(ctx context.Context, userID string) *Profile {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, profileCacheKey(userID)).Bytes()
	if err != nil {
		return nil
	}
	var profile Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil
	}
	return &profile
}

func (s *UserService) storeProfile(ctx context.Context, userID string, profile *Profile) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, profileCacheKey(userID), raw, profileCacheTTL).Err(); err != nil {
		s.logger.Debug("profile cache set failed", zap.Error(err))
	}
}

func (s *UserService) invalidateProfile(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, profileCacheKey(userID)).Err(); err != nil {
		s.logger.Debug("profile cache invalidation failed", zap.Error(err))
	}
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
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
