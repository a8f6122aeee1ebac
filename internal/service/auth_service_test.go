package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/user-service/internal/auth"
	"github.com/spec-kit/user-service/internal/domain"
	"github.com/spec-kit/user-service/internal/worker"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.nextID++
	user.ID = "user-" + strconv.Itoa(r.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) UpdatePushToken(_ context.Context, userID, pushToken string) error {
	for _, u := range r.byEmail {
		if u.ID == userID {
			u.PushToken = &pushToken
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakePreferenceRepo struct {
	byUserID map[string]*domain.Preference
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{byUserID: make(map[string]*domain.Preference)}
}

func (r *fakePreferenceRepo) Create(_ context.Context, pref *domain.Preference) error {
	pref.UpdatedAt = time.Now()
	r.byUserID[pref.UserID] = pref
	return nil
}

func (r *fakePreferenceRepo) GetByUserID(_ context.Context, userID string) (*domain.Preference, error) {
	if p, ok := r.byUserID[userID]; ok {
		return p, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakePreferenceRepo) Update(_ context.Context, pref *domain.Preference) error {
	if _, ok := r.byUserID[pref.UserID]; !ok {
		return pgx.ErrNoRows
	}
	pref.UpdatedAt = time.Now()
	r.byUserID[pref.UserID] = pref
	return nil
}

func newTestAuthService() (*AuthService, *auth.TokenCodec) {
	users := newFakeUserRepo()
	prefs := newFakePreferenceRepo()
	tokens := auth.NewTokenCodec("test-secret")
	svc := NewAuthService(AuthDependencies{
		UserRepo:       users,
		PreferenceRepo: prefs,
		Tokens:         tokens,
		HashPool:       worker.NewHashPool(auth.NewHasher(), 2),
	})
	return svc, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, tokens := newTestAuthService()
	ctx := context.Background()

	user, token, exp, err := svc.Register(ctx, "Alice", "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" || token == "" || exp.IsZero() {
		t.Fatalf("incomplete registration result: %+v token=%q", user, token)
	}
	if user.PasswordHash == "correct-horse" {
		t.Fatalf("password stored in plaintext")
	}

	loggedIn, token, _, err := svc.Login(ctx, "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, loggedIn.ID)
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if claims.SubjectID() != user.ID || claims.Email != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "pw-one"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, _, err := svc.Register(ctx, "Other", "alice@example.com", "pw-two"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, _, wrongPassword := svc.Login(ctx, "alice@example.com", "wrong-horse")
	_, _, _, unknownEmail := svc.Login(ctx, "nobody@example.com", "correct-horse")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("failure causes must not be distinguishable: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestConcurrentLoginsYieldIndependentTokens(t *testing.T) {
	svc, tokens := newTestAuthService()
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("register: %v", err)
	}

	type result struct {
		token string
		err   error
	}
	results := make(chan result, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, token, _, err := svc.Login(ctx, "alice@example.com", "correct-horse")
			results <- result{token: token, err: err}
		}()
	}

	first := <-results
	second := <-results
	if first.err != nil || second.err != nil {
		t.Fatalf("logins failed: %v / %v", first.err, second.err)
	}
	for _, token := range []string{first.token, second.token} {
		if _, err := tokens.Validate(token); err != nil {
			t.Fatalf("token does not validate: %v", err)
		}
	}
}
