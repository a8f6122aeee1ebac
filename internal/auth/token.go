package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenTTL is the fixed validity window for issued session tokens. Expiry is
// the only invalidation path; there is no server-side revocation.
const tokenTTL = 24 * time.Hour

// Sentinel token validation errors. The codec reports the precise cause;
// callers that face the outside world are expected to collapse them.
var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// Claims describes the identity payload embedded in a session token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SubjectID returns the account identifier the token was issued for.
func (c *Claims) SubjectID() string {
	return c.Subject
}

// TokenCodec issues and validates signed, time-limited session tokens.
// Validation is pure: it consults no state beyond the signing secret.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec around the server-held signing secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: tokenTTL}
}

// Issue signs a token for the subject, valid from now until now+24h.
func (tc *TokenCodec) Issue(subjectID, email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tc.ttl)
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tc.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate checks signature and validity window and returns the embedded
// claims. It fails with ErrTokenExpired for a well-formed token past its
// expiry and ErrTokenInvalid for everything else (malformed, tampered,
// wrong signing method).
func (tc *TokenCodec) Validate(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return tc.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
