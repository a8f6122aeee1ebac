package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/user-service/pkg/util/errorutil"
)

const claimsKey = "auth_claims"

// Gate validates bearer tokens on protected routes. It is stateless: the
// verdict is a function of the signing secret and the inbound header only,
// with no per-request database access.
type Gate struct {
	tokens *TokenCodec
}

// NewGate constructs the middleware.
func NewGate(tokens *TokenCodec) *Gate {
	return &Gate{tokens: tokens}
}

// Handle enforces authentication. Missing, malformed, tampered and expired
// tokens all produce the same unauthorized response so callers cannot probe
// validation internals.
func (g *Gate) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := g.tokens.Validate(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the authenticated identity attached by Handle.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
