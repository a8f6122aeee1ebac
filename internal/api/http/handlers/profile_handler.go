package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-service/internal/api/dto"
	"github.com/spec-kit/user-service/internal/auth"
	"github.com/spec-kit/user-service/internal/service"
	apperrors "github.com/spec-kit/user-service/pkg/util/errorutil"
)

// ProfileHandler exposes the gated profile endpoints.
type ProfileHandler struct {
	users *service.UserService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(userService *service.UserService) *ProfileHandler {
	return &ProfileHandler{users: userService}
}

// Get handles GET /api/users/profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	profile, err := h.users.GetProfile(c.UserContext(), claims.SubjectID())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": profile})
}

// UpdatePreferences handles PUT /api/users/profile.
func (h *ProfileHandler) UpdatePreferences(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	var req dto.UpdatePreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == nil || req.Push == nil {
		return apperrors.NewValidationError("email and push flags required", nil)
	}

	pref, err := h.users.UpdatePreferences(c.UserContext(), claims.SubjectID(), *req.Email, *req.Push)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"preference": fiber.Map{
				"email": pref.Email,
				"push":  pref.Push,
			},
		},
	})
}

// UpdatePushToken handles PUT /api/users/me/push-token.
func (h *ProfileHandler) UpdatePushToken(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}

	var req dto.UpdatePushTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.PushToken == "" {
		return apperrors.NewValidationError("push_token required", nil)
	}

	user, err := h.users.UpdatePushToken(c.UserContext(), claims.SubjectID(), req.PushToken)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
		},
	})
}
