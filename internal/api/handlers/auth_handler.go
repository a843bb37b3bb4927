package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/api/presenters"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/middleware"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/jwt"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/user"
)

// sessionTTL matches the token expiry minted by the JWT service.
const sessionTTL = 7 * 24 * time.Hour

type (
	AuthHandler interface {
		Callback(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	authHandler struct {
		userService user.UserService
		jwtService  jwt.JWTService
		validator   *validator.Validate
	}
)

func NewAuthHandler(userService user.UserService, jwtService jwt.JWTService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		userService: userService,
		jwtService:  jwtService,
		validator:   validator,
	}
}

// Callback receives the identity-provider payload, upserts the user record
// and establishes the session cookie.
func (h *authHandler) Callback(c *fiber.Ctx) error {
	req := new(domain.UpsertUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignIn, err)
	}

	signedIn, err := h.userService.Upsert(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedSignIn, err)
	}

	token := h.jwtService.GenerateTokenUser(signedIn.ID.String(), signedIn.Role)
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
	})

	return presenters.SuccessResponse(c, fiber.Map{
		"id":    signedIn.ID.String(),
		"role":  signedIn.Role,
		"token": token,
	}, fiber.StatusOK, domain.MessageSuccessSignIn)
}

// Me returns the current user, or null data for anonymous callers.
func (h *authHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessGetMe)
	}

	me, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessGetMe)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMe, err)
	}

	return presenters.SuccessResponse(c, me, fiber.StatusOK, domain.MessageSuccessGetMe)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}
