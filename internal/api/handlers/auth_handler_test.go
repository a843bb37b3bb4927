package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/middleware"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/jwt"
)

type fakeUserService struct {
	userID uuid.UUID
}

func (f *fakeUserService) Me(_ context.Context, _ string) (domain.MeResponse, error) {
	return domain.MeResponse{}, domain.ErrUserNotFound
}

func (f *fakeUserService) Upsert(_ context.Context, req domain.UpsertUserRequest) (*entities.User, error) {
	return &entities.User{
		ID:     f.userID,
		OpenID: req.OpenID,
		Name:   req.Name,
		Role:   entities.RoleUser,
	}, nil
}

func newCallbackApp(userID uuid.UUID) (*fiber.App, jwt.JWTService) {
	app := fiber.New()
	jwtService := jwt.NewJWTService()
	handler := NewAuthHandler(&fakeUserService{userID: userID}, jwtService, validator.New())
	app.Post("/api/v1/auth/callback", handler.Callback)
	return app, jwtService
}

func TestCallbackEstablishesSession(t *testing.T) {
	userID := uuid.New()
	app, jwtService := newCallbackApp(userID)

	body := `{"open_id":"line-abc123","name":"小明","login_method":"line"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var session *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			session = cookie
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	// the cookie carries a token the auth middleware will accept
	tokenUserID, role, err := jwtService.GetUserIDByToken(session.Value)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), tokenUserID)
	assert.Equal(t, entities.RoleUser, role)
}

func TestCallbackRejectsMissingOpenID(t *testing.T) {
	app, _ := newCallbackApp(uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/callback", strings.NewReader(`{"name":"小明"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		assert.NotEqual(t, middleware.SessionCookieName, cookie.Name)
	}
}
