package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetMe  = "current user retrieved successfully"
	MessageSuccessSignIn = "signed in successfully"
	MessageSuccessLogout = "logged out successfully"

	MessageFailedGetMe  = "failed to retrieve current user"
	MessageFailedSignIn = "failed to sign in"

	ErrUserNotFound = errors.New("user not found")
)

type (
	// UpsertUserRequest carries the identity-provider callback payload.
	// The provider itself lives outside this service.
	UpsertUserRequest struct {
		OpenID      string `json:"open_id" validate:"required,max=64"`
		Name        string `json:"name"`
		Email       string `json:"email" validate:"omitempty,email"`
		LoginMethod string `json:"login_method"`
	}

	MeResponse struct {
		ID           string    `json:"id"`
		OpenID       string    `json:"open_id"`
		Name         string    `json:"name,omitempty"`
		Email        string    `json:"email,omitempty"`
		LoginMethod  string    `json:"login_method,omitempty"`
		Role         string    `json:"role"`
		LastSignedIn time.Time `json:"last_signed_in"`
	}
)
