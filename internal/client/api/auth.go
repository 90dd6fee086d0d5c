package api

import (
	"context"

	"github.com/campushq/placetrack/internal/client/models"
)

// AuthAPI covers the /auth endpoints.
type AuthAPI struct {
	client *Client
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token. The token is returned to
// the caller; persisting it is the auth service's job.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	if err := a.client.do(ctx, "POST", "/auth/login", nil, credentials{Email: email, Password: password}, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Register creates an account and returns the issued bearer token.
func (a *AuthAPI) Register(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	if err := a.client.do(ctx, "POST", "/auth/register", nil, credentials{Email: email, Password: password}, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Me fetches the authenticated user's own profile. Requires a stored token.
func (a *AuthAPI) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := a.client.do(ctx, "GET", "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
