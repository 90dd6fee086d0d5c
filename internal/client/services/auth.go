// Package services contains the application services of the placetrack
// client: authentication/session lifecycle and the debounced student search
// helper.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushq/placetrack/internal/client/models"
	"github.com/campushq/placetrack/internal/client/session"
	"github.com/campushq/placetrack/internal/common"
	"github.com/campushq/placetrack/internal/logging"
)

// ErrNetwork is returned by Login/Register when the request never completed.
// The existing session, if any, is left untouched in that case.
var ErrNetwork = errors.New("network error")

// authAPI is the subset of the API client the auth service needs. Tests
// provide a lightweight fake.
type authAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context) (*models.User, error)
}

// AuthService drives the session lifecycle.
//
// Contract:
//   - Login/Register: authenticate against the backend, persist the issued
//     token, then fetch and cache the user's own profile.
//   - Logout: clear the session unconditionally; no network call.
//   - FetchCurrentUser: refresh the cached profile; any failure is an
//     implicit logout.
//   - IsAuthenticated/IsAdmin: local checks against the session store.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	FetchCurrentUser(ctx context.Context) (*models.User, error)
	IsAuthenticated(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
}

type authService struct {
	api   authAPI
	store *session.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API surface
// and session store.
func NewAuthService(api authAPI, store *session.Store, log logging.Logger) AuthService {
	return &authService{api: api, store: store, log: log}
}

// Login posts credentials and, on success, persists the returned token and
// caches the fetched profile. A failing follow-up profile fetch leaves the
// session with a token but no cached user; role checks then report false
// until the profile is retried.
func (a *authService) Login(ctx context.Context, email, password string) error {
	return a.authenticate(ctx, email, password, a.api.Login)
}

// Register has the identical contract as Login, against the registration
// endpoint.
func (a *authService) Register(ctx context.Context, email, password string) error {
	return a.authenticate(ctx, email, password, a.api.Register)
}

func (a *authService) authenticate(
	ctx context.Context,
	email, password string,
	call func(ctx context.Context, email, password string) (string, error),
) error {
	token, err := call(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			return ErrNetwork
		}
		return err
	}

	if err := a.store.SetToken(ctx, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	// A previously cached profile belongs to the old token; evict it so
	// role checks never answer from a stale identity while the new
	// profile is unfetched.
	if err := a.store.SetUser(ctx, nil); err != nil {
		return fmt.Errorf("evict cached user: %w", err)
	}

	user, err := a.api.Me(ctx)
	if err != nil {
		if a.log != nil {
			a.log.Warn(ctx, "profile fetch after login failed", "error", err)
		}
		return nil
	}
	if err := a.store.SetUser(ctx, user); err != nil {
		return fmt.Errorf("cache user: %w", err)
	}
	return nil
}

// Logout clears the session store. No network call is made; the backend
// token simply falls out of use.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

// FetchCurrentUser refreshes the cached profile. On any failure — an
// expired/invalid token or an unreachable server — the session is cleared
// and an absent user is returned: a token whose validity cannot be verified
// must not keep presenting cached role claims as current.
func (a *authService) FetchCurrentUser(ctx context.Context) (*models.User, error) {
	user, err := a.api.Me(ctx)
	if err != nil {
		if clearErr := a.store.Clear(ctx); clearErr != nil && a.log != nil {
			a.log.Error(ctx, "clearing session failed", "error", clearErr)
		}
		return nil, err
	}
	if err := a.store.SetUser(ctx, user); err != nil {
		return nil, fmt.Errorf("cache user: %w", err)
	}
	return user, nil
}

// IsAuthenticated reports whether a structurally valid, unexpired token is
// stored. Purely local.
func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.store.IsAuthenticated(ctx)
}

// IsAdmin reports the cached user's role. UI convenience only; the backend
// authorizes every admin action independently.
func (a *authService) IsAdmin(ctx context.Context) bool {
	return a.store.IsAdmin(ctx)
}
