// Package session persists the client's authentication state: the bearer
// token issued at login and a cached copy of the authenticated user. State
// lives in a key-value repository so tests can swap in an in-memory fake.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/campushq/placetrack/internal/client/models"
	"github.com/campushq/placetrack/internal/client/repositories/metadata"
	"github.com/campushq/placetrack/internal/dbx"
)

// Storage keys. Both are removed together on Clear; a logout must leave no
// residual identity material.
const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// Store holds the current session. The cached user is a UI convenience only:
// it is never trusted as an authority source — the backend independently
// authorizes every admin action.
type Store struct {
	repo metadata.Repository
	db   *sql.DB // non-nil when the repository is SQLite-backed
	now  func() time.Time
}

// New builds a Store over an arbitrary key-value repository.
func New(repo metadata.Repository) *Store {
	return &Store{repo: repo, now: time.Now}
}

// NewWithDB builds a Store over a SQLite database. Clear runs inside a
// transaction so both keys disappear atomically.
func NewWithDB(db *sql.DB) *Store {
	return &Store{repo: metadata.NewSQLiteRepository(db), db: db, now: time.Now}
}

// SetToken persists the bearer token.
func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, tokenKey, []byte(token))
}

// Token returns the stored bearer token, or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SetUser caches the authenticated user. A nil user removes the cache entry.
func (s *Store) SetUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return s.repo.Delete(ctx, userKey)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, userKey, data)
}

// User returns the cached user, or nil when absent. Malformed stored data
// degrades to nil; reads are total functions over storage contents.
func (s *Store) User(ctx context.Context) *models.User {
	data, err := s.repo.Get(ctx, userKey)
	if err != nil || len(data) == 0 {
		return nil
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil
	}
	return &user
}

// Clear removes the token and the cached user together.
func (s *Store) Clear(ctx context.Context) error {
	if s.db != nil {
		return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := metadata.NewSQLiteRepository(tx)
			if err := repo.Delete(ctx, tokenKey); err != nil {
				return err
			}
			return repo.Delete(ctx, userKey)
		})
	}
	if err := s.repo.Delete(ctx, tokenKey); err != nil {
		return err
	}
	return s.repo.Delete(ctx, userKey)
}

// IsAuthenticated reports whether a token is stored, decodes, and has not
// expired. The check is purely local — no network call — and never mutates
// state.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	token, err := s.Token(ctx)
	if err != nil || token == "" {
		return false
	}
	expiry, err := decodeExpiry(token)
	if err != nil {
		return false
	}
	return expiry.After(s.now())
}

// IsAdmin reports whether the cached user carries the admin role. Absent
// user yields false.
func (s *Store) IsAdmin(ctx context.Context) bool {
	return s.User(ctx).IsAdmin()
}
