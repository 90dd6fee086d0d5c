package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/campushq/placetrack/internal/client/api"
	"github.com/campushq/placetrack/internal/client/models"
	"github.com/campushq/placetrack/internal/client/repositories/metadata"
	"github.com/campushq/placetrack/internal/client/session"
	"github.com/campushq/placetrack/internal/common"
)

// fakeAuthAPI implements authAPI for unit tests.
type fakeAuthAPI struct {
	loginToken string
	loginErr   error

	registerToken string
	registerErr   error

	meUser *models.User
	meErr  error

	lastLoginEmail    string
	lastLoginPassword string
	meCalls           int
}

func (f *fakeAuthAPI) Login(_ context.Context, email, password string) (string, error) {
	f.lastLoginEmail, f.lastLoginPassword = email, password
	return f.loginToken, f.loginErr
}

func (f *fakeAuthAPI) Register(_ context.Context, email, password string) (string, error) {
	return f.registerToken, f.registerErr
}

func (f *fakeAuthAPI) Me(_ context.Context) (*models.User, error) {
	f.meCalls++
	return f.meUser, f.meErr
}

func newTestService(f *fakeAuthAPI) (AuthService, *session.Store) {
	store := session.New(metadata.NewMemoryRepository())
	return NewAuthService(f, store, nil), store
}

func issueToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	s, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestLogin_Success_PersistsTokenAndProfile(t *testing.T) {
	token := issueToken(t, time.Now().Add(time.Hour))
	f := &fakeAuthAPI{
		loginToken: token,
		meUser:     &models.User{ID: 1, Email: "ana@uni.edu", Role: models.RoleAdmin},
	}
	svc, store := newTestService(f)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "ana@uni.edu", "pw"))
	require.Equal(t, "ana@uni.edu", f.lastLoginEmail)
	require.Equal(t, "pw", f.lastLoginPassword)

	got, err := store.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, token, got)
	require.Equal(t, f.meUser, store.User(ctx))
	require.True(t, svc.IsAuthenticated(ctx))
	require.True(t, svc.IsAdmin(ctx))
}

func TestLogin_WrongPassword_NoTokenPersisted(t *testing.T) {
	f := &fakeAuthAPI{
		loginErr: &api.Error{Status: 401, Detail: "Incorrect email or password"},
	}
	svc, store := newTestService(f)
	ctx := context.Background()

	err := svc.Login(ctx, "ana@uni.edu", "bad")
	require.Error(t, err)
	require.Equal(t, "Incorrect email or password", err.Error())

	got, storeErr := store.Token(ctx)
	require.NoError(t, storeErr)
	require.Empty(t, got)
}

func TestLogin_ValidationErrorMessage(t *testing.T) {
	f := &fakeAuthAPI{
		loginErr: &api.Error{Status: 422, Detail: "body.email: invalid"},
	}
	svc, _ := newTestService(f)

	err := svc.Login(context.Background(), "nope", "pw")
	require.Error(t, err)
	require.Contains(t, err.Error(), "body.email: invalid")
}

func TestLogin_NetworkError_SessionUntouched(t *testing.T) {
	f := &fakeAuthAPI{
		loginErr: common.ErrUnavailable,
	}
	svc, store := newTestService(f)
	ctx := context.Background()

	// An existing session must survive a failed login attempt.
	existing := issueToken(t, time.Now().Add(time.Hour))
	require.NoError(t, store.SetToken(ctx, existing))

	err := svc.Login(ctx, "ana@uni.edu", "pw")
	require.ErrorIs(t, err, ErrNetwork)

	got, storeErr := store.Token(ctx)
	require.NoError(t, storeErr)
	require.Equal(t, existing, got)
}

func TestLogin_ProfileFetchFails_TokenKeptUserAbsent(t *testing.T) {
	token := issueToken(t, time.Now().Add(time.Hour))
	f := &fakeAuthAPI{
		loginToken: token,
		meErr:      common.ErrUnavailable,
	}
	svc, store := newTestService(f)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "ana@uni.edu", "pw"))

	got, err := store.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, token, got)
	require.Nil(t, store.User(ctx))
	require.False(t, svc.IsAdmin(ctx))
}

func TestReLogin_ProfileFetchFails_PreviousUserEvicted(t *testing.T) {
	f := &fakeAuthAPI{}
	svc, store := newTestService(f)
	ctx := context.Background()

	// Session of the previous account: admin profile under its own token.
	require.NoError(t, store.SetToken(ctx, issueToken(t, time.Now().Add(time.Hour))))
	require.NoError(t, store.SetUser(ctx, &models.User{ID: 1, Email: "admin@uni.edu", Role: models.RoleAdmin}))

	// A different account logs in, but its profile fetch fails. The old
	// admin identity must not answer role checks under the new token.
	newToken := issueToken(t, time.Now().Add(time.Hour))
	f.loginToken = newToken
	f.meErr = common.ErrUnavailable

	require.NoError(t, svc.Login(ctx, "student@uni.edu", "pw"))

	got, err := store.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, newToken, got)
	require.Nil(t, store.User(ctx))
	require.False(t, svc.IsAdmin(ctx))
}

func TestRegister_Success(t *testing.T) {
	token := issueToken(t, time.Now().Add(time.Hour))
	f := &fakeAuthAPI{
		registerToken: token,
		meUser:        &models.User{ID: 2, Email: "new@uni.edu", Role: models.RoleStudent},
	}
	svc, store := newTestService(f)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "new@uni.edu", "pw"))
	require.Equal(t, f.meUser, store.User(ctx))
	require.True(t, svc.IsAuthenticated(ctx))
	require.False(t, svc.IsAdmin(ctx))
}

func TestLogout_ClearsEverything(t *testing.T) {
	f := &fakeAuthAPI{}
	svc, store := newTestService(f)
	ctx := context.Background()

	require.NoError(t, store.SetToken(ctx, issueToken(t, time.Now().Add(time.Hour))))
	require.NoError(t, store.SetUser(ctx, &models.User{ID: 1, Email: "a@b.c", Role: models.RoleAdmin}))

	require.NoError(t, svc.Logout(ctx))

	tok, err := store.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)
	require.Nil(t, store.User(ctx))
	require.False(t, svc.IsAuthenticated(ctx))
	require.False(t, svc.IsAdmin(ctx))
}

func TestFetchCurrentUser_Success_RefreshesCache(t *testing.T) {
	f := &fakeAuthAPI{meUser: &models.User{ID: 1, Email: "a@b.c", Role: models.RoleStudent}}
	svc, store := newTestService(f)
	ctx := context.Background()

	user, err := svc.FetchCurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, f.meUser, user)
	require.Equal(t, f.meUser, store.User(ctx))
}

func TestFetchCurrentUser_Unauthorized_ImplicitLogout(t *testing.T) {
	f := &fakeAuthAPI{meErr: &api.Error{Status: 401, Detail: "token expired"}}
	svc, store := newTestService(f)
	ctx := context.Background()

	// Session from an earlier login whose token has since expired.
	require.NoError(t, store.SetToken(ctx, issueToken(t, time.Now().Add(-time.Minute))))
	require.NoError(t, store.SetUser(ctx, &models.User{ID: 1, Email: "a@b.c", Role: models.RoleAdmin}))

	user, err := svc.FetchCurrentUser(ctx)
	require.Error(t, err)
	require.Nil(t, user)

	tok, storeErr := store.Token(ctx)
	require.NoError(t, storeErr)
	require.Empty(t, tok)
	require.Nil(t, store.User(ctx))
}

func TestFetchCurrentUser_NetworkFailure_ImplicitLogout(t *testing.T) {
	f := &fakeAuthAPI{meErr: common.ErrUnavailable}
	svc, store := newTestService(f)
	ctx := context.Background()

	require.NoError(t, store.SetToken(ctx, issueToken(t, time.Now().Add(time.Hour))))

	user, err := svc.FetchCurrentUser(ctx)
	require.ErrorIs(t, err, common.ErrUnavailable)
	require.Nil(t, user)

	tok, storeErr := store.Token(ctx)
	require.NoError(t, storeErr)
	require.Empty(t, tok)
}

func TestIsAuthenticated_ExpiredToken(t *testing.T) {
	f := &fakeAuthAPI{}
	svc, store := newTestService(f)
	ctx := context.Background()

	require.NoError(t, store.SetToken(ctx, issueToken(t, time.Now().Add(-time.Hour))))
	require.False(t, svc.IsAuthenticated(ctx))
}
