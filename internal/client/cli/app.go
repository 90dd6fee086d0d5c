// Package cli implements the interactive placetrack client: a REPL over the
// placement backend with login/registration, student and placement-drive
// browsing, statistics, and admin maintenance commands.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/campushq/placetrack/internal/client/api"
	"github.com/campushq/placetrack/internal/client/config"
	"github.com/campushq/placetrack/internal/client/guard"
	"github.com/campushq/placetrack/internal/client/services"
	"github.com/campushq/placetrack/internal/client/session"
	"github.com/campushq/placetrack/internal/logging"
)

// App wires the client components together and hosts the command handlers.
type App struct {
	config *config.Config
	api    *api.Client
	auth   services.AuthService
	store  *session.Store
	db     *sql.DB
	log    logging.Logger

	userGuard  *guard.Guard
	adminGuard *guard.Guard
	loading    bool

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the application: opens the local session database, applies
// migrations, and constructs the API client and services.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	store, db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("init session database: %w", err)
	}

	apiClient := api.New(c.APIBaseURL, store, logger)
	authService := services.NewAuthService(apiClient.Auth, store, logger)

	a := &App{
		config:  c,
		api:     apiClient,
		auth:    authService,
		store:   store,
		db:      db,
		log:     logger,
		loading: true,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	nav := &replNavigator{out: a.out}
	a.userGuard = guard.New(false, nav)
	a.adminGuard = guard.New(true, nav)
	return a, nil
}

// Run establishes the session state and starts the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.restoreSession(ctx)

	fmt.Fprintln(a.out, "Welcome to placetrack (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the session database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// restoreSession validates a previously persisted session. A structurally
// valid, unexpired token triggers a profile refresh; a failing refresh is an
// implicit logout. Until this completes the guards report a loading state.
func (a *App) restoreSession(ctx context.Context) {
	defer func() { a.loading = false }()

	if !a.store.IsAuthenticated(ctx) {
		a.dropDeadToken(ctx)
		return
	}
	if user, err := a.auth.FetchCurrentUser(ctx); err == nil && user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", user.Email)
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated(context.Background())
}

// sessionState snapshots the current session for the guards.
func (a *App) sessionState(ctx context.Context) guard.State {
	return guard.State{
		Loading:       a.loading,
		Authenticated: a.auth.IsAuthenticated(ctx),
		Admin:         a.auth.IsAdmin(ctx),
	}
}

// dropDeadToken removes a persisted token that no longer authenticates, so
// an expired session does not outlive its expiry in storage.
func (a *App) dropDeadToken(ctx context.Context) {
	if a.auth.IsAuthenticated(ctx) {
		return
	}
	if token, err := a.store.Token(ctx); err == nil && token != "" {
		_ = a.store.Clear(ctx)
	}
}

// requireUser gates a command behind authentication. The guard fires the
// redirect message at most once per state transition.
func (a *App) requireUser(ctx context.Context) bool {
	a.dropDeadToken(ctx)
	return a.userGuard.Check(a.sessionState(ctx)) == guard.Allow
}

// requireAdmin gates a command behind the admin role.
func (a *App) requireAdmin(ctx context.Context) bool {
	a.dropDeadToken(ctx)
	return a.adminGuard.Check(a.sessionState(ctx)) == guard.Allow
}

func (a *App) getStatus() string {
	ctx := context.Background()
	if user := a.store.User(ctx); user != nil {
		if user.IsAdmin() {
			return fmt.Sprintf("(%s, admin)", user.Email)
		}
		return fmt.Sprintf("(%s)", user.Email)
	}
	if a.isLoggedIn() {
		return "(authenticated)"
	}
	return ""
}

// replNavigator renders the guard's navigation side effects as REPL hints.
type replNavigator struct {
	out io.Writer
}

func (n *replNavigator) NavigateLogin() {
	fmt.Fprintln(n.out, "You are not logged in. Use 'login' or 'register' first.")
}

func (n *replNavigator) NavigateHome() {
	fmt.Fprintln(n.out, "Admin access required.")
}
