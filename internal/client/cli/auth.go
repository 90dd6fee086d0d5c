package cli

import (
	"context"
	"fmt"
)

// Login prompts for credentials and authenticates against the backend.
// On success the token and profile are persisted by the auth service.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Register prompts for credentials and creates an account. The contract is
// identical to Login, against the registration endpoint.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if err := a.auth.Register(ctx, email, string(password)); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Registered and logged in")
	return nil
}

// Logout clears the persisted session. No network call is made.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI refreshes and prints the authenticated user's profile. A failing
// refresh is an implicit logout.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.requireUser(ctx) {
		return nil
	}

	user, err := a.auth.FetchCurrentUser(ctx)
	if err != nil || user == nil {
		fmt.Fprintln(a.out, "Session is no longer valid; you have been logged out.")
		return err
	}

	fmt.Fprintf(a.out, "#%d %s (%s)\n", user.ID, user.Email, user.Role)
	return nil
}
