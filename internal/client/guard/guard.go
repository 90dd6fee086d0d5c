// Package guard gates access to protected content behind authentication
// and, optionally, the admin role. It is the single place that decides
// between rendering and redirecting; consumers must not re-implement
// redirect logic.
package guard

// State is the session snapshot the guard consumes. Loading is true while
// the session state is still being established (e.g., the initial profile
// fetch is in flight).
type State struct {
	Loading       bool
	Authenticated bool
	Admin         bool
}

// Decision is the guard's verdict for a piece of protected content.
type Decision int

const (
	// Wait: state not established yet; render a neutral placeholder and
	// perform no navigation.
	Wait Decision = iota
	// Allow: render the protected content unmodified.
	Allow
	// RedirectLogin: not authenticated; navigate to the login entry point.
	RedirectLogin
	// RedirectHome: authenticated but lacking the admin role on admin-only
	// content; navigate to the safe default.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Wait:
		return "wait"
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Evaluate returns the verdict for the given state and requirement.
func Evaluate(s State, adminOnly bool) Decision {
	if s.Loading {
		return Wait
	}
	if !s.Authenticated {
		return RedirectLogin
	}
	if adminOnly && !s.Admin {
		return RedirectHome
	}
	return Allow
}

// Navigator receives the guard's navigation side effects.
type Navigator interface {
	NavigateLogin()
	NavigateHome()
}

// Guard wraps Evaluate with at-most-once navigation per state transition:
// re-checking the same state never re-fires a redirect, so a consumer that
// polls cannot loop.
type Guard struct {
	adminOnly bool
	nav       Navigator

	hasLast bool
	last    State
}

// New builds a Guard for content with the given requirement.
func New(adminOnly bool, nav Navigator) *Guard {
	return &Guard{adminOnly: adminOnly, nav: nav}
}

// Check evaluates the state, fires navigation when the state changed since
// the previous check, and returns the verdict.
func (g *Guard) Check(s State) Decision {
	d := Evaluate(s, g.adminOnly)

	changed := !g.hasLast || g.last != s
	g.hasLast = true
	g.last = s

	if changed && g.nav != nil {
		switch d {
		case RedirectLogin:
			g.nav.NavigateLogin()
		case RedirectHome:
			g.nav.NavigateHome()
		}
	}
	return d
}
