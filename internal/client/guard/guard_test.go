package guard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		adminOnly bool
		want      Decision
	}{
		{
			name:  "loading waits",
			state: State{Loading: true},
			want:  Wait,
		},
		{
			name:      "loading waits even for admin content",
			state:     State{Loading: true, Authenticated: true},
			adminOnly: true,
			want:      Wait,
		},
		{
			name:  "anonymous redirects to login",
			state: State{},
			want:  RedirectLogin,
		},
		{
			name:  "authenticated allowed",
			state: State{Authenticated: true},
			want:  Allow,
		},
		{
			name:      "authenticated non-admin bounced home",
			state:     State{Authenticated: true},
			adminOnly: true,
			want:      RedirectHome,
		},
		{
			name:      "admin allowed on admin content",
			state:     State{Authenticated: true, Admin: true},
			adminOnly: true,
			want:      Allow,
		},
		{
			name:      "anonymous on admin content goes to login first",
			state:     State{},
			adminOnly: true,
			want:      RedirectLogin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Evaluate(tt.state, tt.adminOnly))
		})
	}
}

type countingNav struct {
	logins int
	homes  int
}

func (n *countingNav) NavigateLogin() { n.logins++ }
func (n *countingNav) NavigateHome()  { n.homes++ }

func TestGuard_NavigatesAtMostOncePerTransition(t *testing.T) {
	nav := &countingNav{}
	g := New(false, nav)

	anon := State{}
	require.Equal(t, RedirectLogin, g.Check(anon))
	require.Equal(t, 1, nav.logins)

	// Same state re-checked: no second navigation.
	require.Equal(t, RedirectLogin, g.Check(anon))
	require.Equal(t, RedirectLogin, g.Check(anon))
	require.Equal(t, 1, nav.logins)

	// Transition to authenticated: allowed, nothing fired.
	require.Equal(t, Allow, g.Check(State{Authenticated: true}))
	require.Equal(t, 1, nav.logins)
	require.Equal(t, 0, nav.homes)

	// Logout transition fires exactly once more.
	require.Equal(t, RedirectLogin, g.Check(anon))
	require.Equal(t, 2, nav.logins)
}

func TestGuard_AdminContent(t *testing.T) {
	nav := &countingNav{}
	g := New(true, nav)

	student := State{Authenticated: true}
	require.Equal(t, RedirectHome, g.Check(student))
	require.Equal(t, RedirectHome, g.Check(student))
	require.Equal(t, 1, nav.homes)

	admin := State{Authenticated: true, Admin: true}
	require.Equal(t, Allow, g.Check(admin))
	require.Equal(t, 1, nav.homes)
	require.Equal(t, 0, nav.logins)
}

func TestGuard_LoadingDoesNotNavigate(t *testing.T) {
	nav := &countingNav{}
	g := New(false, nav)

	require.Equal(t, Wait, g.Check(State{Loading: true}))
	require.Equal(t, 0, nav.logins)
	require.Equal(t, 0, nav.homes)

	require.Equal(t, RedirectLogin, g.Check(State{}))
	require.Equal(t, 1, nav.logins)
}
