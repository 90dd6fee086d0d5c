// Package models defines the client-side data types exchanged with the
// placement backend. All of them are transient copies owned by the server;
// the client never mutates them in place.
package models

// Role is the authorization level reported by the backend for a user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// User is the authenticated identity as returned by /auth/me.
// Role changes happen server-side only.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user carries the admin role.
// A nil user is never an admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
