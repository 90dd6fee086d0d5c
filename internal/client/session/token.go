package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campushq/placetrack/internal/common"
)

// decodeExpiry extracts the expiry claim from a JWT without verifying its
// signature. The client never validates tokens cryptographically; it only
// needs the expiry to decide whether a round trip is worth attempting.
// The backend remains the authority on token validity.
func decodeExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, common.ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, common.ErrInvalidToken
	}
	return claims.ExpiresAt.Time, nil
}
