package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// credentialExpired reports whether a JWT credential carries an exp claim in
// the past. Opaque or unparseable credentials are trusted; the backend has
// the final word on them.
func credentialExpired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.After(now)
}
