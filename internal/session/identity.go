package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSubject is returned when the access token carries no user id.
var ErrNoSubject = errors.New("access token has no subject")

// Identity is the authenticated user of a session.
type Identity struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
	Token     string
}

// Expired reports whether the token expiry has passed. Tokens without an
// expiry never expire.
func (id Identity) Expired(now time.Time) bool {
	return !id.ExpiresAt.IsZero() && now.After(id.ExpiresAt)
}

// IdentityFromToken extracts the user id from a backend access token. The
// signature is not verified here; the backend verifies it on every request.
func IdentityFromToken(token string) (*Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("read subject: %w", err)
	}
	if sub == "" {
		return nil, ErrNoSubject
	}
	id := &Identity{UserID: sub, Token: token}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	return id, nil
}
