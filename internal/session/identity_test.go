package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func TestIdentityFromToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signed(t, jwt.MapClaims{"sub": "user-123", "email": "me@example.com", "exp": exp.Unix()})

	id, err := IdentityFromToken(tok)
	if err != nil {
		t.Fatal(err)
	}
	if id.UserID != "user-123" {
		t.Errorf("UserID = %q, want user-123", id.UserID)
	}
	if id.Email != "me@example.com" {
		t.Errorf("Email = %q", id.Email)
	}
	if !id.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want %v", id.ExpiresAt, exp)
	}
	if id.Expired(time.Now()) {
		t.Error("token reported expired")
	}
	if !id.Expired(exp.Add(time.Minute)) {
		t.Error("token should be expired after exp")
	}
}

func TestIdentityFromTokenNoSubject(t *testing.T) {
	tok := signed(t, jwt.MapClaims{"email": "x@example.com"})
	if _, err := IdentityFromToken(tok); !errors.Is(err, ErrNoSubject) {
		t.Errorf("err = %v, want ErrNoSubject", err)
	}
}

func TestIdentityFromTokenGarbage(t *testing.T) {
	if _, err := IdentityFromToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
