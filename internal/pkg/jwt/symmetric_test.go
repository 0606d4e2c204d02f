package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type staticClock struct{ now time.Time }

func (c staticClock) Now() time.Time { return c.now }

type staticUUID struct{ id string }

func (g staticUUID) Generate() string { return g.id }

func testSecret() []byte {
	return []byte(strings.Repeat("s", 64))
}

func TestNewHS512ShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("too-short")})
	if !errors.Is(err, ErrSigningKeyTooShort) {
		t.Fatalf("NewHS512() error = %v, want ErrSigningKeyTooShort", err)
	}
}

func TestSymmetricRoundTrip(t *testing.T) {
	j, err := NewHS512(Config{
		Secret:    testSecret(),
		Issuer:    "caredent",
		Audiences: []string{"caredent-web"},
		TTL:       time.Hour,
		Clock:     staticClock{now: time.Now()},
		UUID:      staticUUID{id: "token-id-1"},
	})
	if err != nil {
		t.Fatalf("NewHS512() error = %v", err)
	}

	token, err := j.Generate(42, "jane.doe@example.com", "dentist")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := j.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.UserEmail != "jane.doe@example.com" {
		t.Errorf("UserEmail = %q, want %q", claims.UserEmail, "jane.doe@example.com")
	}
	if claims.Role != "dentist" {
		t.Errorf("Role = %q, want %q", claims.Role, "dentist")
	}
	if claims.Issuer != "caredent" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "caredent")
	}
	if claims.ID != "token-id-1" {
		t.Errorf("ID = %q, want %q", claims.ID, "token-id-1")
	}
}

func TestSymmetricVerifyExpired(t *testing.T) {
	j, err := NewHS512(Config{
		Secret:    testSecret(),
		Issuer:    "caredent",
		Audiences: []string{"caredent-web"},
		TTL:       time.Hour,
		Clock:     staticClock{now: time.Now().Add(-2 * time.Hour)},
		UUID:      staticUUID{id: "token-id-2"},
	})
	if err != nil {
		t.Fatalf("NewHS512() error = %v", err)
	}

	token, err := j.Generate(7, "late@example.com", "staff")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := j.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestSymmetricVerifyWrongSecret(t *testing.T) {
	mint, err := NewHS512(Config{
		Secret:    testSecret(),
		Issuer:    "caredent",
		Audiences: []string{"caredent-web"},
		TTL:       time.Hour,
		Clock:     staticClock{now: time.Now()},
		UUID:      staticUUID{id: "token-id-3"},
	})
	if err != nil {
		t.Fatalf("NewHS512() error = %v", err)
	}

	check, err := NewHS512(Config{
		Secret:    []byte(strings.Repeat("x", 64)),
		Issuer:    "caredent",
		Audiences: []string{"caredent-web"},
		TTL:       time.Hour,
		Clock:     staticClock{now: time.Now()},
		UUID:      staticUUID{id: "token-id-3"},
	})
	if err != nil {
		t.Fatalf("NewHS512() error = %v", err)
	}

	token, err := mint.Generate(7, "jane.doe@example.com", "staff")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := check.Verify(token); err == nil {
		t.Fatal("Verify() = nil, want signature error")
	}
}
