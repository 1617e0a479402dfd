package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openlearnhq/learnkit/token"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestInspect(t *testing.T) {
	issued := time.Now().Add(-time.Hour).Truncate(time.Second)
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	raw := signedToken(t, jwt.MapClaims{
		"user_id": "u1",
		"role":    "Instructor",
		"iat":     issued.Unix(),
		"exp":     expires.Unix(),
	})

	claims, err := token.Inspect(raw)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if claims.UserID != "u1" {
		t.Fatalf("expected user_id u1, got %q", claims.UserID)
	}
	if claims.Role != "Instructor" {
		t.Fatalf("expected role Instructor, got %q", claims.Role)
	}
	if !claims.IssuedAt.Equal(issued) {
		t.Fatalf("expected iat %v, got %v", issued, claims.IssuedAt)
	}
	if !claims.ExpiresAt.Equal(expires) {
		t.Fatalf("expected exp %v, got %v", expires, claims.ExpiresAt)
	}
}

func TestInspectIgnoresSignature(t *testing.T) {
	// Inspection is display-only: a garbage signature still decodes.
	raw := signedToken(t, jwt.MapClaims{"user_id": "u1"})
	tampered := raw[:len(raw)-4] + "AAAA"

	claims, err := token.Inspect(tampered)
	if err != nil {
		t.Fatalf("Inspect failed on tampered signature: %v", err)
	}
	if claims.UserID != "u1" {
		t.Fatalf("expected claims despite bad signature, got %+v", claims)
	}
}

func TestInspectMissingClaims(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{})

	claims, err := token.Inspect(raw)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if claims.UserID != "" || claims.Role != "" {
		t.Fatalf("expected empty identity claims, got %+v", claims)
	}
	if !claims.IssuedAt.IsZero() || !claims.ExpiresAt.IsZero() {
		t.Fatalf("expected zero times for absent claims, got %+v", claims)
	}
	if claims.Expired(time.Now()) {
		t.Fatal("token without exp must never report expired")
	}
	if claims.TimeLeft(time.Now()) != 0 {
		t.Fatal("token without exp has no measurable time left")
	}
}

func TestInspectMalformed(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "a.b", "!!!.???.###"} {
		if _, err := token.Inspect(raw); !errors.Is(err, token.ErrMalformed) {
			t.Fatalf("Inspect(%q): expected ErrMalformed, got %v", raw, err)
		}
	}
}

func TestClaimsExpiry(t *testing.T) {
	now := time.Now()
	claims := &token.Claims{ExpiresAt: now.Add(30 * time.Minute)}

	if claims.Expired(now) {
		t.Fatal("token expiring in 30m must not be expired now")
	}
	if claims.TimeLeft(now) != 30*time.Minute {
		t.Fatalf("expected 30m left, got %v", claims.TimeLeft(now))
	}

	later := now.Add(time.Hour)
	if !claims.Expired(later) {
		t.Fatal("token must be expired an hour later")
	}
	if claims.TimeLeft(later) != 0 {
		t.Fatalf("expected 0 left after expiry, got %v", claims.TimeLeft(later))
	}
}
