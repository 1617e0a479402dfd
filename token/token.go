// Package token inspects the opaque bearer credential without verifying
// it.
//
// The server issues JWTs, and UIs occasionally want what is inside them —
// expiry for a "session about to end" banner, the subject for debugging.
// Nothing here is trusted: the signature is never checked client-side, and
// inspection never substitutes for server revalidation. The session core
// does not depend on this package.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned when the credential is not a parseable JWT.
var ErrMalformed = errors.New("token: malformed credential")

// Claims is the unverified payload of a credential.
type Claims struct {
	// UserID is the account identifier the token was issued for.
	UserID string
	// Role is the role claim embedded at issue time. The authoritative
	// role lives on the server; this is a display hint only.
	Role string
	// IssuedAt and ExpiresAt are zero when the claim is absent.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim has passed. A token
// without an exp claim never reports expired.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// TimeLeft returns the remaining validity, zero when expired or when no
// exp claim is present.
func (c *Claims) TimeLeft(now time.Time) time.Duration {
	if c.ExpiresAt.IsZero() || now.After(c.ExpiresAt) {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}

// Inspect decodes raw without signature verification.
func Inspect(raw string) (*Claims, error) {
	parser := jwt.NewParser()

	var claims jwt.MapClaims
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}

	out := &Claims{}
	if userID, ok := claims["user_id"].(string); ok {
		out.UserID = userID
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
