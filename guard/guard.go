// Package guard makes role-based view-authorization decisions for
// learnkit sessions.
//
// Evaluate is a pure function over a session snapshot and a role
// requirement; it holds no state and is safe to call repeatedly and
// concurrently. Callers must not evaluate before the session is ready
// (see [learnkit.Session.WaitReady]) — during the startup window the
// right treatment is a neutral loading state, not a decision.
package guard

import (
	learnkit "github.com/openlearnhq/learnkit"
)

// Decision is the outcome of an authorization evaluation.
type Decision uint8

const (
	// Allow renders the protected view.
	Allow Decision = iota
	// RedirectToLogin sends an unauthenticated viewer to authentication.
	RedirectToLogin
	// Forbidden blocks an authenticated viewer whose role does not
	// satisfy the requirement. The visual treatment (403 page, redirect
	// to a safe default) is the caller's choice.
	Forbidden
)

// String returns the decision name for logs and tests.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Requirement is the set of roles permitted to access a protected view.
// An empty requirement admits any authenticated identity.
type Requirement []learnkit.Role

// Require builds a Requirement from the listed roles.
func Require(roles ...learnkit.Role) Requirement {
	return Requirement(roles)
}

// Any is the empty requirement: any authenticated identity suffices.
var Any = Requirement{}

func (r Requirement) contains(role learnkit.Role) bool {
	for _, candidate := range r {
		if candidate == role {
			return true
		}
	}
	return false
}

// Evaluate decides whether a viewer with the given session state may
// access a view protected by the given requirement:
//
//  1. no identity → RedirectToLogin, regardless of the requirement
//  2. empty requirement → Allow
//  3. identity role in the requirement → Allow
//  4. otherwise → Forbidden
func Evaluate(snap learnkit.SessionSnapshot, required Requirement) Decision {
	if snap.Identity == nil {
		return RedirectToLogin
	}
	if len(required) == 0 {
		return Allow
	}
	if required.contains(snap.Identity.Role) {
		return Allow
	}
	return Forbidden
}
