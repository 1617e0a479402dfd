package learnkit

import "github.com/openlearnhq/learnkit/api"

// Role is the authorization role carried by an [Identity]. Exactly one role
// is held per identity and it is immutable for the lifetime of a session;
// role changes require re-authentication.
type Role string

const (
	// RoleStudent is the default role assigned at registration.
	RoleStudent Role = "Student"
	// RoleInstructor marks identities that may author courses and lessons.
	RoleInstructor Role = "Instructor"
	// RoleAdmin marks identities with full administrative access.
	RoleAdmin Role = "Admin"
)

// Valid reports whether r is one of the three known roles. Unknown roles
// round-trip through storage untouched but never satisfy a guard
// requirement and never match the is-role projections.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// Identity is the signed-in principal. An Identity exists if and only if a
// non-expired credential token is held; the pair self-heals by clearing
// both when revalidation fails.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// SessionSnapshot is a read-only copy of the session state tuple
// (identity, credential, readiness). Snapshots are values; mutating one has
// no effect on the owning [Session].
type SessionSnapshot struct {
	// Identity is nil while unauthenticated.
	Identity *Identity
	// Token is the opaque bearer credential, empty while unauthenticated.
	Token string
	// Ready is false only during the initial revalidation window at
	// startup. It becomes true exactly once and stays true thereafter.
	Ready bool
}

// Authenticated reports whether the snapshot carries an identity.
func (s SessionSnapshot) Authenticated() bool {
	return s.Identity != nil
}

// Result is returned by [Session.Login], [Session.Register], and
// [Session.DeleteAccount]. On failure, Message carries the server's
// human-readable explanation (or a generic fallback) and Err wraps the
// matching sentinel from errors.go; session state is left untouched.
type Result struct {
	OK      bool
	Message string
	Err     error
}

func identityFromUser(u *api.User) Identity {
	return Identity{
		ID:    u.ID,
		Email: u.Email,
		Role:  Role(u.Role),
	}
}
