package guard

import learnkit "github.com/openlearnhq/learnkit"

// RouteTable is a static registry of route-name → [Requirement] declared
// once at startup. It is not safe to mutate after concurrent evaluation
// begins; register everything up front.
type RouteTable struct {
	routes map[string]Requirement
}

// NewRouteTable returns an empty table.
func NewRouteTable() *RouteTable {
	return &RouteTable{routes: make(map[string]Requirement)}
}

// Register declares the requirement for a named route, replacing any
// previous declaration.
func (t *RouteTable) Register(name string, required Requirement) *RouteTable {
	t.routes[name] = required
	return t
}

// Resolve returns the requirement declared for a route.
func (t *RouteTable) Resolve(name string) (Requirement, bool) {
	required, ok := t.routes[name]
	return required, ok
}

// EvaluateRoute evaluates the snapshot against a named route. Routes that
// were never registered are treated as protected with no satisfiable
// requirement: an authenticated viewer gets Forbidden, an unauthenticated
// one RedirectToLogin.
func (t *RouteTable) EvaluateRoute(snap learnkit.SessionSnapshot, name string) Decision {
	required, ok := t.Resolve(name)
	if !ok {
		if snap.Identity == nil {
			return RedirectToLogin
		}
		return Forbidden
	}
	return Evaluate(snap, required)
}

// DefaultRoutes is the application route tree: course and lesson authoring
// is restricted to instructors and admins, everything else behind the
// guard admits any authenticated identity.
func DefaultRoutes() *RouteTable {
	authoring := Require(learnkit.RoleAdmin, learnkit.RoleInstructor)

	return NewRouteTable().
		Register("home", Any).
		Register("profile", Any).
		Register("courses", Any).
		Register("courses/detail", Any).
		Register("courses/create", authoring).
		Register("lessons/view", Any).
		Register("lessons/create", authoring)
}
