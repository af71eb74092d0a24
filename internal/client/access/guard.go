// Package access decides whether the current caller may enter a console
// location.
//
// Evaluate is a pure function of the required role set and the current
// session; it holds no state and must be called on every navigation, since
// the session can change between two navigations.
package access

import (
	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/client/session"
)

// Decision is the outcome of a guard evaluation.
type Decision int

const (
	Allow Decision = iota
	DenyNotAuthenticated
	DenyWrongRole
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "ALLOW"
	case DenyNotAuthenticated:
		return "DENY_NOT_AUTHENTICATED"
	case DenyWrongRole:
		return "DENY_WRONG_ROLE"
	}
	return "UNKNOWN"
}

// Result pairs a decision with the location the caller should be sent to.
// Redirect is empty when the decision is Allow.
type Result struct {
	Decision Decision
	Redirect string
}

// RoleSet is the set of roles admitted by a location. A nil RoleSet admits
// any authenticated role.
type RoleSet map[models.Role]struct{}

// Roles builds a RoleSet.
func Roles(roles ...models.Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Has reports whether r is in the set.
func (s RoleSet) Has(r models.Role) bool {
	_, ok := s[r]
	return ok
}

const (
	LoginPath          = "/auth/login"
	RegisterPath       = "/auth/register"
	RootPath           = "/"
	NotFoundPath       = "/404"
	AdminDashboardPath = "/admin/dashboard"
	AdminAddUserPath   = "/admin/add-user"
	AdminUsersPath     = "/admin/users"
	AdminStoresPath    = "/admin/stores"
	OwnerDashboardPath = "/owner/dashboard"
	OwnerProfilePath   = "/owner/profile"
	UserDashboardPath  = "/user/dashboard"
	UserProfilePath    = "/user/profile"
)

var dashboards = map[models.Role]string{
	models.RoleAdmin:      AdminDashboardPath,
	models.RoleStoreOwner: OwnerDashboardPath,
	models.RoleUser:       UserDashboardPath,
}

// Evaluate applies the admission rules in order: a missing session or token
// is DenyNotAuthenticated; a role outside a present required set is
// DenyWrongRole with a redirect to that role's dashboard; anything else is
// Allow.
func Evaluate(required RoleSet, sess session.Session, ok bool) Result {
	if !ok || !sess.Authenticated() {
		return Result{Decision: DenyNotAuthenticated, Redirect: LoginPath}
	}
	if required != nil && !required.Has(sess.Role) {
		return Result{Decision: DenyWrongRole, Redirect: dashboardFor(sess.Role)}
	}
	return Result{Decision: Allow}
}

// Landing resolves the root location: the role's dashboard for an
// authenticated caller, the login entry otherwise.
func Landing(sess session.Session, ok bool) string {
	if !ok || !sess.Authenticated() {
		return LoginPath
	}
	return dashboardFor(sess.Role)
}

// dashboardFor falls back to the login entry for roles it does not know.
func dashboardFor(r models.Role) string {
	if p, ok := dashboards[r]; ok {
		return p
	}
	return LoginPath
}
