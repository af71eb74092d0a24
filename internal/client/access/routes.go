package access

import (
	"strings"

	"github.com/dmitrijs2005/storerating/internal/client/models"
)

// Route is a console location. Public routes skip the guard; the root route
// is a pure redirect resolver.
type Route struct {
	Path     string
	Title    string
	Public   bool
	Resolver bool
	Required RoleSet
}

// Routes is the console's route table.
var Routes = []Route{
	{Path: LoginPath, Title: "Login", Public: true},
	{Path: RegisterPath, Title: "Register", Public: true},
	{Path: RootPath, Title: "Home", Resolver: true},

	{Path: AdminDashboardPath, Title: "Admin dashboard", Required: Roles(models.RoleAdmin)},
	{Path: AdminAddUserPath, Title: "Add user", Required: Roles(models.RoleAdmin)},
	{Path: AdminUsersPath, Title: "User management", Required: Roles(models.RoleAdmin)},
	{Path: AdminStoresPath, Title: "Store management", Required: Roles(models.RoleAdmin)},

	{Path: UserDashboardPath, Title: "Stores", Required: Roles(models.RoleUser)},
	{Path: UserProfilePath, Title: "My profile", Required: Roles(models.RoleUser)},

	{Path: OwnerDashboardPath, Title: "Owner dashboard", Required: Roles(models.RoleStoreOwner)},
	{Path: OwnerProfilePath, Title: "My profile", Required: Roles(models.RoleStoreOwner)},
}

// Lookup finds the route for path. Trailing slashes are ignored.
func Lookup(path string) (Route, bool) {
	if path != RootPath {
		path = strings.TrimRight(path, "/")
	}
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Visible lists the guarded routes the role may enter, in table order.
func Visible(role models.Role) []Route {
	var out []Route
	for _, r := range Routes {
		if r.Public || r.Resolver {
			continue
		}
		if r.Required == nil || r.Required.Has(role) {
			out = append(out, r)
		}
	}
	return out
}
