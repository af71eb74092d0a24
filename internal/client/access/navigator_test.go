package access

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/client/session"
	"github.com/dmitrijs2005/storerating/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	sess session.Session
	ok   bool
}

func (f *fakeSessions) Get() (session.Session, bool) { return f.sess, f.ok }

func TestNavigator_Navigate(t *testing.T) {
	tests := []struct {
		name         string
		sessions     *fakeSessions
		path         string
		wantPath     string
		wantFound    bool
		wantDecision Decision
	}{
		{name: "anonymous root", sessions: &fakeSessions{}, path: "/", wantPath: LoginPath, wantFound: true},
		{name: "anonymous guarded", sessions: &fakeSessions{}, path: "/admin/users", wantPath: LoginPath, wantFound: true, wantDecision: DenyNotAuthenticated},
		{name: "anonymous public", sessions: &fakeSessions{}, path: RegisterPath, wantPath: RegisterPath, wantFound: true},
		{name: "admin root", sessions: &fakeSessions{sess: withRole(models.RoleAdmin), ok: true}, path: "/", wantPath: AdminDashboardPath, wantFound: true},
		{name: "admin allowed", sessions: &fakeSessions{sess: withRole(models.RoleAdmin), ok: true}, path: "/admin/stores/", wantPath: "/admin/stores", wantFound: true},
		{name: "user on admin page", sessions: &fakeSessions{sess: withRole(models.RoleUser), ok: true}, path: "/admin/stores", wantPath: UserDashboardPath, wantFound: true, wantDecision: DenyWrongRole},
		{name: "owner on user page", sessions: &fakeSessions{sess: withRole(models.RoleStoreOwner), ok: true}, path: "/user/profile", wantPath: OwnerDashboardPath, wantFound: true, wantDecision: DenyWrongRole},
		{name: "unknown role ends at login", sessions: &fakeSessions{sess: withRole("auditor"), ok: true}, path: "/owner/dashboard", wantPath: LoginPath, wantFound: true, wantDecision: DenyWrongRole},
		{name: "unknown path", sessions: &fakeSessions{sess: withRole(models.RoleAdmin), ok: true}, path: "/nowhere", wantPath: NotFoundPath, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator(tt.sessions, logging.Nop())
			out, err := nav.Navigate(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, out.Route.Path)
			assert.Equal(t, tt.wantFound, out.Found)
			assert.Equal(t, tt.wantDecision, out.Result.Decision)
			assert.Equal(t, tt.path, out.Requested)
		})
	}
}

func TestNavigator_ReevaluatesEveryCall(t *testing.T) {
	sessions := &fakeSessions{sess: withRole(models.RoleAdmin), ok: true}
	nav := NewNavigator(sessions, logging.Nop())

	out, err := nav.Navigate(context.Background(), "/admin/users")
	require.NoError(t, err)
	assert.Equal(t, "/admin/users", out.Route.Path)

	sessions.ok = false
	out, err = nav.Navigate(context.Background(), "/admin/users")
	require.NoError(t, err)
	assert.Equal(t, LoginPath, out.Route.Path)
	assert.Equal(t, DenyNotAuthenticated, out.Result.Decision)
}

func TestVisible(t *testing.T) {
	var paths []string
	for _, r := range Visible(models.RoleStoreOwner) {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{OwnerDashboardPath, "/owner/profile"}, paths)
	assert.Len(t, Visible(models.RoleAdmin), 4)
	assert.Empty(t, Visible("auditor"))
}
