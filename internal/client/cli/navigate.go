package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storerating/internal/client/access"
	"github.com/dmitrijs2005/storerating/internal/client/screens"
)

// Go moves to path through the navigator, so the guard sees the session as
// it is now. Denials are reported and followed to their redirect.
func (a *App) Go(ctx context.Context, path string) error {
	out, err := a.nav.Navigate(ctx, path)
	if err != nil {
		return err
	}

	if !out.Found {
		a.leave()
		a.setLocation(access.NotFoundPath)
		fmt.Fprintf(a.out, "Page not found: %s\n", path)
		return nil
	}

	switch out.Result.Decision {
	case access.DenyNotAuthenticated:
		fmt.Fprintln(a.out, "Please log in first.")
	case access.DenyWrongRole:
		fmt.Fprintf(a.out, "Access denied: %s is not available for your role.\n", path)
	}

	return a.enter(ctx, out.Route)
}

// Dashboard goes to the landing location of the current user.
func (a *App) Dashboard(ctx context.Context) error {
	return a.Go(ctx, access.RootPath)
}

// enter shows an admitted location. List locations are refetched on every
// entry with a fresh query.
func (a *App) enter(ctx context.Context, route access.Route) error {
	a.leave()
	a.setLocation(route.Path)
	fmt.Fprintf(a.out, "== %s ==\n", route.Title)

	switch route.Path {
	case access.LoginPath:
		fmt.Fprintln(a.out, "Type 'login' to sign in or 'register' to create an account.")
		return nil
	case access.RegisterPath:
		fmt.Fprintln(a.out, "Type 'register' to create an account.")
		return nil
	case access.AdminAddUserPath:
		fmt.Fprintln(a.out, "Type 'adduser' to create a user.")
		return nil
	case access.AdminDashboardPath:
		stats, err := a.adminService.DashboardStats(ctx)
		if err != nil {
			return err
		}
		printAdminStats(a.out, stats)
		return nil
	case access.UserProfilePath, access.OwnerProfilePath:
		if sess, ok := a.sessions.Get(); ok {
			printProfile(a.out, sess)
		}
		fmt.Fprintln(a.out, "Type 'passwd' to change your password.")
		return nil
	}

	s, ok := a.screens[route.Path]
	if !ok {
		return nil
	}
	s.Reset()
	return a.load(ctx, s)
}

// enterForm moves to a public form location without going through the
// navigator; forms are reachable in any state.
func (a *App) enterForm(path string) {
	if a.currentLocation() == path {
		return
	}
	a.leave()
	a.setLocation(path)
}

func (a *App) load(ctx context.Context, s *screens.ListScreen) error {
	if err := s.Fetch(ctx); err != nil {
		return err
	}
	a.show(s)
	return nil
}

func (a *App) show(s *screens.ListScreen) {
	if s.Name() == screens.OwnerRaters {
		a.mu.Lock()
		d := a.owner
		a.mu.Unlock()
		printOwnerSummary(a.out, d)
	}
	renderList(a.out, s)
}
