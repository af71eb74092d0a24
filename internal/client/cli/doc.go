// Package cli provides the interactive store rating console.
//
// It wires configuration, the session store, the API client and services,
// and an interactive REPL. The console has a current location (such as
// /admin/stores); every move between locations goes through the access
// navigator, so a signed-out user or a user with the wrong role is sent
// to the login prompt or to their own dashboard.
//
// Key features:
//   - Login / Register / Logout, password change
//   - Admin: statistics, user and store lists, adding users
//   - User: store list with search, sort, paging and rating submission
//   - Store owner: per-store averages and the list of raters
//
// When the API rejects the token the session is cleared and the console
// returns to /auth/login.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
