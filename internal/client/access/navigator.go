package access

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storerating/internal/client/session"
	"github.com/dmitrijs2005/storerating/internal/logging"
)

// maxRedirects bounds redirect chains; the route table never needs more
// than two hops (/ -> dashboard, or wrong role -> dashboard).
const maxRedirects = 4

// SessionReader is the read side of session.Store.
type SessionReader interface {
	Get() (session.Session, bool)
}

// Outcome is where a navigation ended and why.
type Outcome struct {
	Requested string
	Route     Route
	Found     bool
	// Result is the guard result for the first hop; Allow for public
	// routes and the root resolver.
	Result Result
}

// Navigator resolves locations through the guard.
type Navigator struct {
	sessions SessionReader
	log      logging.Logger
}

func NewNavigator(sessions SessionReader, log logging.Logger) *Navigator {
	return &Navigator{sessions: sessions, log: log}
}

// Navigate follows redirects from path until it reaches a location the
// caller may see, or an unknown path.
func (n *Navigator) Navigate(ctx context.Context, path string) (Outcome, error) {
	out := Outcome{Requested: path, Result: Result{Decision: Allow}}

	current := path
	for hop := 0; hop <= maxRedirects; hop++ {
		route, ok := Lookup(current)
		if !ok {
			out.Route = Route{Path: NotFoundPath, Title: "Page not found"}
			out.Found = false
			return out, nil
		}

		sess, authed := n.sessions.Get()

		var next string
		switch {
		case route.Public:
		case route.Resolver:
			next = Landing(sess, authed)
		default:
			res := Evaluate(route.Required, sess, authed)
			if hop == 0 {
				out.Result = res
			}
			n.log.Debug(ctx, "guard evaluated", "path", current, "decision", res.Decision.String())
			next = res.Redirect
		}

		if next == "" {
			out.Route = route
			out.Found = true
			return out, nil
		}
		current = next
	}
	return out, fmt.Errorf("redirect loop starting at %q", path)
}
