package cli

import (
	"bufio"
	"context"
	"fmt"

	"github.com/dmitrijs2005/storerating/internal/client/access"
)

func (a *App) getStatus() string {
	s := ""
	if sess, ok := a.sessions.Get(); ok {
		s = fmt.Sprintf("%s [%s] ", sess.Name, sess.Role)
	}
	return fmt.Sprintf("(%s%s)", s, a.currentLocation())
}

// Root greets the user, enters the landing location and runs the REPL on
// stdin until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the store rating console (type 'help' for commands)")

	if err := a.Go(ctx, access.RootPath); err != nil {
		if msg := describeError(err); msg != "" {
			printlnFn(msg)
		}
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}
