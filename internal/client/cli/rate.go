package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storerating/internal/client/access"
	"github.com/dmitrijs2005/storerating/internal/client/rating"
)

// Rate opens the rating of the store shown in the given row.
func (a *App) Rate(ctx context.Context, row string) error {
	if a.currentLocation() != access.UserDashboardPath {
		return fmt.Errorf("stores can only be rated at %s", access.UserDashboardPath)
	}
	n, err := strconv.Atoi(row)
	if err != nil {
		return fmt.Errorf("invalid row %q", row)
	}
	s, err := a.currentScreen()
	if err != nil {
		return err
	}
	store, err := s.Row(n)
	if err != nil {
		return err
	}
	if err := a.rating.OpenFor(store); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Rating %s\n", store.String("name"))
	a.printPending()
	fmt.Fprintln(a.out, "Use 'stars <1-5>' to choose, then 'submit' or 'cancel'.")
	return nil
}

func (a *App) Stars(ctx context.Context, n string) error {
	v, err := strconv.Atoi(n)
	if err != nil {
		return rating.ErrOutOfRange
	}
	if err := a.rating.SetValue(v); err != nil {
		return err
	}
	a.printPending()
	return nil
}

// Submit sends the pending rating and shows the refreshed store list.
func (a *App) Submit(ctx context.Context) error {
	msg, err := a.rating.Submit(ctx)
	if err != nil && !errors.Is(err, rating.ErrRefreshFailed) {
		return err
	}
	fmt.Fprintln(a.out, orDefault(msg, "Rating submitted successfully"))
	if err != nil {
		return err
	}

	if s, serr := a.currentScreen(); serr == nil {
		a.show(s)
	}
	return nil
}

func (a *App) Cancel(ctx context.Context) error {
	if err := a.rating.Cancel(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Rating cancelled")
	return nil
}

func (a *App) printPending() {
	v := a.rating.Pending()
	if v == 0 {
		fmt.Fprintln(a.out, "Your rating: none selected")
		return
	}
	fmt.Fprintf(a.out, "Your rating: %s%s (%d)\n", strings.Repeat("*", v), strings.Repeat(".", rating.MaxStars-v), v)
}
