package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/storerating/internal/client/access"
	"github.com/dmitrijs2005/storerating/internal/client/dataview"
	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/client/screens"
)

var errNoList = errors.New("there is no list at this location")

func (a *App) currentScreen() (*screens.ListScreen, error) {
	s, ok := a.screens[a.currentLocation()]
	if !ok {
		return nil, errNoList
	}
	return s, nil
}

// List reloads the current list. Locations without a list are re-entered
// through the navigator.
func (a *App) List(ctx context.Context) error {
	s, err := a.currentScreen()
	if err != nil {
		return a.Go(ctx, a.currentLocation())
	}
	return a.load(ctx, s)
}

// Search filters the current list; an empty text shows every record.
func (a *App) Search(ctx context.Context, text string) error {
	s, err := a.currentScreen()
	if err != nil {
		return err
	}
	s.Search(text)
	a.show(s)
	return nil
}

// Role narrows the user list to one role; an empty role shows all.
func (a *App) Role(ctx context.Context, role string) error {
	if a.currentLocation() != access.AdminUsersPath {
		return fmt.Errorf("role filter is only available at %s", access.AdminUsersPath)
	}
	if role != "" {
		if _, err := models.ParseRole(role); err != nil {
			return err
		}
	}
	s, err := a.currentScreen()
	if err != nil {
		return err
	}
	s.SetFacet("role", role)
	a.show(s)
	return nil
}

// Sort toggles the order on field, which is a column's field name.
func (a *App) Sort(ctx context.Context, field string) error {
	s, err := a.currentScreen()
	if err != nil {
		return err
	}
	if err := s.Sort(field); err != nil {
		return err
	}
	a.show(s)
	return nil
}

// Page moves to page n, counted from 1.
func (a *App) Page(ctx context.Context, n string) error {
	s, err := a.currentScreen()
	if err != nil {
		return err
	}
	page, err := strconv.Atoi(n)
	if err != nil || page < 1 {
		return fmt.Errorf("invalid page %q", n)
	}
	s.SetPage(page - 1)
	a.show(s)
	return nil
}

func (a *App) PageSize(ctx context.Context, n string) error {
	s, err := a.currentScreen()
	if err != nil {
		return err
	}
	size, err := strconv.Atoi(n)
	if err != nil || !slices.Contains(dataview.PageSizes, size) {
		return fmt.Errorf("page size must be one of %v", dataview.PageSizes)
	}
	s.SetPageSize(size)
	a.show(s)
	return nil
}
