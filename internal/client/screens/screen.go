// Package screens holds the list screens of the console. Each screen owns
// its fetched records and its Query; the visible rows are recomputed by the
// data view engine on every call to View.
package screens

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storerating/internal/client/dataview"
	"github.com/dmitrijs2005/storerating/internal/inflight"
	"github.com/dmitrijs2005/storerating/internal/logging"
)

// ErrStale is returned by Fetch when the screen was left while the request
// was in flight; its result is dropped.
var ErrStale = errors.New("screen left before fetch completed")

// Fetcher loads a screen's records.
type Fetcher func(ctx context.Context) ([]dataview.Record, error)

// Column describes one rendered column.
type Column struct {
	Field    string
	Title    string
	Sortable bool
	// Format renders the cell; nil prints the field as text.
	Format func(r dataview.Record) string
}

// Cell renders r for this column.
func (c Column) Cell(r dataview.Record) string {
	if c.Format != nil {
		return c.Format(r)
	}
	return r.String(c.Field)
}

// Config describes a screen.
type Config struct {
	Name         string
	Title        string
	Columns      []Column
	FilterFields []string
	DefaultSort  string
	// Transform reshapes each fetched record before it is stored.
	Transform func(dataview.Record) dataview.Record
}

type ListScreen struct {
	cfg   Config
	fetch Fetcher
	log   logging.Logger
	busy  inflight.Flag

	mu      sync.Mutex
	records []dataview.Record
	loaded  bool
	query   dataview.Query
	facet   facet
	gen     uint64
}

type facet struct {
	field, value string
}

func NewListScreen(cfg Config, fetch Fetcher, log logging.Logger) *ListScreen {
	return &ListScreen{
		cfg:   cfg,
		fetch: fetch,
		log:   log.With("screen", cfg.Name),
		query: dataview.NewQuery(cfg.DefaultSort),
	}
}

func (s *ListScreen) Name() string { return s.cfg.Name }
func (s *ListScreen) Title() string { return s.cfg.Title }
func (s *ListScreen) Columns() []Column { return s.cfg.Columns }
func (s *ListScreen) Busy() bool { return s.busy.Busy() }

// Loaded reports whether at least one fetch has succeeded.
func (s *ListScreen) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Fetch reloads the records. It returns common.ErrBusy while another fetch
// is in flight. On failure the previous records stay in place.
func (s *ListScreen) Fetch(ctx context.Context) error {
	return s.busy.Do(func() error {
		s.mu.Lock()
		gen := s.gen
		s.mu.Unlock()

		records, err := s.fetch(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			s.log.Debug(ctx, "dropping stale fetch result")
			return ErrStale
		}
		if err != nil {
			s.log.Warn(ctx, "fetch failed", "error", err)
			return fmt.Errorf("load %s: %w", s.cfg.Name, err)
		}

		if s.cfg.Transform != nil {
			for i, r := range records {
				records[i] = s.cfg.Transform(r)
			}
		}
		s.records = records
		s.loaded = true
		s.log.Debug(ctx, "records loaded", "count", len(records))
		return nil
	})
}

// Leave invalidates in-flight fetches and forgets the records.
func (s *ListScreen) Leave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.records = nil
	s.loaded = false
}

// Reset restores the initial query and clears any facet.
func (s *ListScreen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = dataview.NewQuery(s.cfg.DefaultSort)
	s.facet = facet{}
}

func (s *ListScreen) Query() dataview.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *ListScreen) Search(text string) {
	s.update(func(q dataview.Query) dataview.Query { return q.WithFilter(text) })
}

// Sort toggles sorting on field. Only sortable columns are accepted.
func (s *ListScreen) Sort(field string) error {
	if !s.sortable(field) {
		return fmt.Errorf("column %q is not sortable", field)
	}
	s.update(func(q dataview.Query) dataview.Query { return q.ToggleSort(field) })
	return nil
}

// SetPage moves to page i, counted from 0.
func (s *ListScreen) SetPage(i int) {
	s.update(func(q dataview.Query) dataview.Query { return q.WithPage(i) })
}

func (s *ListScreen) SetPageSize(n int) {
	s.update(func(q dataview.Query) dataview.Query { return q.WithPageSize(n) })
}

// SetFacet restricts rows to those whose field equals value exactly; an
// empty value removes the restriction. The page resets like a search.
func (s *ListScreen) SetFacet(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facet = facet{field: field, value: value}
	s.query = s.query.WithPage(0)
}

// View computes the visible page.
func (s *ListScreen) View() dataview.ViewResult {
	s.mu.Lock()
	records, q, f := s.records, s.query, s.facet
	s.mu.Unlock()

	filter := dataview.ContainsAny(s.cfg.FilterFields...)
	if f.value != "" {
		filter = dataview.All(filter, dataview.FieldEquals(f.field, f.value))
	}
	return dataview.NewEngine(filter, nil).Compute(records, q)
}

// Row returns the n-th visible row, counted from 1 as displayed.
func (s *ListScreen) Row(n int) (dataview.Record, error) {
	v := s.View()
	i := n - v.Offset() - 1
	if n < 1 || i < 0 || i >= len(v.Rows) {
		return dataview.Record{}, fmt.Errorf("row %d is not on the current page", n)
	}
	return v.Rows[i], nil
}

func (s *ListScreen) update(fn func(dataview.Query) dataview.Query) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = fn(s.query)
}

func (s *ListScreen) sortable(field string) bool {
	for _, c := range s.cfg.Columns {
		if c.Field == field && c.Sortable {
			return true
		}
	}
	return false
}
