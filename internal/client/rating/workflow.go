// Package rating drives the "rate a store" interaction: pick a store, choose
// one to five stars, submit, then refresh the store list from the server.
package rating

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storerating/internal/client/dataview"
	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/logging"
)

const (
	MinStars = 1
	MaxStars = 5
)

var (
	ErrNoRating      = errors.New("choose a rating between 1 and 5 first")
	ErrOutOfRange    = errors.New("rating must be between 1 and 5")
	ErrRefreshFailed = errors.New("rating saved but store list refresh failed")
)

type State int

const (
	Idle State = iota
	Editing
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Editing:
		return "EDITING"
	case Submitting:
		return "SUBMITTING"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Submitter sends a rating to the API.
type Submitter interface {
	RateStore(ctx context.Context, storeID models.ID, rating int) (string, error)
}

// Workflow is the rating state machine. It is safe for concurrent use; a
// second Submit while one is in flight gets common.ErrBusy.
type Workflow struct {
	mu       sync.Mutex
	state    State
	selected dataview.Record
	pending  int

	api     Submitter
	refresh func(ctx context.Context) error
	log     logging.Logger
}

// NewWorkflow returns an idle workflow. refresh re-fetches the store list
// after a successful submission; it may be nil.
func NewWorkflow(api Submitter, refresh func(ctx context.Context) error, log logging.Logger) *Workflow {
	return &Workflow{api: api, refresh: refresh, log: log}
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Selected returns the store being rated, if any.
func (w *Workflow) Selected() (dataview.Record, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selected, w.state != Idle
}

// Pending is the star value chosen so far; 0 means none.
func (w *Workflow) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending
}

// OpenFor starts editing a rating for store. The pending value starts at
// the user's previous rating of that store, or 0.
func (w *Workflow) OpenFor(store dataview.Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Idle {
		return fmt.Errorf("%w: open rating in state %s", common.ErrInvalidState, w.state)
	}

	prior := int(store.Get("userRating").Int())
	if prior < MinStars || prior > MaxStars {
		prior = 0
	}

	w.state = Editing
	w.selected = store
	w.pending = prior
	return nil
}

func (w *Workflow) SetValue(v int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Editing {
		return fmt.Errorf("%w: set rating in state %s", common.ErrInvalidState, w.state)
	}
	if v < MinStars || v > MaxStars {
		return ErrOutOfRange
	}
	w.pending = v
	return nil
}

// Cancel discards the pending rating.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Editing {
		return fmt.Errorf("%w: cancel in state %s", common.ErrInvalidState, w.state)
	}
	w.reset()
	return nil
}

// Submit sends the pending rating. With no rating chosen nothing is sent
// and the workflow stays in Editing. Otherwise the workflow is back in Idle
// when Submit returns, whatever the outcome; only a successful submission
// refreshes the store list.
func (w *Workflow) Submit(ctx context.Context) (string, error) {
	w.mu.Lock()
	switch w.state {
	case Submitting:
		w.mu.Unlock()
		return "", common.ErrBusy
	case Editing:
	default:
		w.mu.Unlock()
		return "", fmt.Errorf("%w: submit in state %s", common.ErrInvalidState, w.state)
	}
	if w.pending == 0 {
		w.mu.Unlock()
		return "", ErrNoRating
	}

	w.state = Submitting
	storeID := models.ID(w.selected.String("id"))
	value := w.pending
	w.mu.Unlock()

	msg, err := w.api.RateStore(ctx, storeID, value)

	w.mu.Lock()
	w.reset()
	w.mu.Unlock()

	if err != nil {
		w.log.Warn(ctx, "rating rejected", "store_id", storeID, "rating", value, "error", err)
		return "", err
	}
	w.log.Info(ctx, "rating submitted", "store_id", storeID, "rating", value)

	if w.refresh != nil {
		if err := w.refresh(ctx); err != nil {
			return msg, fmt.Errorf("%w: %v", ErrRefreshFailed, err)
		}
	}
	return msg, nil
}

func (w *Workflow) reset() {
	w.state = Idle
	w.selected = dataview.Record{}
	w.pending = 0
}
