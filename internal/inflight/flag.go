// Package inflight guards asynchronous operations against re-entry.
package inflight

import (
	"sync/atomic"

	"github.com/dmitrijs2005/storerating/internal/common"
)

// Flag marks one operation as in flight. The zero value is ready to use.
type Flag struct {
	busy atomic.Bool
}

// TryAcquire claims the flag and reports whether it was free.
func (f *Flag) TryAcquire() bool {
	return f.busy.CompareAndSwap(false, true)
}

func (f *Flag) Release() {
	f.busy.Store(false)
}

// Busy reports whether an operation currently holds the flag.
func (f *Flag) Busy() bool {
	return f.busy.Load()
}

// Do runs fn while holding the flag. It returns common.ErrBusy without
// calling fn when another operation holds it.
func (f *Flag) Do(fn func() error) error {
	if !f.TryAcquire() {
		return common.ErrBusy
	}
	defer f.Release()
	return fn()
}
