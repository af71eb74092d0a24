package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/logging"
)

// Store is the process-wide holder of the current Session.
//
// Set, Get and Clear are safe for concurrent use; the last write wins. The
// in-memory value is authoritative: a failing slot write is reported to the
// caller but never leaves the store in a half-updated state.
type Store struct {
	mu      sync.RWMutex
	current *Session

	slots SlotRepository
	log   logging.Logger
	now   func() time.Time
}

func NewStore(slots SlotRepository, log logging.Logger) *Store {
	return &Store{slots: slots, log: log, now: time.Now}
}

// Load restores the persisted session, if any. An unreadable slot or an
// expired JWT leaves the store empty and clears the slot.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.slots.Get(ctx, common.SessionSlotKey)
	if err != nil {
		s.log.Warn(ctx, "discarding unreadable session slot", "error", err)
		return s.Clear(ctx)
	}
	if raw == nil {
		return nil
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.log.Warn(ctx, "discarding malformed session slot", "error", err)
		return s.Clear(ctx)
	}
	if TokenExpired(sess.Token, s.now()) {
		s.log.Info(ctx, "stored session expired", "email", sess.Email)
		return s.Clear(ctx)
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	return nil
}

// Set replaces the current session wholesale.
func (s *Store) Set(ctx context.Context, sess Session) error {
	s.mu.Lock()
	cp := sess
	s.current = &cp
	s.mu.Unlock()

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.slots.Set(ctx, common.SessionSlotKey, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Get returns the current session; false means unauthenticated.
func (s *Store) Get() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Token returns the bearer token of the current session, or "".
func (s *Store) Token() string {
	sess, ok := s.Get()
	if !ok {
		return ""
	}
	return sess.Token
}

// Clear removes the session. Calling it without a session is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.slots.Delete(ctx, common.SessionSlotKey); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}
