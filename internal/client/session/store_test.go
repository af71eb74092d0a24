package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSlots struct {
	getErr, setErr, delErr error
}

func (f *failingSlots) Get(context.Context, string) ([]byte, error) { return nil, f.getErr }
func (f *failingSlots) Set(context.Context, string, []byte) error   { return f.setErr }
func (f *failingSlots) Delete(context.Context, string) error        { return f.delErr }

func adminSession() Session {
	return Session{UserID: "1", Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin, Token: "tok-1"}
}

func TestStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	slots := NewMemorySlots()
	st := NewStore(slots, logging.Nop())

	_, ok := st.Get()
	assert.False(t, ok)
	assert.Empty(t, st.Token())

	require.NoError(t, st.Set(ctx, adminSession()))
	got, ok := st.Get()
	require.True(t, ok)
	assert.Equal(t, adminSession(), got)
	assert.Equal(t, "tok-1", st.Token())

	raw, err := slots.Get(ctx, common.SessionSlotKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"token":"tok-1"`)

	replaced := adminSession()
	replaced.Role = models.RoleUser
	replaced.Token = "tok-2"
	require.NoError(t, st.Set(ctx, replaced))
	got, _ = st.Get()
	assert.Equal(t, models.RoleUser, got.Role)
	assert.Equal(t, "tok-2", got.Token)

	require.NoError(t, st.Clear(ctx))
	require.NoError(t, st.Clear(ctx))
	_, ok = st.Get()
	assert.False(t, ok)

	raw, err = slots.Get(ctx, common.SessionSlotKey)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestStore_LoadRestoresSession(t *testing.T) {
	ctx := context.Background()
	slots := NewMemorySlots()
	require.NoError(t, NewStore(slots, logging.Nop()).Set(ctx, adminSession()))

	st := NewStore(slots, logging.Nop())
	require.NoError(t, st.Load(ctx))

	got, ok := st.Get()
	require.True(t, ok)
	assert.Equal(t, adminSession(), got)
}

func TestStore_LoadEmptySlot(t *testing.T) {
	st := NewStore(NewMemorySlots(), logging.Nop())
	require.NoError(t, st.Load(context.Background()))
	_, ok := st.Get()
	assert.False(t, ok)
}

func TestStore_LoadDiscardsExpiredToken(t *testing.T) {
	ctx := context.Background()
	slots := NewMemorySlots()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	sess := adminSession()
	sess.Token = signedToken(t, now.Add(-time.Hour))
	require.NoError(t, NewStore(slots, logging.Nop()).Set(ctx, sess))

	st := NewStore(slots, logging.Nop())
	st.now = func() time.Time { return now }
	require.NoError(t, st.Load(ctx))

	_, ok := st.Get()
	assert.False(t, ok)
	raw, _ := slots.Get(ctx, common.SessionSlotKey)
	assert.Nil(t, raw)
}

func TestStore_LoadDiscardsMalformedSlot(t *testing.T) {
	ctx := context.Background()
	slots := NewMemorySlots()
	require.NoError(t, slots.Set(ctx, common.SessionSlotKey, []byte("{not json")))

	st := NewStore(slots, logging.Nop())
	require.NoError(t, st.Load(ctx))
	_, ok := st.Get()
	assert.False(t, ok)
}

func TestStore_SlotErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	st := NewStore(&failingSlots{setErr: boom, delErr: boom}, logging.Nop())

	err := st.Set(ctx, adminSession())
	assert.ErrorIs(t, err, boom)
	_, ok := st.Get()
	assert.True(t, ok, "in-memory session survives a slot failure")

	err = st.Clear(ctx)
	assert.ErrorIs(t, err, boom)
	_, ok = st.Get()
	assert.False(t, ok)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	st := NewStore(NewMemorySlots(), logging.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); _ = st.Set(ctx, adminSession()) }()
		go func() { defer wg.Done(); _ = st.Clear(ctx) }()
		go func() { defer wg.Done(); st.Get() }()
	}
	wg.Wait()
}
