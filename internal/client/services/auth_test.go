package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/storerating/internal/client/access"
	"github.com/dmitrijs2005/storerating/internal/client/client"
	"github.com/dmitrijs2005/storerating/internal/client/dataview"
	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/client/session"
	"github.com/dmitrijs2005/storerating/internal/client/validate"
	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake client ----

type fakeClient struct {
	LoginRet models.LoginResult
	LoginErr error
	MsgErr   error
	Stats    models.AdminStats
	Owner    []models.OwnerStore
	OwnerErr error

	Calls     []string
	LastCreds models.Credentials
	LastUser  models.NewUser
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(_ context.Context, c models.Credentials) (models.LoginResult, error) {
	f.Calls = append(f.Calls, "login")
	f.LastCreds = c
	return f.LoginRet, f.LoginErr
}
func (f *fakeClient) Register(context.Context, models.Registration) (string, error) {
	f.Calls = append(f.Calls, "register")
	return "Registered", f.MsgErr
}
func (f *fakeClient) AdminStats(context.Context) (models.AdminStats, error) {
	f.Calls = append(f.Calls, "stats")
	return f.Stats, f.MsgErr
}
func (f *fakeClient) AdminStores(context.Context) ([]dataview.Record, error) { return nil, nil }
func (f *fakeClient) AdminUsers(context.Context) ([]dataview.Record, error) { return nil, nil }
func (f *fakeClient) AddUser(_ context.Context, u models.NewUser) (string, error) {
	f.Calls = append(f.Calls, "adduser")
	f.LastUser = u
	return "User added", f.MsgErr
}
func (f *fakeClient) UserStores(context.Context) ([]dataview.Record, error) { return nil, nil }
func (f *fakeClient) RateStore(context.Context, models.ID, int) (string, error) {
	return "", nil
}
func (f *fakeClient) ChangePassword(context.Context, models.PasswordChange) (string, error) {
	f.Calls = append(f.Calls, "passwd")
	return "Password updated", f.MsgErr
}
func (f *fakeClient) OwnerDashboard(context.Context) ([]models.OwnerStore, error) {
	f.Calls = append(f.Calls, "owner")
	return f.Owner, f.OwnerErr
}

// ---- helpers ----

func newStore() *session.Store {
	return session.NewStore(session.NewMemorySlots(), logging.Nop())
}

var goodCreds = models.Credentials{Email: "owner@example.com", Password: "Secret#123", Role: models.RoleStoreOwner}

func TestAuth_LoginStoresSessionAndLands(t *testing.T) {
	fc := &fakeClient{LoginRet: models.LoginResult{
		User:  models.User{ID: "9", Name: "Owner", Email: "owner@example.com", Role: models.RoleStoreOwner},
		Token: "tok",
	}}
	st := newStore()
	svc := NewAuthService(fc, st, logging.Nop())

	landing, err := svc.Login(context.Background(), goodCreds)
	require.NoError(t, err)
	assert.Equal(t, access.OwnerDashboardPath, landing)

	sess, ok := st.Get()
	require.True(t, ok)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, models.RoleStoreOwner, sess.Role)
	assert.Equal(t, goodCreds, fc.LastCreds)
}

func TestAuth_LoginValidationSkipsNetwork(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, newStore(), logging.Nop())

	_, err := svc.Login(context.Background(), models.Credentials{Email: "bad", Password: "short", Role: models.RoleUser})
	ve, ok := validate.Lookup(err)
	require.True(t, ok)
	assert.Contains(t, ve, "email")
	assert.Contains(t, ve, "password")
	assert.Empty(t, fc.Calls)
}

func TestAuth_LoginFailureKeepsSignedOut(t *testing.T) {
	apiErr := &client.APIError{Status: 200, Code: 1, Message: "Invalid credentials"}
	fc := &fakeClient{LoginErr: apiErr}
	st := newStore()
	svc := NewAuthService(fc, st, logging.Nop())

	_, err := svc.Login(context.Background(), goodCreds)
	var got *client.APIError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "Invalid credentials", got.Message)

	_, ok := st.Get()
	assert.False(t, ok)
}

func TestAuth_LogoutIdempotent(t *testing.T) {
	st := newStore()
	svc := NewAuthService(&fakeClient{}, st, logging.Nop())
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, session.Session{Token: "t", Role: models.RoleUser}))
	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))
	_, ok := st.Get()
	assert.False(t, ok)
}

func TestAuth_Register(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, newStore(), logging.Nop())
	reg := models.Registration{
		Name: strings.Repeat("r", 25), Email: "r@example.com", Address: "1 Main St", Password: "Secret#123",
	}

	msg, err := svc.Register(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, "Registered", msg)

	fc.MsgErr = errors.New("boom")
	_, err = svc.Register(context.Background(), reg)
	assert.Error(t, err)
}

func TestAuth_ChangePassword(t *testing.T) {
	fc := &fakeClient{}
	st := newStore()
	svc := NewAuthService(fc, st, logging.Nop())
	ctx := context.Background()
	pc := models.PasswordChange{OldPassword: "a", NewPassword: "b", Confirm: "b"}

	_, err := svc.ChangePassword(ctx, pc)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	require.NoError(t, st.Set(ctx, session.Session{Token: "t", Role: models.RoleUser}))

	_, err = svc.ChangePassword(ctx, models.PasswordChange{OldPassword: "a", NewPassword: "b", Confirm: "c"})
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, fc.Calls)

	msg, err := svc.ChangePassword(ctx, pc)
	require.NoError(t, err)
	assert.Equal(t, "Password updated", msg)
}
