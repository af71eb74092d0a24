package services

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_AddUser(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAdminService(fc, logging.Nop())
	ctx := context.Background()

	u := models.NewUser{
		Name: strings.Repeat("o", 22), Email: "o@example.com", Password: "password1", Role: models.RoleStoreOwner,
	}
	_, err := svc.AddUser(ctx, u)
	assert.ErrorIs(t, err, common.ErrValidation, "store owner without store")
	assert.Empty(t, fc.Calls)

	u.Store = &models.StoreDraft{Name: "Zeta Mart", Email: "zeta@mart.io"}
	msg, err := svc.AddUser(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, "User added", msg)
	assert.Equal(t, "Zeta Mart", fc.LastUser.Store.Name)
}

func TestAdmin_DashboardStats(t *testing.T) {
	fc := &fakeClient{Stats: models.AdminStats{TotalUsers: 3, TotalStores: 1, TotalRatings: 7}}
	stats, err := NewAdminService(fc, logging.Nop()).DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalRatings)
}
