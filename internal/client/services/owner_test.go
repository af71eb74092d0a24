package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwner_Dashboard(t *testing.T) {
	fc := &fakeClient{Owner: []models.OwnerStore{
		{StoreName: "Zeta Mart", StoreEmail: "z@m.io", AvgRating: 4, Users: []models.RawUser{
			{"name": "Ann", "email": "ann@x.io", "ratedOn": 4},
			{"name": "Bob", "email": "bob@x.io", "ratedOn": 4},
		}},
		{StoreName: "Alpha Mart", AvgRating: 3, Users: []models.RawUser{
			{"name": "Cy", "email": "cy@x.io", "ratedOn": 3},
		}},
	}}

	d, err := NewOwnerService(fc, logging.Nop()).Dashboard(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 3.5, d.AverageRating, 1e-9)
	require.Len(t, d.Raters, 3)
	assert.Equal(t, "Zeta Mart", d.Raters[1].String("storeName"))
	assert.Equal(t, "Cy", d.Raters[2].String("name"))
	assert.Equal(t, int64(3), d.Raters[2].Get("ratedOn").Int())
}

func TestOwner_Empty(t *testing.T) {
	d, err := NewOwnerService(&fakeClient{}, logging.Nop()).Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, d.AverageRating)
	assert.Empty(t, d.Raters)
}

func TestOwner_DashboardError(t *testing.T) {
	boom := errors.New("boom")
	d, err := NewOwnerService(&fakeClient{OwnerErr: boom}, logging.Nop()).Dashboard(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, d.Raters)
}
