package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storerating/internal/client/client"
	"github.com/dmitrijs2005/storerating/internal/client/dataview"
	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/logging"
)

// OwnerDashboard summarises a store owner's stores.
type OwnerDashboard struct {
	Stores []models.OwnerStore
	// AverageRating is the mean of the stores' average ratings, 0 without stores.
	AverageRating float64
	// Raters has one row per rating, tagged with the rated store.
	Raters []dataview.Record
}

type OwnerService interface {
	Dashboard(ctx context.Context) (OwnerDashboard, error)
}

type ownerService struct {
	client client.Client
	log    logging.Logger
}

func NewOwnerService(client client.Client, log logging.Logger) OwnerService {
	return &ownerService{client: client, log: log}
}

func (o *ownerService) Dashboard(ctx context.Context) (OwnerDashboard, error) {
	stores, err := o.client.OwnerDashboard(ctx)
	if err != nil {
		return OwnerDashboard{}, fmt.Errorf("owner dashboard: %w", err)
	}

	raters, err := flattenRaters(stores)
	if err != nil {
		return OwnerDashboard{}, err
	}
	return OwnerDashboard{
		Stores:        stores,
		AverageRating: averageRating(stores),
		Raters:        raters,
	}, nil
}

func averageRating(stores []models.OwnerStore) float64 {
	if len(stores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range stores {
		sum += s.AvgRating
	}
	return sum / float64(len(stores))
}

func flattenRaters(stores []models.OwnerStore) ([]dataview.Record, error) {
	var out []dataview.Record
	for _, s := range stores {
		for _, u := range s.Users {
			row := make(map[string]any, len(u)+3)
			for k, v := range u {
				row[k] = v
			}
			row["storeName"] = s.StoreName
			row["storeEmail"] = s.StoreEmail
			row["storeAddress"] = s.StoreAddress

			rec, err := dataview.RecordFromValue(row)
			if err != nil {
				return nil, fmt.Errorf("flatten raters: %w", err)
			}
			out = append(out, rec)
		}
	}
	return out, nil
}
