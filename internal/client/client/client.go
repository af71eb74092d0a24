package client

import (
	"context"

	"github.com/dmitrijs2005/storerating/internal/client/dataview"
	"github.com/dmitrijs2005/storerating/internal/client/models"
)

// Client is the store-rating API contract.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error)
	Register(ctx context.Context, reg models.Registration) (string, error)

	AdminStats(ctx context.Context) (models.AdminStats, error)
	AdminStores(ctx context.Context) ([]dataview.Record, error)
	AdminUsers(ctx context.Context) ([]dataview.Record, error)
	AddUser(ctx context.Context, u models.NewUser) (string, error)

	UserStores(ctx context.Context) ([]dataview.Record, error)
	RateStore(ctx context.Context, storeID models.ID, rating int) (string, error)
	ChangePassword(ctx context.Context, pc models.PasswordChange) (string, error)

	OwnerDashboard(ctx context.Context) ([]models.OwnerStore, error)
}

// SessionStore is the part of session.Store the transport needs.
type SessionStore interface {
	Token() string
	Clear(ctx context.Context) error
}
