package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storerating/internal/client/client"
	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/client/validate"
	"github.com/dmitrijs2005/storerating/internal/logging"
)

// AdminService backs the admin dashboard and the add-user form.
type AdminService interface {
	DashboardStats(ctx context.Context) (models.AdminStats, error)
	AddUser(ctx context.Context, u models.NewUser) (string, error)
}

type adminService struct {
	client client.Client
	log    logging.Logger
}

func NewAdminService(client client.Client, log logging.Logger) AdminService {
	return &adminService{client: client, log: log}
}

func (a *adminService) DashboardStats(ctx context.Context) (models.AdminStats, error) {
	stats, err := a.client.AdminStats(ctx)
	if err != nil {
		return models.AdminStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}

// AddUser creates an account of any role. A store owner is created together
// with their store.
func (a *adminService) AddUser(ctx context.Context, u models.NewUser) (string, error) {
	if err := validate.NewUser(u); err != nil {
		return "", err
	}
	msg, err := a.client.AddUser(ctx, u)
	if err != nil {
		return "", fmt.Errorf("add user: %w", err)
	}
	a.log.Info(ctx, "user added", "email", u.Email, "role", u.Role)
	return msg, nil
}
