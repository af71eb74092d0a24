package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/storerating/internal/client/dataview"
	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/tidwall/gjson"
)

const (
	pathLogin          = "/auth/login"
	pathRegister       = "/auth/register"
	pathAdminStats     = "/admin/dashboard-stat"
	pathAdminStores    = "/admin/get-store"
	pathAdminUsers     = "/admin/get-user"
	pathAddUser        = "/admin/add-user"
	pathUserStores     = "/user/get-stores"
	pathRateStore      = "/user/rate-store/"
	pathChangePassword = "/user/edit-password-user"
	pathOwnerStats     = "/owner/dashboard-stat"
)

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	env, err := c.do(ctx, http.MethodPost, pathLogin, creds)
	if err != nil {
		return models.LoginResult{}, err
	}
	var res models.LoginResult
	if err := decodeData(env, &res); err != nil {
		return models.LoginResult{}, err
	}
	if res.Token == "" {
		return models.LoginResult{}, fmt.Errorf("%w: login returned no token", ErrMalformedResponse)
	}
	return res, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (string, error) {
	reg.Role = models.RoleUser
	env, err := c.do(ctx, http.MethodPost, pathRegister, reg)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) AdminStats(ctx context.Context) (models.AdminStats, error) {
	env, err := c.do(ctx, http.MethodGet, pathAdminStats, nil)
	if err != nil {
		return models.AdminStats{}, err
	}
	var stats models.AdminStats
	if err := decodeData(env, &stats); err != nil {
		return models.AdminStats{}, err
	}
	return stats, nil
}

func (c *HTTPClient) AdminStores(ctx context.Context) ([]dataview.Record, error) {
	return c.records(ctx, pathAdminStores)
}

func (c *HTTPClient) AdminUsers(ctx context.Context) ([]dataview.Record, error) {
	return c.records(ctx, pathAdminUsers)
}

func (c *HTTPClient) AddUser(ctx context.Context, u models.NewUser) (string, error) {
	if u.Role != models.RoleStoreOwner {
		u.Store = nil
	}
	env, err := c.do(ctx, http.MethodPost, pathAddUser, u)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) UserStores(ctx context.Context) ([]dataview.Record, error) {
	return c.records(ctx, pathUserStores)
}

func (c *HTTPClient) RateStore(ctx context.Context, storeID models.ID, rating int) (string, error) {
	if storeID == "" {
		return "", fmt.Errorf("rate store: empty store id")
	}
	body := struct {
		Rating int `json:"rating"`
	}{Rating: rating}

	env, err := c.do(ctx, http.MethodPost, pathRateStore+url.PathEscape(storeID.String()), body)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, pc models.PasswordChange) (string, error) {
	env, err := c.do(ctx, http.MethodPatch, pathChangePassword, pc)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) OwnerDashboard(ctx context.Context) ([]models.OwnerStore, error) {
	env, err := c.do(ctx, http.MethodGet, pathOwnerStats, nil)
	if err != nil {
		return nil, err
	}
	if env.Data.Type == gjson.Null || !env.Data.Exists() {
		return []models.OwnerStore{}, nil
	}
	var stores []models.OwnerStore
	if err := decodeData(env, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// records fetches a list endpoint whose resultData is an array of rows.
func (c *HTTPClient) records(ctx context.Context, path string) ([]dataview.Record, error) {
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	rows, err := dataview.RecordsFromJSON(env.Data.Raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, path, err)
	}
	return rows, nil
}
