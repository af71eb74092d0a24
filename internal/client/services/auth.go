// Package services contains the application services behind console
// commands. Each service validates its form locally, calls the API and
// updates the session where needed.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storerating/internal/client/access"
	"github.com/dmitrijs2005/storerating/internal/client/client"
	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/client/session"
	"github.com/dmitrijs2005/storerating/internal/client/validate"
	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/logging"
)

// Sessions is the session store as seen by the services.
type Sessions interface {
	Get() (session.Session, bool)
	Set(ctx context.Context, sess session.Session) error
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the console.
//
// Contract:
//   - Login: validate, authenticate, store the session and return the
//     landing location for the user's role.
//   - Register: create a plain user account; does not sign in.
//   - Logout: drop the session. Safe to call when signed out.
//   - ChangePassword: update the signed-in user's password.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, reg models.Registration) (string, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, pc models.PasswordChange) (string, error)
}

type authService struct {
	client   client.Client
	sessions Sessions
	log      logging.Logger
}

func NewAuthService(client client.Client, sessions Sessions, log logging.Logger) AuthService {
	return &authService{client: client, sessions: sessions, log: log}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	if err := validate.Credentials(creds); err != nil {
		return "", err
	}

	res, err := a.client.Login(ctx, creds)
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}

	sess := session.FromLogin(res)
	if err := a.sessions.Set(ctx, sess); err != nil {
		// The in-memory session is in place; only persistence failed.
		a.log.Warn(ctx, "session not persisted", "error", err)
	}
	a.log.Info(ctx, "signed in", "email", sess.Email, "role", sess.Role)

	return access.Landing(sess, true), nil
}

func (a *authService) Register(ctx context.Context, reg models.Registration) (string, error) {
	if err := validate.Registration(reg); err != nil {
		return "", err
	}
	msg, err := a.client.Register(ctx, reg)
	if err != nil {
		return "", fmt.Errorf("register error: %w", err)
	}
	return msg, nil
}

func (a *authService) Logout(ctx context.Context) error {
	sess, ok := a.sessions.Get()
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if ok {
		a.log.Info(ctx, "signed out", "email", sess.Email)
	}
	return nil
}

func (a *authService) ChangePassword(ctx context.Context, pc models.PasswordChange) (string, error) {
	if _, ok := a.sessions.Get(); !ok {
		return "", common.ErrNotAuthenticated
	}
	if err := validate.PasswordChange(pc); err != nil {
		return "", err
	}
	msg, err := a.client.ChangePassword(ctx, pc)
	if err != nil {
		return "", fmt.Errorf("change password error: %w", err)
	}
	return msg, nil
}
