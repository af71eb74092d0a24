package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storerating/internal/client/access"
	"github.com/dmitrijs2005/storerating/internal/client/client"
	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/common"
)

// getSimpleText, getPassword and getChoice are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getChoice = GetChoice

var errLoginRejected = errors.New("invalid email, password or role")

func roleNames() []string {
	names := make([]string, 0, len(models.Roles))
	for _, r := range models.Roles {
		names = append(names, string(r))
	}
	return names
}

// Login prompts for role, email and password, signs in and moves to the
// role's dashboard. The password bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	a.enterForm(access.LoginPath)

	role, err := getChoice(a.reader, "Role", roleNames(), a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	landing, err := a.authService.Login(ctx, models.Credentials{
		Email:    email,
		Password: string(password),
		Role:     models.Role(role),
	})
	if client.IsAuthError(err) {
		return errLoginRejected
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return a.Go(ctx, landing)
}

// Register creates a plain user account. On success the console moves to
// the login location; registering does not sign in.
func (a *App) Register(ctx context.Context) error {
	a.enterForm(access.RegisterPath)

	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Address", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.authService.Register(ctx, models.Registration{
		Name:     name,
		Email:    email,
		Address:  address,
		Password: string(password),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, orDefault(msg, "Registration successful"))
	a.setLocation(access.LoginPath)
	return nil
}

// Logout drops the session and returns to the login location.
func (a *App) Logout(ctx context.Context) error {
	a.leave()
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.setLocation(access.LoginPath)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	sess, ok := a.sessions.Get()
	if !ok {
		return common.ErrNotAuthenticated
	}
	printProfile(a.out, sess)
	fmt.Fprintln(a.out, "Locations:")
	for _, r := range access.Visible(sess.Role) {
		fmt.Fprintf(a.out, "  %-18s %s\n", r.Path, r.Title)
	}
	return nil
}

// Passwd changes the password from the role's profile location.
func (a *App) Passwd(ctx context.Context) error {
	sess, ok := a.sessions.Get()
	if !ok {
		return common.ErrNotAuthenticated
	}
	if profile := profilePath(sess.Role); profile != "" {
		if err := a.Go(ctx, profile); err != nil {
			return err
		}
		if a.currentLocation() != profile {
			return nil
		}
	}

	oldPassword, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)
	newPassword, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)
	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	msg, err := a.authService.ChangePassword(ctx, models.PasswordChange{
		OldPassword: string(oldPassword),
		NewPassword: string(newPassword),
		Confirm:     string(confirm),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, orDefault(msg, "Password updated successfully"))
	return nil
}

func profilePath(r models.Role) string {
	switch r {
	case models.RoleUser:
		return access.UserProfilePath
	case models.RoleStoreOwner:
		return access.OwnerProfilePath
	}
	return ""
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
