package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storerating/internal/client/access"
	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/common"
)

// AddUser collects the add-user form. Store owners are asked for the store
// they own as well.
func (a *App) AddUser(ctx context.Context) error {
	if err := a.Go(ctx, access.AdminAddUserPath); err != nil {
		return err
	}
	if a.currentLocation() != access.AdminAddUserPath {
		return nil
	}

	var u models.NewUser
	var err error
	if u.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if u.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if u.Address, err = getSimpleText(a.reader, "Address", a.out); err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	u.Password = string(password)

	role, err := getChoice(a.reader, "Role", roleNames(), a.out)
	if err != nil {
		return err
	}
	u.Role = models.Role(role)

	if u.Role == models.RoleStoreOwner {
		var st models.StoreDraft
		if st.Name, err = getSimpleText(a.reader, "Store name", a.out); err != nil {
			return err
		}
		if st.Email, err = getSimpleText(a.reader, "Store email", a.out); err != nil {
			return err
		}
		if st.Address, err = getSimpleText(a.reader, "Store address", a.out); err != nil {
			return err
		}
		u.Store = &st
	}

	msg, err := a.adminService.AddUser(ctx, u)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, orDefault(msg, "User added successfully"))
	return nil
}
