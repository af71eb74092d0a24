package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Role is the console audience a user belongs to.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleStoreOwner Role = "store_owner"
)

// Roles lists every known role in display order.
var Roles = []Role{RoleAdmin, RoleUser, RoleStoreOwner}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleStoreOwner:
		return true
	}
	return false
}

// ParseRole converts user input into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// UnmarshalJSON accepts both "admin" and {"name":"admin"}; the user listing
// endpoint returns the latter.
func (r *Role) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		*r = Role(obj.Name)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*r = Role(s)
	return nil
}
