package screens

import (
	"strconv"
	"time"

	"github.com/dmitrijs2005/storerating/internal/client/dataview"
	"github.com/dmitrijs2005/storerating/internal/logging"
)

const (
	AdminStores = "admin-stores"
	AdminUsers  = "admin-users"
	UserStores  = "user-stores"
	OwnerRaters = "owner-raters"
)

func NewAdminStores(fetch Fetcher, log logging.Logger) *ListScreen {
	return NewListScreen(Config{
		Name:  AdminStores,
		Title: "Stores",
		Columns: []Column{
			{Field: "name", Title: "Store Name", Sortable: true},
			{Field: "email", Title: "Email", Sortable: true},
			{Field: "address", Title: "Address", Sortable: true},
			{Field: "owner.name", Title: "Owner", Sortable: true, Format: orDash("owner.name")},
			{Field: "avgRating", Title: "Rating", Sortable: true, Format: stars("avgRating")},
			{Field: "created_at", Title: "Created At", Sortable: true, Format: timestamp("created_at")},
		},
		FilterFields: []string{"name", "email", "address"},
		DefaultSort:  "name",
	}, fetch, log)
}

// NewAdminUsers lists every account. The role facet selects one role.
func NewAdminUsers(fetch Fetcher, log logging.Logger) *ListScreen {
	return NewListScreen(Config{
		Name:  AdminUsers,
		Title: "Users",
		Columns: []Column{
			{Field: "name", Title: "Name", Sortable: true},
			{Field: "email", Title: "Email", Sortable: true},
			{Field: "address", Title: "Address", Sortable: true},
			{Field: "role", Title: "Role", Sortable: true},
			{Field: "avgRating", Title: "Rating", Format: ownerRating},
		},
		FilterFields: []string{"name", "email", "address"},
		DefaultSort:  "name",
		Transform:    FlattenRole,
	}, fetch, log)
}

// NewUserStores is the end-user store list that ratings are submitted from.
func NewUserStores(fetch Fetcher, log logging.Logger) *ListScreen {
	return NewListScreen(Config{
		Name:  UserStores,
		Title: "Stores",
		Columns: []Column{
			{Field: "name", Title: "Store Name", Sortable: true},
			{Field: "address", Title: "Address", Sortable: true},
			{Field: "avgRating", Title: "Overall Rating", Sortable: true, Format: stars("avgRating")},
			{Field: "userRating", Title: "Your Rating", Format: yourRating},
		},
		FilterFields: []string{"name", "address"},
		DefaultSort:  "name",
	}, fetch, log)
}

// NewOwnerRaters lists the users who rated any of the owner's stores.
func NewOwnerRaters(fetch Fetcher, log logging.Logger) *ListScreen {
	return NewListScreen(Config{
		Name:  OwnerRaters,
		Title: "User Ratings",
		Columns: []Column{
			{Field: "name", Title: "User Name", Sortable: true},
			{Field: "email", Title: "Email", Sortable: true},
			{Field: "address", Title: "Address", Sortable: true},
			{Field: "storeName", Title: "Store"},
			{Field: "ratedOn", Title: "Rating"},
		},
		FilterFields: []string{"name"},
		DefaultSort:  "name",
	}, fetch, log)
}

// FlattenRole replaces a {"name": ...} role object with its name so the
// role column can be sorted and matched as text.
func FlattenRole(r dataview.Record) dataview.Record {
	role := r.Get("role")
	if !role.IsObject() {
		return r
	}
	m := r.Map()
	m["role"] = role.Get("name").String()
	flat, err := dataview.RecordFromValue(m)
	if err != nil {
		return r
	}
	return flat
}

func orDash(field string) func(dataview.Record) string {
	return func(r dataview.Record) string {
		if s := r.String(field); s != "" {
			return s
		}
		return "-"
	}
}

func stars(field string) func(dataview.Record) string {
	return func(r dataview.Record) string {
		return formatRating(r.Float(field))
	}
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "*"
}

func yourRating(r dataview.Record) string {
	v := r.Get("userRating")
	if !v.Exists() || v.Int() == 0 {
		return "not rated"
	}
	return formatRating(v.Float())
}

func ownerRating(r dataview.Record) string {
	if r.String("role") != "store_owner" {
		return "-"
	}
	return formatRating(r.Float("avgRating"))
}

func timestamp(field string) func(dataview.Record) string {
	return func(r dataview.Record) string {
		raw := r.String(field)
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return raw
		}
		return t.Local().Format("02/01/2006, 15:04")
	}
}
