// Package validate checks console forms before anything is sent to the API.
//
// Failures are reported as Errors, a field -> message map keyed by the JSON
// field name, with the wording the console shows next to each input.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/go-playground/validator/v10"
)

const specialChars = `!@#$%^&*(),.?":{}|<>`

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors maps a form field to the message shown for it.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, common.ErrValidation) hold for every Errors value.
func (e Errors) Is(target error) bool {
	return target == common.ErrValidation
}

// Lookup extracts Errors from err.
func Lookup(err error) (Errors, bool) {
	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// messages are looked up most specific first: Struct.field.tag, Struct.tag,
// field.tag, tag.
var messages = map[string]string{
	"email.required":     "Email is required",
	"email.email":        "Invalid email format",
	"password.required":  "Password is required",
	"password.min":       "Password must be 8-16 characters",
	"password.max":       "Password must be 8-16 characters",
	"password.uppercase": "Must include at least 1 uppercase letter",
	"password.special":   "Must include at least 1 special character",
	"role.required":      "Please select a role",
	"role.role":          "Please select a role",
	"name.required":      "Name is required",
	"name.min":           "Name must be 20-60 characters",
	"name.max":           "Name must be 20-60 characters",
	"address.required":   "Address is required",

	"PasswordChange.required":  "All password fields are required.",
	"PasswordChange.eqfield":   "New password and confirm password do not match.",
	"NewUser.store.storeowner": "Store Owner must have store details.",

	"required": "This field is required",
}

// Validator wraps a configured validator.Validate.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return lowerFirst(f.Name)
		}
		return name
	})

	mustRegister(v, "email", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "uppercase", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsUpper) >= 0
	})
	mustRegister(v, "special", func(fl validator.FieldLevel) bool {
		return strings.ContainsAny(fl.Field().String(), specialChars)
	})
	mustRegister(v, "role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	})

	v.RegisterStructValidation(storeOwnerHasStore, models.NewUser{})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

func storeOwnerHasStore(sl validator.StructLevel) {
	u := sl.Current().Interface().(models.NewUser)
	if u.Role != models.RoleStoreOwner {
		return
	}
	if u.Store == nil || strings.TrimSpace(u.Store.Name) == "" || strings.TrimSpace(u.Store.Email) == "" {
		sl.ReportError(u.Store, "store", "Store", "storeowner", "")
	}
}

// Struct validates s and returns Errors, or nil when s is valid.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	structName, _, _ := strings.Cut(fe.StructNamespace(), ".")
	keys := []string{
		structName + "." + fe.Field() + "." + fe.Tag(),
		structName + "." + fe.Tag(),
		fe.Field() + "." + fe.Tag(),
		fe.Tag(),
	}
	for _, k := range keys {
		if m, ok := messages[k]; ok {
			return m
		}
	}
	return fe.Field() + " is invalid"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

var std = New()

// Credentials checks the login form.
func Credentials(c models.Credentials) error { return std.Struct(c) }

// Registration checks the sign-up form.
func Registration(r models.Registration) error { return std.Struct(r) }

// NewUser checks the admin add-user form.
func NewUser(u models.NewUser) error { return std.Struct(u) }

// PasswordChange checks the profile password form.
func PasswordChange(p models.PasswordChange) error { return std.Struct(p) }
