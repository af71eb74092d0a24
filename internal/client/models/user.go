package models

// User is the identity returned by the login endpoint.
type User struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Role    Role   `json:"role"`
}

// LoginResult is the resultData of POST /auth/login.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16,uppercase,special"`
	Role     Role   `json:"role" validate:"required,role"`
}

// Registration is the self-service sign-up form; the role is always "user".
type Registration struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=16,uppercase,special"`
	Role     Role   `json:"role"`
}

// StoreDraft carries the store created together with a store owner.
type StoreDraft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// NewUser is the admin "add user" form.
type NewUser struct {
	Name     string      `json:"name" validate:"required,min=20,max=60"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8,max=16"`
	Address  string      `json:"address"`
	Role     Role        `json:"role" validate:"required,role"`
	Store    *StoreDraft `json:"store,omitempty"`
}

// PasswordChange is the profile password form. Confirm never leaves the client.
type PasswordChange struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
	Confirm     string `json:"-" validate:"required,eqfield=NewPassword"`
}
