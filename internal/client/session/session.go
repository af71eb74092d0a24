// Package session holds the authenticated identity of the console.
//
// A Store keeps exactly one live Session in memory and mirrors it into a
// single persisted slot (see SlotRepository) keyed by common.SessionSlotKey.
// The store is the only owner of session state: the access guard and the
// transport client receive it by injection and read it on every use.
package session

import (
	"time"

	"github.com/dmitrijs2005/storerating/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated identity plus its bearer token.
type Session struct {
	UserID  models.ID   `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Address string      `json:"address,omitempty"`
	Role    models.Role `json:"role"`
	Token   string      `json:"token"`
}

// FromLogin builds a Session from a login response.
func FromLogin(r models.LoginResult) Session {
	return Session{
		UserID:  r.User.ID,
		Name:    r.User.Name,
		Email:   r.User.Email,
		Address: r.User.Address,
		Role:    r.User.Role,
		Token:   r.Token,
	}
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// TokenExpired reports whether token is a JWT whose exp claim lies before now.
// The signature is not verified: the console only needs to know whether the
// server would still accept the token. Opaque tokens never expire here.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
