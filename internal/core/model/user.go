package model

import (
	"fmt"

	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

const ProviderLocal = "local"

type User interface {
	WithID[UserID]

	Provider() string
	Subject() string
	DisplayName() string
	Email() string
}

type BaseUser struct {
	id          UserID
	provider    string
	subject     string
	displayName string
	email       string
}

// ID implements User.
func (u *BaseUser) ID() UserID {
	return u.id
}

// DisplayName implements User.
func (u *BaseUser) DisplayName() string {
	return u.displayName
}

// Email implements User.
func (u *BaseUser) Email() string {
	return u.email
}

// Provider implements User.
func (u *BaseUser) Provider() string {
	return u.provider
}

// Subject implements User.
func (u *BaseUser) Subject() string {
	return u.subject
}

func (u *BaseUser) SetDisplayName(displayName string) {
	u.displayName = displayName
}

func (u *BaseUser) SetEmail(email string) {
	u.email = email
}

var _ User = &BaseUser{}

func NewUser(provider, subject, email, displayName string) *BaseUser {
	return &BaseUser{
		id:          NewUserID(),
		provider:    provider,
		subject:     subject,
		email:       email,
		displayName: displayName,
	}
}

func CopyUser(user User) *BaseUser {
	return &BaseUser{
		id:          user.ID(),
		provider:    user.Provider(),
		subject:     user.Subject(),
		email:       user.Email(),
		displayName: user.DisplayName(),
	}
}

// SameUser reports whether both users designate the same identity.
func SameUser(a, b User) bool {
	if a == nil || b == nil {
		return false
	}

	return a.ID() == b.ID()
}

func UserString(u User) string {
	if u == nil {
		return "anonymous"
	}

	return fmt.Sprintf("%s (%s/%s)", u.ID(), u.Provider(), u.Subject())
}
