package gorm

import (
	"time"

	"github.com/bornholm/bbs/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Provider string `gorm:"index:user_provider_subject,unique"`
	Subject  string `gorm:"index:user_provider_subject,unique"`

	DisplayName string
	Email       string `gorm:"index"`

	PasswordHash []byte

	Articles []*Article `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT;"`
}

type wrappedUser struct {
	u *User
}

// ID implements model.User.
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// DisplayName implements model.User.
func (w *wrappedUser) DisplayName() string {
	return w.u.DisplayName
}

// Email implements model.User.
func (w *wrappedUser) Email() string {
	return w.u.Email
}

// Provider implements model.User.
func (w *wrappedUser) Provider() string {
	return w.u.Provider
}

// Subject implements model.User.
func (w *wrappedUser) Subject() string {
	return w.u.Subject
}

var _ model.User = &wrappedUser{}

func fromUser(u model.User) *User {
	return &User{
		ID:          string(u.ID()),
		Provider:    u.Provider(),
		Subject:     u.Subject(),
		DisplayName: u.DisplayName(),
		Email:       u.Email(),
	}
}
