package port

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrProtected          = errors.New("protected")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
