package service

import (
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/pkg/errors"
)

var ErrEmptyContent = errors.New("content is required")

type ForbiddenError struct {
	Message string
}

// Error implements error.
func (e *ForbiddenError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is(err, port.ErrForbidden).
func (e *ForbiddenError) Unwrap() error {
	return port.ErrForbidden
}

func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

const (
	MessageEditForbidden   = "You are not allowed to edit this article."
	MessageDeleteForbidden = "You are not allowed to delete this article."
	MessageUnknownAuthor   = "Your account does not exist anymore."
)
