package model

import "errors"

// Errors shared between the services and the HTTP layer.
var (
	ErrDuplicateAccount   = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("missing or malformed token")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access restricted for this role")
	ErrLessonNotFound     = errors.New("lesson not found")
)
