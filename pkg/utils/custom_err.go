package utils

import "errors"

var (
	ErrSessionNotFound   = errors.New("chat session not found")
	ErrExcursionNotFound = errors.New("excursion not found")
	ErrCityNotFound      = errors.New("city not found")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrChatNotCompleted  = errors.New("chat not completed")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDatabaseError     = errors.New("database error")
)
