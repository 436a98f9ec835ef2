package services

import "errors"

// Domain errors returned by the services. The HTTP layer maps each one to a status and message.
var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrTaskNotFoundForUpdate = errors.New("task not found to update")
	ErrTaskNotFoundForDelete = errors.New("task not found to delete")
	ErrMissingUpdateFields   = errors.New("no fields to update")
	ErrUsernameTaken         = errors.New("username already in use")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
