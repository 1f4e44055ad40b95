package usecase

import "errors"

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDuplicateApplication = errors.New("application already exists")
	ErrValidation           = errors.New("validation failed")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInternal             = errors.New("internal error")
)
