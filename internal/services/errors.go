package services

import "errors"

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict") // e.g., duplicate email, duplicate application
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDeadlinePassed     = errors.New("application deadline has passed")
	ErrJobNotPublished    = errors.New("job is not accepting applications")
	ErrCategoryInUse      = errors.New("category has live jobs")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
