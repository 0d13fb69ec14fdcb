package apperrors

import "errors"

var (
	ErrPermissionDenied   = errors.New("location permission denied")
	ErrFixUnavailable     = errors.New("GPS location required")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrConflict           = errors.New("conflicting resource state")
	ErrUnauthorized       = errors.New("session is not authorized")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidLocation    = errors.New("invalid location coordinates")
)
