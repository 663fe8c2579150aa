// internal/service/errors.go
package service

import "errors"

// Domain errors the transport layer maps to status codes. Validation
// failures travel as *models.ValidationError and carry their own reason.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
)
