package models

import (
	"errors"
	"strings"
)

// Sentinel failures the service layer reports and handlers translate to
// status codes. Not-found and forbidden are deliberately distinct so a
// caller can tell "nothing to delete" from "exists but not yours".
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
)

// ValidationError carries the human-readable reasons a write was rejected.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Reasons, "; ")
}

func NewValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}
