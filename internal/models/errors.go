package models

import (
	"errors"
	"strings"
)

var (
	ErrNoRecord             = errors.New("models: no matching record found")
	ErrPropertyNotFound     = errors.New("models: property not found")
	ErrUserNotFound         = errors.New("models: user not found")
	ErrInquiryNotFound      = errors.New("models: inquiry not found")
	ErrSubscriptionNotFound = errors.New("models: subscription not found")
	ErrInvalidCredentials   = errors.New("models: invalid credentials")
	ErrDuplicateEmail       = errors.New("models: duplicate email")
	ErrDuplicatePhone       = errors.New("models: duplicate phone number")
	ErrForbidden            = errors.New("models: forbidden")
	ErrListingLimitReached  = errors.New("models: property posting limit reached for current plan")
)

// ValidationError carries per-field messages for a 422 response.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
