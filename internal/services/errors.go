package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error taxonomy. Handlers map these to HTTP status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidRole  = errors.New("invalid role")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrUserNotFound            = fmt.Errorf("user %w", ErrNotFound)
	ErrVendorNotFound          = fmt.Errorf("vendor %w", ErrNotFound)
	ErrPackageNotFound         = fmt.Errorf("package %w", ErrNotFound)
	ErrPortfolioItemNotFound   = fmt.Errorf("portfolio item %w", ErrNotFound)
	ErrInquiryNotFound         = fmt.Errorf("inquiry %w", ErrNotFound)
	ErrBudgetItemNotFound      = fmt.Errorf("budget item %w", ErrNotFound)
	ErrTimelineItemNotFound    = fmt.Errorf("timeline item %w", ErrNotFound)
	ErrNotificationNotFound    = fmt.Errorf("notification %w", ErrNotFound)
	ErrObjectNotFound          = fmt.Errorf("object %w", ErrNotFound)
	ErrSavedVendorNotFound     = fmt.Errorf("saved vendor %w", ErrNotFound)
	ErrConsumerProfileRequired = fmt.Errorf("consumer profile %w", ErrNotFound)
	ErrVendorProfileRequired   = fmt.Errorf("vendor profile %w", ErrNotFound)

	ErrProfileExists  = fmt.Errorf("%w: profile already set up", ErrConflict)
	ErrEmailTaken     = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrNotInquiryPeer = fmt.Errorf("%w: inquiry belongs to another vendor", ErrForbidden)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid or expired refresh token", ErrUnauthorized)
)

// ValidationError lists the offending fields of a rejected payload.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Add records a field failure and returns e for chaining.
func (e *ValidationError) Add(field, msg string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
	return e
}

// OrNil returns nil when no field failed.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
