package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrorRecordNotFound = errors.New("record not found")

	ErrForeignOrganization = errors.New("cannot access resource owned by other organization")
	ErrNotLoggedIn         = errors.New("no user is logged in")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyUsed    = errors.New("email is already registered")
	ErrSuperAdminOnly      = errors.New("only a super admin can perform this action")
	ErrNoOrganization      = errors.New("no organization in context")
	ErrNoLocationAvailable = errors.New("no location available for this organization")
	ErrSelectLocationFirst = errors.New("select a specific location before checking out")
	ErrTableRequired       = errors.New("select a table for dine-in orders")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrUnsupportedSetting  = errors.New("unsupported setting value")
)

// ValidationError carries the failed validation tag per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func NewValidationError(field, tag string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: tag}}
}
