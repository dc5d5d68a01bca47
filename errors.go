package folio

import (
	"errors"
	"fmt"
)

var (
	// Backing relation of a query does not exist (not provisioned yet).
	ErrTableMissing = errors.New("table does not exist")
	// Update or delete matched no row.
	ErrNotFound = errors.New("record not found")
	// Row returned by the remote store failed validation.
	ErrInvalidRow = errors.New("invalid row")
	// Remote store endpoint or key is empty.
	ErrNotConfigured = errors.New("Supabase credentials not configured")
)

// ValidationError reports caller supplied fields rejected before any remote call.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case "required", "gt":
		return e.Field + " is required"
	case "url":
		return e.Field + " must be a valid url"
	case "email":
		return e.Field + " must be a valid email"
	default:
		return e.Field + " is invalid"
	}
}

// RowError wraps validation failure of a row decoded from table.
type RowError struct {
	Table string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: invalid row: %v", e.Table, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func (e *RowError) Is(target error) bool {
	return target == ErrInvalidRow
}
