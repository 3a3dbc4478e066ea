package data

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets an id that no longer
// exists. This indicates a stale reference held by the caller and is never
// silently ignored.
var ErrNotFound = errors.New("record not found")

// ValidationError is a field-level input problem. It blocks the save but is
// never fatal; handlers surface it next to the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CategoryInUseError blocks category deletion while transactions still
// reference it. Refs is shown to the user as an informational count.
type CategoryInUseError struct {
	Refs int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category is referenced by %d transactions", e.Refs)
}
