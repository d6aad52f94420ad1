/*
errors.go - Centralized error types for the engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Nothing in the engine logs or swallows an error; every failure
  surfaces to the immediate caller, which owns retry and messaging.

ERROR CATEGORIES:
  1. Configuration errors - invalid worker/entry data, rejected before persistence
  2. Range errors        - inverted date ranges, a caller bug
  3. Not-found errors    - updates or deletes referencing missing identifiers
  4. Storage errors      - the record store failed a read or write
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrConfiguration is returned for invalid domain data: a worker with
	// zero shifts, a shift count above capacity, a malformed weekday set.
	// Not retryable; rejected at the boundary, never discovered mid-calculation.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvalidRange is returned when a range query's start date is after
	// its end date. Not retryable; caller bug.
	ErrInvalidRange = errors.New("invalid range: start after end")

	// ErrNotFound is returned when an update or delete references an
	// identifier that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable is returned when the record store failed to
	// complete a read or write. The in-memory mirror is left in its
	// last-known-good state; callers may retry the whole operation.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ConfigurationError identifies which field violated its invariant.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// InvalidRangeError carries the offending range.
type InvalidRangeError struct {
	Start Date
	End   Date
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: start %s after end %s", e.Start, e.End)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// NotFoundError names the missing record.
type NotFoundError struct {
	Kind string // "worker", "attendance", "payment"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// StorageError wraps a record-store failure with the operation that failed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return ErrStorageUnavailable }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsRetryable returns true if the error might succeed on retry.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrConfiguration) || errors.Is(err, ErrInvalidRange)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
