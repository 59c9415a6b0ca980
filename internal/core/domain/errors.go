package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceNotFound indicates a required source file is missing.
	// Recoverable: the affected category renders empty, others stay usable.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrSourceMalformed indicates a source file is structurally invalid
	// or missing required keys. Recoverable, same as ErrSourceNotFound.
	ErrSourceMalformed = errors.New("source file malformed")
)

// LoadError carries the identity of the source that failed to load and,
// for record-level failures, the index of the offending record.
type LoadError struct {
	// Path identifies the source file.
	Path string

	// Record is the zero-based index of the offending record, or -1 when
	// the failure is not record-specific.
	Record int

	// Err is the underlying cause, wrapping one of the sentinel errors.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Record >= 0 {
		return fmt.Sprintf("loading %s: record %d: %v", e.Path, e.Record, e.Err)
	}
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError wraps err with the source file identity.
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{Path: path, Record: -1, Err: err}
}

// NewRecordError wraps err with the source file identity and the index of
// the offending record.
func NewRecordError(path string, record int, err error) *LoadError {
	return &LoadError{Path: path, Record: record, Err: err}
}
