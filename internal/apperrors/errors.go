package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange indicates a malformed date range (from >= to). It is fatal
// to the call that supplied the range and is never retried.
var ErrInvalidRange = errors.New("invalid date range")

// ErrNoRowsFound indicates the fetched content contained no structurally valid
// data rows at all. Callers use it to tell "source format changed" apart from
// "rows existed but none passed validation" (which yields an empty result, not
// an error).
var ErrNoRowsFound = errors.New("no data rows found in content")

// FetchError is returned when all retry attempts against the upstream source
// are exhausted for one window. It degrades only that window, not the run.
type FetchError struct {
	Pair string
	From int64
	To   int64
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed for %s [%d,%d]: %v", e.Pair, e.From, e.To, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StoreError wraps a transactional persistence failure. The batch it covers
// was rolled back in full.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failed: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
