package entities

import "errors"

var (
	// ErrTransient wraps any failed host call: connectivity, timeouts, 5xx.
	ErrTransient = errors.New("transient host error")
	// ErrAuth is returned when the host keeps rejecting credentials after a refresh.
	ErrAuth = errors.New("authentication failed")
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrRefConflict is returned when a compare-and-swap ref update is rejected.
	ErrRefConflict = errors.New("ref update rejected")
	// ErrMergeConflict is returned when a merge operation ends with conflicts.
	ErrMergeConflict = errors.New("merge has conflicts")
	// ErrValidation is returned for bad input, before any host call is made.
	ErrValidation = errors.New("validation failed")
)
