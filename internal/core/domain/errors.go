package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Mapping Errors.

	// ErrShapeMismatch indicates a remote value did not have the shape required
	// to continue decoding (e.g. a struct was expected but a scalar arrived).
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrUnknownEnumValue indicates a remote status or type code outside the
	// closed domain enumeration.
	ErrUnknownEnumValue = errors.New("unknown enumeration value")

	// ErrMissingField indicates a field the domain model requires was absent.
	ErrMissingField = errors.New("missing required field")

	// Tracker Errors.

	// ErrTransport indicates the remote call could not be completed.
	ErrTransport = errors.New("transport failure")

	// ErrTrackerNotConfigured indicates no tracker URL has been configured.
	ErrTrackerNotConfigured = errors.New("tracker not configured")
)
