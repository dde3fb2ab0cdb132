package acorn

import "errors"

// Misuse of a cell or handle is a programming error, not a recoverable
// condition, so these values are used as panic values rather than returned.
// An upgrade that comes back empty is not misuse — Upgrade reports it with a
// plain false.
var (
	// ErrCellConsumed is the panic value when Materialize or Observe is
	// called on a cell that has already been materialized or discarded.
	ErrCellConsumed = errors.New("cell already consumed")

	// ErrHandleReleased is the panic value when Clone, Upgrade or Value is
	// called on a handle after its Release.
	ErrHandleReleased = errors.New("handle already released")
)
