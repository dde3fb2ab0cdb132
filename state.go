package acorn

// State describes where an allocation is in its lifecycle.
type State int

const (
	// StateEmpty is the initial state: the payload slot holds no value and
	// every upgrade comes back empty.
	StateEmpty State = iota

	// StateMaterialized means the payload has been written and at least one
	// owning handle has existed since; upgrades succeed while any owner
	// remains.
	StateMaterialized

	// StateDiscarded means the cell was dropped without ever being
	// materialized. No value was written, no finalizer will run, and no
	// upgrade will ever succeed.
	StateDiscarded

	// StateFreed means the cell was materialized and the last owning handle
	// has since been released: the payload is gone and upgrades fail again.
	StateFreed
)

// String returns the human-readable name of the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateMaterialized:
		return "materialized"
	case StateDiscarded:
		return "discarded"
	case StateFreed:
		return "freed"
	default:
		return "unknown"
	}
}
