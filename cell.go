package acorn

import "sync/atomic"

// block is the allocation record shared by one cell and every handle derived
// from it.
//
// The payload slot is valid only while state is StateMaterialized and strong
// is nonzero. The weak count includes one reservation that is held first by
// the cell itself and, after Materialize, collectively by the owning handles;
// it is what keeps the record's identity alive for observers after the
// payload is gone.
type block[T any] struct {
	strong atomic.Int64
	weak   atomic.Int64
	state  atomic.Uint32

	value     T
	finalizer func(T)
}

// dropPayload runs the finalizer and zeroes the slot. Called exactly once,
// by whichever Release brought the strong count to zero.
func (b *block[T]) dropPayload() {
	b.state.Store(uint32(StateFreed))
	if b.finalizer != nil {
		b.finalizer(b.value)
	}
	var zero T
	b.value = zero
}

// releaseWeak gives up one weak reservation.
func (b *block[T]) releaseWeak() {
	b.weak.Add(-1)
}

// Cell is an allocation that starts without a value. Observer handles can be
// taken from it right away with [Cell.Observe]; they begin upgrading
// successfully only after [Cell.Materialize] supplies the value.
//
// A cell is single-use: exactly one of Materialize or Discard terminates it.
// The cell itself must not be shared across goroutines (handles from the
// Observe side may be). Use [New] to create one; for the single-goroutine
// flavor see [LocalCell].
type Cell[T any] struct {
	b        *block[T]
	consumed bool
}

// New allocates an empty cell. The allocation starts with no owning handles
// and one internal weak reservation held by the cell itself.
func New[T any](opts ...Option[T]) *Cell[T] {
	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &block[T]{finalizer: cfg.finalizer}
	b.weak.Store(1)
	return &Cell[T]{b: b}
}

// Observe returns a new observer handle to the allocation. Any number of
// handles may be taken, and each may be cloned freely; all of them upgrade
// unsuccessfully until Materialize.
//
// Panics with [ErrCellConsumed] after Materialize or Discard.
func (c *Cell[T]) Observe() *Weak[T] {
	if c.consumed {
		panic(ErrCellConsumed)
	}
	c.b.weak.Add(1)
	return &Weak[T]{b: c.b}
}

// Materialize writes value into the allocation and returns the first owning
// handle. The payload write is published before the strong count becomes
// observable as nonzero, so a concurrent [Weak.Upgrade] either misses the
// transition entirely or sees the complete value — never a partial one.
//
// Materialize consumes the cell; the internal weak reservation passes to the
// owning handles as a group. Panics with [ErrCellConsumed] on a second call
// or after Discard.
func (c *Cell[T]) Materialize(value T) *Strong[T] {
	if c.consumed {
		panic(ErrCellConsumed)
	}
	c.consumed = true

	b := c.b
	b.value = value
	b.state.Store(uint32(StateMaterialized))
	b.strong.Store(1)
	return &Strong[T]{b: b}
}

// Discard drops the cell without materializing it. The payload slot was never
// written, so no finalizer runs; outstanding observer handles are left
// permanently unable to upgrade.
//
// Discard is idempotent and is a no-op after Materialize, so it is safe to
// defer on paths that may or may not reach Materialize.
func (c *Cell[T]) Discard() {
	if c.consumed {
		return
	}
	c.consumed = true

	c.b.state.Store(uint32(StateDiscarded))
	c.b.releaseWeak()
}

// State reports the allocation's lifecycle state. It remains queryable after
// the cell has been consumed.
func (c *Cell[T]) State() State {
	return State(c.b.state.Load())
}
