package acorn

// localBlock is the allocation record for the single-goroutine flavor: the
// same bookkeeping as block with plain counts and no synchronization.
type localBlock[T any] struct {
	strong int
	weak   int
	state  State

	value     T
	finalizer func(T)
}

func (b *localBlock[T]) dropPayload() {
	b.state = StateFreed
	if b.finalizer != nil {
		b.finalizer(b.value)
	}
	var zero T
	b.value = zero
}

// LocalCell is the single-goroutine twin of [Cell]: the identical
// create/observe/materialize protocol over plain counts. The cell and every
// handle derived from it must be confined to one goroutine; nothing here
// locks, because by construction nothing races.
type LocalCell[T any] struct {
	b        *localBlock[T]
	consumed bool
}

// NewLocal allocates an empty single-goroutine cell.
func NewLocal[T any](opts ...Option[T]) *LocalCell[T] {
	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	return &LocalCell[T]{b: &localBlock[T]{weak: 1, finalizer: cfg.finalizer}}
}

// Observe returns a new observer handle to the allocation.
//
// Panics with [ErrCellConsumed] after Materialize or Discard.
func (c *LocalCell[T]) Observe() *LocalWeak[T] {
	if c.consumed {
		panic(ErrCellConsumed)
	}
	c.b.weak++
	return &LocalWeak[T]{b: c.b}
}

// Materialize writes value into the allocation and returns the first owning
// handle, consuming the cell. Panics with [ErrCellConsumed] on a second call
// or after Discard.
func (c *LocalCell[T]) Materialize(value T) *LocalStrong[T] {
	if c.consumed {
		panic(ErrCellConsumed)
	}
	c.consumed = true

	b := c.b
	b.value = value
	b.state = StateMaterialized
	b.strong = 1
	return &LocalStrong[T]{b: b}
}

// Discard drops the cell without materializing it; no finalizer runs.
// Idempotent, and a no-op after Materialize.
func (c *LocalCell[T]) Discard() {
	if c.consumed {
		return
	}
	c.consumed = true

	c.b.state = StateDiscarded
	c.b.weak--
}

// State reports the allocation's lifecycle state.
func (c *LocalCell[T]) State() State {
	return c.b.state
}

// LocalWeak is the single-goroutine twin of [Weak].
type LocalWeak[T any] struct {
	b *localBlock[T]
}

// Clone returns another observer handle to the same allocation.
func (w *LocalWeak[T]) Clone() *LocalWeak[T] {
	b := w.b
	if b == nil {
		panic(ErrHandleReleased)
	}
	b.weak++
	return &LocalWeak[T]{b: b}
}

// Upgrade attempts to obtain an owning handle; it succeeds exactly when the
// allocation is materialized and at least one owner still exists.
func (w *LocalWeak[T]) Upgrade() (*LocalStrong[T], bool) {
	b := w.b
	if b == nil {
		panic(ErrHandleReleased)
	}
	if b.strong == 0 {
		return nil, false
	}
	b.strong++
	return &LocalStrong[T]{b: b}, true
}

// Release gives up this handle's weak reservation. Idempotent.
func (w *LocalWeak[T]) Release() {
	b := w.b
	if b == nil {
		return
	}
	w.b = nil
	b.weak--
}

// LocalStrong is the single-goroutine twin of [Strong].
type LocalStrong[T any] struct {
	b *localBlock[T]
}

// Clone returns another owning handle to the same payload.
func (s *LocalStrong[T]) Clone() *LocalStrong[T] {
	b := s.b
	if b == nil {
		panic(ErrHandleReleased)
	}
	b.strong++
	return &LocalStrong[T]{b: b}
}

// Value returns a pointer to the payload.
func (s *LocalStrong[T]) Value() *T {
	if s.b == nil {
		panic(ErrHandleReleased)
	}
	return &s.b.value
}

// Downgrade returns an observer handle without giving up ownership.
func (s *LocalStrong[T]) Downgrade() *LocalWeak[T] {
	b := s.b
	if b == nil {
		panic(ErrHandleReleased)
	}
	b.weak++
	return &LocalWeak[T]{b: b}
}

// Release gives up this handle's share of ownership; the last release drops
// the payload and returns the owners' collective weak reservation.
// Idempotent.
func (s *LocalStrong[T]) Release() {
	b := s.b
	if b == nil {
		return
	}
	s.b = nil
	b.strong--
	if b.strong == 0 {
		b.dropPayload()
		b.weak--
	}
}
