package acorn

// Weak is a non-owning observer handle to an allocation. It does not keep the
// payload alive and never blocks materialization or teardown; its one read
// operation is [Weak.Upgrade].
//
// The zero value is not useful; handles come from [Cell.Observe],
// [Weak.Clone], or [TryBuild].
type Weak[T any] struct {
	b *block[T]
}

// Clone returns another observer handle to the same allocation.
//
// Panics with [ErrHandleReleased] if this handle was released.
func (w *Weak[T]) Clone() *Weak[T] {
	b := w.b
	if b == nil {
		panic(ErrHandleReleased)
	}
	b.weak.Add(1)
	return &Weak[T]{b: b}
}

// Upgrade attempts to obtain an owning handle. It succeeds exactly when the
// allocation has been materialized and at least one owner still exists; the
// false return is an ordinary outcome, expected both before materialization
// and after the last owner is released.
//
// The CAS loop below may only move the strong count from one nonzero value
// to another: once the count reaches zero the payload is gone for good, and
// an upgrade must never resurrect it.
//
// Panics with [ErrHandleReleased] if this handle was released.
func (w *Weak[T]) Upgrade() (*Strong[T], bool) {
	b := w.b
	if b == nil {
		panic(ErrHandleReleased)
	}
	for {
		n := b.strong.Load()
		if n == 0 {
			return nil, false
		}
		if b.strong.CompareAndSwap(n, n+1) {
			return &Strong[T]{b: b}, true
		}
	}
}

// Release gives up this handle's weak reservation. Release is idempotent:
// further calls on the same handle have no effect, which makes it safe to
// defer and still release early.
func (w *Weak[T]) Release() {
	b := w.b
	if b == nil {
		return
	}
	w.b = nil
	b.releaseWeak()
}

// Strong is an owning handle to a materialized allocation. It keeps the
// payload alive: the payload is dropped when the last owning handle is
// released.
//
// Handles come from [Cell.Materialize], [Weak.Upgrade], [Strong.Clone], or
// [TryBuild].
type Strong[T any] struct {
	b *block[T]
}

// Clone returns another owning handle to the same payload.
//
// Panics with [ErrHandleReleased] if this handle was released.
func (s *Strong[T]) Clone() *Strong[T] {
	b := s.b
	if b == nil {
		panic(ErrHandleReleased)
	}
	b.strong.Add(1)
	return &Strong[T]{b: b}
}

// Value returns a pointer to the payload. The pointer is valid for as long
// as any owning handle exists; do not retain it past the handle's Release.
//
// Panics with [ErrHandleReleased] if this handle was released.
func (s *Strong[T]) Value() *T {
	if s.b == nil {
		panic(ErrHandleReleased)
	}
	return &s.b.value
}

// Downgrade returns an observer handle to the same allocation without giving
// up ownership.
//
// Panics with [ErrHandleReleased] if this handle was released.
func (s *Strong[T]) Downgrade() *Weak[T] {
	b := s.b
	if b == nil {
		panic(ErrHandleReleased)
	}
	b.weak.Add(1)
	return &Weak[T]{b: b}
}

// Release gives up this handle's share of ownership. If it was the last
// owning handle, the payload finalizer runs, the payload slot is cleared,
// and the owners' collective weak reservation is returned; all remaining
// observer handles upgrade unsuccessfully from then on.
//
// Release is idempotent: further calls on the same handle have no effect.
func (s *Strong[T]) Release() {
	b := s.b
	if b == nil {
		return
	}
	s.b = nil
	if b.strong.Add(-1) == 0 {
		b.dropPayload()
		b.releaseWeak()
	}
}
