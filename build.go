package acorn

// ---------------------------------------------------------------------------
// Cyclic builders
// ---------------------------------------------------------------------------

// TryBuild constructs a value that needs an observer handle to itself before
// it exists, tolerating constructor failure. It is the recommended entry
// point for cyclic graphs:
//
//	parent, err := acorn.TryBuild(func(w *acorn.Weak[Parent]) (Parent, error) {
//		child, err := newChild(w.Clone())
//		if err != nil {
//			return Parent{}, err
//		}
//		return Parent{Child: child}, nil
//	})
//
// TryBuild allocates a cell, derives one observer handle, and invokes
// construct with it. The constructor may clone and store the handle
// arbitrarily, but any Upgrade during construction comes back empty —
// materialization happens only after construct returns.
//
// On success the cell is materialized with the constructed value and the
// first owning handle is returned; every handle captured during construction
// upgrades successfully from then on. On failure the allocation is discarded,
// construct's error is returned as-is, and captured handles never upgrade
// successfully.
func TryBuild[T any](construct func(*Weak[T]) (T, error), opts ...Option[T]) (*Strong[T], error) {
	c := New[T](opts...)

	w := c.Observe()
	defer w.Release()

	value, err := construct(w)
	if err != nil {
		c.Discard()
		return nil, err
	}
	return c.Materialize(value), nil
}

// TryBuildLocal is [TryBuild] over the single-goroutine flavor.
func TryBuildLocal[T any](construct func(*LocalWeak[T]) (T, error), opts ...Option[T]) (*LocalStrong[T], error) {
	c := NewLocal[T](opts...)

	w := c.Observe()
	defer w.Release()

	value, err := construct(w)
	if err != nil {
		c.Discard()
		return nil, err
	}
	return c.Materialize(value), nil
}
