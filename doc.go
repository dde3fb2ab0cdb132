// Package acorn provides reference-counted shared cells whose value is
// supplied after the cell is allocated.
//
// A [Cell] starts empty. It can hand out [Weak] observer handles immediately,
// before any value exists; those handles only start upgrading successfully
// once the cell is materialized with a real value. This makes it possible to
// build cyclic, shared-ownership object graphs where a parent must pass a
// back-reference into a child before the parent itself has been constructed —
// including when constructing the child can fail.
//
// # Quick Start
//
//	c := acorn.New[int]()
//	w := c.Observe()
//
//	_, ok := w.Upgrade() // ok == false: nothing to see yet
//
//	s := c.Materialize(42)
//	v, _ := w.Upgrade()  // *v.Value() == 42
//
//	v.Release()
//	s.Release()
//
// # Cyclic construction
//
// [TryBuild] wraps the whole protocol behind one call: it allocates a cell,
// passes an observer handle to your constructor, and materializes the cell
// with the constructor's result — or discards the allocation if the
// constructor fails:
//
//	parent, err := acorn.TryBuild(func(w *acorn.Weak[Parent]) (Parent, error) {
//		child, err := newChild(w.Clone())
//		if err != nil {
//			return Parent{}, err
//		}
//		return Parent{Child: child}, nil
//	})
//
// # Flavors
//
// [Cell], [Weak] and [Strong] use atomic counts and may be shared across
// goroutines.
//
// [LocalCell], [LocalWeak] and [LocalStrong] follow the identical protocol
// with plain counts; the cell and every handle derived from it must stay on a
// single goroutine.
//
// # Handles
//
// Handles are explicit: [Strong.Release] and [Weak.Release] end a handle's
// claim on the allocation, and releasing is idempotent. When the last owning
// handle is released the payload is dropped — the finalizer installed with
// [WithFinalizer] runs exactly once — and every remaining observer handle
// goes back to upgrading unsuccessfully.
package acorn
