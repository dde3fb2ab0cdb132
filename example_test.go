package acorn_test

import (
	"errors"
	"fmt"

	"github.com/acornrc/acorn"
)

// Types used in examples only.
type Parent struct {
	Child *Child
}

type Child struct {
	Parent *acorn.Weak[Parent]
}

// NewChild builds a child around a back-reference to its (future) parent.
// Child construction is allowed to fail.
func NewChild(parent *acorn.Weak[Parent], goodDay bool) (*Child, error) {
	if !goodDay {
		parent.Release()
		return nil, errors.New("it is a bad day")
	}
	return &Child{Parent: parent}, nil
}

func ExampleNew() {
	c := acorn.New[int]()
	w := c.Observe()

	if _, ok := w.Upgrade(); !ok {
		fmt.Println("not ready")
	}

	s := c.Materialize(42)
	if v, ok := w.Upgrade(); ok {
		fmt.Println(*v.Value())
		v.Release()
	}

	s.Release()
	if _, ok := w.Upgrade(); !ok {
		fmt.Println("gone")
	}
	w.Release()
	// Output:
	// not ready
	// 42
	// gone
}

func ExampleTryBuild() {
	parent, err := acorn.TryBuild(func(w *acorn.Weak[Parent]) (Parent, error) {
		child, err := NewChild(w.Clone(), true)
		if err != nil {
			return Parent{}, err
		}
		return Parent{Child: child}, nil
	})
	if err != nil {
		panic(err)
	}

	// The child's back-reference closes the cycle.
	back, _ := parent.Value().Child.Parent.Upgrade()
	fmt.Println(back.Value() == parent.Value())
	back.Release()
	parent.Release()
	// Output: true
}

func ExampleTryBuild_failure() {
	_, err := acorn.TryBuild(func(w *acorn.Weak[Parent]) (Parent, error) {
		child, err := NewChild(w.Clone(), false)
		if err != nil {
			return Parent{}, err
		}
		return Parent{Child: child}, nil
	})
	fmt.Println(err)
	// Output: it is a bad day
}

func ExampleWithFinalizer() {
	c := acorn.NewLocal[string](acorn.WithFinalizer(func(s string) {
		fmt.Println("dropped:", s)
	}))

	s := c.Materialize("payload")
	s.Release()
	// Output: dropped: payload
}
