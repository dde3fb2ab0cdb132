package acorn

import "sync/atomic"

// Shared test types and helpers used across test files.

// payload has two fields so a torn publish would be observable: a correctly
// ordered materialize can never let an upgrader see one field without the
// other.
type payload struct {
	ID    int
	Label string
}

// finalizerSpy records finalizer invocations. The counter is atomic so the
// same spy works for the concurrent tests.
type finalizerSpy struct {
	calls atomic.Int64
	last  atomic.Value // payload
}

func (f *finalizerSpy) fn(v payload) {
	f.calls.Add(1)
	f.last.Store(v)
}

// drainWeaks releases every handle in ws.
func drainWeaks[T any](ws ...*Weak[T]) {
	for _, w := range ws {
		w.Release()
	}
}
