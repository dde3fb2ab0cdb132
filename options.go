package acorn

// config holds the per-allocation settings collected from options.
type config[T any] struct {
	finalizer func(T)
}

// Option configures an allocation at creation time.
type Option[T any] func(*config[T])

// WithFinalizer installs fn as the payload finalizer. It runs exactly once,
// with the materialized value, when the last owning handle is released. It
// never runs for a cell that is discarded without materialization, because no
// value was ever written.
func WithFinalizer[T any](fn func(T)) Option[T] {
	return func(c *config[T]) {
		c.finalizer = fn
	}
}
