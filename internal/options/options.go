// Package options implements the functional options taken by the input
// readers and writers.
package options

// Option configures a target of type T and may reject the setting.
type Option[T any] interface {
	apply(T) error
}

// Func wraps a setter function as an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

// apply runs the setter. A nil *Func is a no-op.
func (f *Func[T]) apply(target T) error {
	if f == nil || f.applyFunc == nil {
		return nil
	}

	return f.applyFunc(target)
}

// New wraps a validating setter.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError wraps a setter that accepts every value.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply runs opts against target in order. Nil options are skipped and the
// first error stops the run, leaving target partially configured.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
