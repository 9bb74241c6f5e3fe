// Package optional implements a value which may or may not be present.
package optional

import "fmt"

// Optional holds a value of type T together with whether it has been set. The
// zero Optional is empty.
type Optional[T any] struct {
	value T
	set   bool
}

// Of returns an Optional holding v.
func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Set stores v and marks the Optional as present.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.set = true
}

// Get returns the stored value. It is the zero value of T when nothing has
// been set, so callers should check HasValue first.
func (o Optional[T]) Get() T {
	return o.value
}

// GetOr returns the stored value or def when the Optional is empty.
func (o Optional[T]) GetOr(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// HasValue returns true if a value has been set.
func (o Optional[T]) HasValue() bool {
	return o.set
}

func (o Optional[T]) String() string {
	if !o.set {
		return "none"
	}
	return fmt.Sprint(o.value)
}
