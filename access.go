package tween

import "unsafe"

// Access reads and writes the value a tween animates. The engine never owns
// the value's storage; it only drives it through this handle.
//
// Handles are stored by value inside nodes and copied whenever a subtree is
// cloned, so implementations must be cheap to copy, and copies must alias
// the same underlying storage.
type Access[T any] interface {
	// Get reads the current value. It must not have side effects.
	Get() T

	// Set overwrites the current value.
	Set(v T)
}

// Ptr is the default Access: a handle over a plain pointer. Copies share
// the pointee.
type Ptr[T any] struct {
	target *T
}

// Of wraps a pointer in a Ptr handle.
func Of[T any](target *T) Ptr[T] {
	return Ptr[T]{target: target}
}

// Get returns the pointed-to value.
func (p Ptr[T]) Get() T { return *p.target }

// Set overwrites the pointed-to value.
func (p Ptr[T]) Set(v T) { *p.target = v }

// Func adapts a getter/setter pair to Access. Use it for derived or
// validated properties, or when a write should trigger an event instead of
// being polled.
type Func[T any] struct {
	get func() T
	set func(T)
}

// Callbacks builds a Func handle from a getter and a setter.
func Callbacks[T any](get func() T, set func(T)) Func[T] {
	return Func[T]{get: get, set: set}
}

// Get calls the getter.
func (f Func[T]) Get() T { return f.get() }

// Set calls the setter.
func (f Func[T]) Set(v T) { f.set(v) }

// Raw accesses the value through a raw pointer. It exists only to animate
// fields of pre-existing models that cannot hand out a typed pointer; it
// performs no checks of any kind. Prefer [Of].
type Raw[T any] struct {
	target unsafe.Pointer
}

// Unsafe wraps a raw pointer in a Raw handle. The pointer must reference a
// valid T for the handle's whole lifetime.
func Unsafe[T any](target unsafe.Pointer) Raw[T] {
	return Raw[T]{target: target}
}

// Get reads the value behind the pointer.
func (r Raw[T]) Get() T { return *(*T)(r.target) }

// Set writes the value behind the pointer.
func (r Raw[T]) Set(v T) { *(*T)(r.target) = v }
