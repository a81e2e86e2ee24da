package functional

import "fmt"

// Option represents an optional value that may or may not be present.
// It is a tagged variant (present/absent), not a nil sentinel.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Unwrap returns the contained value or panics if empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("called Unwrap on None")
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// Filter returns None if the predicate returns false.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Match executes one of two functions based on Option state.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// MatchOption executes one of two functions and returns the result.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// FromPtr creates an Option from a pointer.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// ToPtr converts the Option to a pointer.
func (o Option[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// ToSlice converts the Option to a slice of zero or one element.
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Typeclass operations. These are the statically dispatched, type-changing
// forms; the Map/Pure/Bind methods below adapt Option to the capability
// interfaces.

// MapOption transforms the contained value if present (fmap).
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// PureOption lifts a plain value into a present Option.
func PureOption[T any](value T) Option[T] {
	return Some(value)
}

// ApplyOption applies a function contained in ff to the value contained in
// o. The result is present only if both contexts are present.
func ApplyOption[T, U any](o Option[T], ff Option[func(T) U]) Option[U] {
	if o.present && ff.present {
		return Some(ff.value(o.value))
	}
	return None[U]()
}

// BindOption chains a computation that produces a new Option. None
// short-circuits without invoking fn.
func BindOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

// Map implements Functor.
func (o Option[T]) Map(fn func(T) T) Functor[T] {
	return MapOption(o, fn)
}

// Pure implements Applicative by lifting value into a present Option.
// The receiver's contents are ignored.
func (Option[T]) Pure(value T) Applicative[T] {
	return Some(value)
}

// Bind implements Monad. The continuation must return an Option.
func (o Option[T]) Bind(fn func(T) Monad[T]) Monad[T] {
	if !o.present {
		return None[T]()
	}
	m := fn(o.value)
	out, ok := m.(Option[T])
	if !ok {
		panic(fmt.Sprintf("Bind: continuation must return Option, got %T", m))
	}
	return out
}
