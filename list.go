package functional

import "fmt"

// List is an ordered, eagerly evaluated sequence of values. All typeclass
// operations preserve element order; Map preserves length as well. Use Seq
// when the sequence should stay lazy.
type List[T any] []T

// ListOf creates a List from its arguments.
func ListOf[T any](values ...T) List[T] {
	return values
}

// Filter keeps the elements matching the predicate, in order.
func (l List[T]) Filter(predicate func(T) bool) List[T] {
	result := make(List[T], 0, len(l))
	for _, v := range l {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Concat appends another List, returning a new List.
func (l List[T]) Concat(other List[T]) List[T] {
	result := make(List[T], 0, len(l)+len(other))
	result = append(result, l...)
	return append(result, other...)
}

// Seq returns a lazy view of the List.
func (l List[T]) Seq() Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l {
			if !yield(v) {
				return
			}
		}
	}
}

// ReduceList accumulates the List left to right.
func ReduceList[T, U any](l List[T], initial U, fn func(U, T) U) U {
	acc := initial
	for _, v := range l {
		acc = fn(acc, v)
	}
	return acc
}

// Typeclass operations.

// MapList transforms each element in order (fmap). Length is preserved.
func MapList[T, U any](l List[T], fn func(T) U) List[U] {
	result := make(List[U], len(l))
	for i, v := range l {
		result[i] = fn(v)
	}
	return result
}

// PureList lifts a plain value into a single-element List.
func PureList[T any](value T) List[T] {
	return List[T]{value}
}

// ApplyList applies every function in ff to every element of l in
// row-major order: outer loop over functions, inner loop over values.
// The result has len(ff) * len(l) elements.
func ApplyList[T, U any](l List[T], ff List[func(T) U]) List[U] {
	result := make(List[U], 0, len(l)*len(ff))
	for _, fn := range ff {
		for _, v := range l {
			result = append(result, fn(v))
		}
	}
	return result
}

// BindList invokes fn once per element and concatenates the resulting
// Lists in element order (flat-map). An empty List yields an empty List
// without invoking fn.
func BindList[T, U any](l List[T], fn func(T) List[U]) List[U] {
	result := make(List[U], 0, len(l))
	for _, v := range l {
		result = append(result, fn(v)...)
	}
	return result
}

// Map implements Functor.
func (l List[T]) Map(fn func(T) T) Functor[T] {
	return MapList(l, fn)
}

// Pure implements Applicative by lifting value into a single-element List.
// The receiver's contents are ignored.
func (List[T]) Pure(value T) Applicative[T] {
	return PureList(value)
}

// Bind implements Monad. The continuation must return a List.
func (l List[T]) Bind(fn func(T) Monad[T]) Monad[T] {
	result := make(List[T], 0, len(l))
	for _, v := range l {
		m := fn(v)
		out, ok := m.(List[T])
		if !ok {
			panic(fmt.Sprintf("Bind: continuation must return List, got %T", m))
		}
		result = append(result, out...)
	}
	return result
}
