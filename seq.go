package functional

import "fmt"

// Seq is a lazily evaluated ordered sequence in Go range-function form.
// Operations build new Seqs without materializing elements, so chains
// compose safely over unbounded sequences as long as consumption is finite
// (for example through TakeSeq).
//
// A Seq built from a slice or from SeqOf is re-iterable. ApplySeq iterates
// the value sequence once per contained function and therefore requires a
// re-iterable value Seq; single-shot Seqs support Map, Bind, Filter, Take,
// and Reduce.
type Seq[T any] func(yield func(T) bool)

// SeqOf creates a re-iterable Seq from its arguments.
func SeqOf[T any](values ...T) Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// FilterSeq keeps the elements matching the predicate.
func FilterSeq[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return func(yield func(T) bool) {
		s(func(t T) bool {
			if predicate(t) {
				return yield(t)
			}
			return true
		})
	}
}

// TakeSeq limits the Seq to its first n elements. Iteration of the source
// stops as soon as n elements have been consumed.
func TakeSeq[T any](s Seq[T], n int) Seq[T] {
	return func(yield func(T) bool) {
		count := 0
		s(func(t T) bool {
			if count >= n {
				return false
			}
			count++
			return yield(t)
		})
	}
}

// ConcatSeq chains two Seqs.
func ConcatSeq[T any](first, second Seq[T]) Seq[T] {
	return func(yield func(T) bool) {
		stopped := false
		first(func(t T) bool {
			if !yield(t) {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			return
		}
		second(yield)
	}
}

// ReduceSeq accumulates the Seq left to right. This forces the Seq.
func ReduceSeq[T, U any](s Seq[T], initial U, fn func(U, T) U) U {
	acc := initial
	s(func(t T) bool {
		acc = fn(acc, t)
		return true
	})
	return acc
}

// CollectSeq materializes the Seq into a List. This forces the Seq.
func CollectSeq[T any](s Seq[T]) List[T] {
	var result List[T]
	s(func(t T) bool {
		result = append(result, t)
		return true
	})
	return result
}

// Typeclass operations.

// MapSeq transforms each element lazily (fmap). Order is preserved; no
// element is touched until the result is iterated.
func MapSeq[T, U any](s Seq[T], fn func(T) U) Seq[U] {
	return func(yield func(U) bool) {
		s(func(t T) bool {
			return yield(fn(t))
		})
	}
}

// PureSeq lifts a plain value into a single-element Seq.
func PureSeq[T any](value T) Seq[T] {
	return SeqOf(value)
}

// ApplySeq applies every function in ff to every element of s in
// row-major order: outer loop over functions, inner loop over values.
// The value Seq s is iterated once per function and must be re-iterable.
func ApplySeq[T, U any](s Seq[T], ff Seq[func(T) U]) Seq[U] {
	return func(yield func(U) bool) {
		ff(func(fn func(T) U) bool {
			stopped := false
			s(func(t T) bool {
				if !yield(fn(t)) {
					stopped = true
					return false
				}
				return true
			})
			return !stopped
		})
	}
}

// BindSeq invokes fn lazily once per element and concatenates the
// resulting Seqs in element order (flat-map). An empty Seq yields an
// empty Seq without invoking fn.
func BindSeq[T, U any](s Seq[T], fn func(T) Seq[U]) Seq[U] {
	return func(yield func(U) bool) {
		s(func(t T) bool {
			stopped := false
			fn(t)(func(u U) bool {
				if !yield(u) {
					stopped = true
					return false
				}
				return true
			})
			return !stopped
		})
	}
}

// Map implements Functor.
func (s Seq[T]) Map(fn func(T) T) Functor[T] {
	return MapSeq(s, fn)
}

// Pure implements Applicative by lifting value into a single-element Seq.
// The receiver's contents are ignored.
func (Seq[T]) Pure(value T) Applicative[T] {
	return PureSeq(value)
}

// Bind implements Monad. The continuation must return a Seq.
func (s Seq[T]) Bind(fn func(T) Monad[T]) Monad[T] {
	return BindSeq(s, func(t T) Seq[T] {
		m := fn(t)
		out, ok := m.(Seq[T])
		if !ok {
			panic(fmt.Sprintf("Bind: continuation must return Seq, got %T", m))
		}
		return out
	})
}
