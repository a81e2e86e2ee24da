package functional

import "fmt"

// Result represents the outcome of an operation that may fail. It holds
// either a success value or an error. The error payload is opaque to this
// package: typeclass operations decide the short-circuit branch on it but
// never inspect or transform it.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is a failure.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value or panics on failure.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("called Unwrap on Err: " + r.err.Error())
	}
	return r.value
}

// UnwrapErr returns the error or panics on success.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic("called UnwrapErr on Ok")
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or computes a default from the
// error.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Match executes one of two functions based on Result state.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// MatchResult executes one of two functions and returns the result.
func MatchResult[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Try wraps a function that may return an error.
func Try[T any](fn func() (T, error)) Result[T] {
	value, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// TryFunc wraps a (value, error) pair, the usual Go return shape.
func TryFunc[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// String implements fmt.Stringer.
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Typeclass operations.

// MapResult transforms the success value (fmap). Failure passes through
// with its error untouched and fn is never invoked.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// PureResult lifts a plain value into a successful Result.
func PureResult[T any](value T) Result[T] {
	return Ok(value)
}

// ApplyResult applies a function contained in ff to the value contained in
// r. Failure on either side propagates; when both sides are failures, the
// value context's error wins. The tie-break is deliberate and tested.
func ApplyResult[T, U any](r Result[T], ff Result[func(T) U]) Result[U] {
	if !r.ok {
		return Err[U](r.err)
	}
	if !ff.ok {
		return Err[U](ff.err)
	}
	return Ok(ff.value(r.value))
}

// BindResult chains a computation that produces a new Result. Failure
// short-circuits without invoking fn.
func BindResult[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// MapResultErr applies a function to the error, leaving success untouched.
func MapResultErr[T any](r Result[T], fn func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](fn(r.err))
}

// BiMapResult maps both cases independently (bifunctor bimap): onOk over
// the success value, onErr over the error.
func BiMapResult[T, U any](r Result[T], onOk func(T) U, onErr func(error) error) Result[U] {
	if r.ok {
		return Ok(onOk(r.value))
	}
	return Err[U](onErr(r.err))
}

// Map implements Functor.
func (r Result[T]) Map(fn func(T) T) Functor[T] {
	return MapResult(r, fn)
}

// Pure implements Applicative by lifting value into a successful Result.
// The receiver's contents are ignored.
func (Result[T]) Pure(value T) Applicative[T] {
	return Ok(value)
}

// Bind implements Monad. The continuation must return a Result.
func (r Result[T]) Bind(fn func(T) Monad[T]) Monad[T] {
	if !r.ok {
		return Err[T](r.err)
	}
	m := fn(r.value)
	out, ok := m.(Result[T])
	if !ok {
		panic(fmt.Sprintf("Bind: continuation must return Result, got %T", m))
	}
	return out
}
