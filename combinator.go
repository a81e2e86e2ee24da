package functional

// Function combinators. Every combinator defers evaluation: building a
// composed function never invokes the wrapped functions, and the returned
// function is reusable across invocations. Combinators add no error
// handling of their own; panics raised by wrapped functions propagate
// unchanged.

// Compose combines two functions right to left: Compose(g, f)(x) == g(f(x)).
func Compose[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe combines two functions left to right: Pipe(f, g)(x) == g(f(x)).
func Pipe[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// ComposeAll chains endomorphisms right to left.
func ComposeAll[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// PipeAll chains endomorphisms left to right.
func PipeAll[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for _, fn := range fns {
			result = fn(result)
		}
		return result
	}
}

// Curry converts a two-argument function to curried form:
// Curry(fn)(a)(b) == fn(a, b). Arity is fixed at two; see Curry3 for
// three-argument functions.
func Curry[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Curry3 converts a three-argument function to curried form.
func Curry3[A, B, C, D any](fn func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return fn(a, b, c)
			}
		}
	}
}

// Uncurry converts a curried function back to two-argument form.
func Uncurry[A, B, C any](fn func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return fn(a)(b)
	}
}

// Uncurry3 converts a curried function back to three-argument form.
func Uncurry3[A, B, C, D any](fn func(A) func(B) func(C) D) func(A, B, C) D {
	return func(a A, b B, c C) D {
		return fn(a)(b)(c)
	}
}

// Flip swaps the arguments of a two-argument function.
func Flip[A, B, C any](fn func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return fn(a, b)
	}
}

// Const returns a function that ignores its argument and always returns
// the given value.
func Const[T, U any](value T) func(U) T {
	return func(_ U) T {
		return value
	}
}

// Identity returns its input unchanged.
func Identity[T any](value T) T {
	return value
}
