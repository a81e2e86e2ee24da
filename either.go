package functional

import "fmt"

// Either holds exactly one of two alternatives, tagged Left or Right.
// Right conventionally carries the success path. Unlike Result, the left
// side is an arbitrary type rather than an error, so Either is the shape
// with full bifunctor capability: both sides map independently.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds a left-tagged Either.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right builds a right-tagged Either.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft reports whether the left alternative is set.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the right alternative is set.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue extracts the left value, panicking on a Right.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic("called LeftValue on Right")
	}
	return e.left
}

// RightValue extracts the right value, panicking on a Left.
func (e Either[L, R]) RightValue() R {
	if !e.isRight {
		panic("called RightValue on Left")
	}
	return e.right
}

// LeftOr extracts the left value, falling back to defaultValue on a Right.
func (e Either[L, R]) LeftOr(defaultValue L) L {
	if !e.isRight {
		return e.left
	}
	return defaultValue
}

// RightOr extracts the right value, falling back to defaultValue on a Left.
func (e Either[L, R]) RightOr(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// Match runs onLeft or onRight depending on which side is set.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// MatchEither runs onLeft or onRight and returns what it produces.
func MatchEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Swap turns a Left into a Right and vice versa, keeping the value.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MapEither transforms the right value (fmap, right-biased); a Left passes
// through untouched.
func MapEither[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L, U](fn(e.right))
	}
	return Left[L, U](e.left)
}

// MapEitherLeft transforms the left value; a Right passes through
// untouched.
func MapEitherLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if !e.isRight {
		return Left[U, R](fn(e.left))
	}
	return Right[U, R](e.right)
}

// BiMapEither maps both sides independently (bifunctor bimap).
func BiMapEither[L, R, M, U any](e Either[L, R], onLeft func(L) M, onRight func(R) U) Either[M, U] {
	if e.isRight {
		return Right[M, U](onRight(e.right))
	}
	return Left[M, U](onLeft(e.left))
}

// BindEither chains a computation on the right value. Left short-circuits
// without invoking fn.
func BindEither[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if e.isRight {
		return fn(e.right)
	}
	return Left[L, U](e.left)
}
