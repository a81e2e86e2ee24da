package functional

// Conversions between container shapes. Each conversion preserves the
// contained value; lossy directions (dropping an error) are named so the
// loss is visible at the call site.

// OptionToResult converts an Option to a Result, using err for None.
func OptionToResult[T any](o Option[T], err error) Result[T] {
	if o.present {
		return Ok(o.value)
	}
	return Err[T](err)
}

// ResultToOption converts a Result to an Option, discarding the error.
func ResultToOption[T any](r Result[T]) Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// EitherToResult converts an Either[error, T] to a Result.
func EitherToResult[T any](e Either[error, T]) Result[T] {
	if e.isRight {
		return Ok(e.right)
	}
	return Err[T](e.left)
}

// ResultToEither converts a Result to an Either[error, T].
func ResultToEither[T any](r Result[T]) Either[error, T] {
	if r.ok {
		return Right[error, T](r.value)
	}
	return Left[error, T](r.err)
}

// OptionToList converts an Option to a List of zero or one element.
func OptionToList[T any](o Option[T]) List[T] {
	if o.present {
		return List[T]{o.value}
	}
	return List[T]{}
}
