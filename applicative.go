package functional

// Applicative extends Functor with the capability to lift a plain value
// into a context and to apply functions held inside a context to values
// held inside the same kind of context.
//
// Laws, in terms of the package-level operations (Pure* is the lift):
//   - Identity: Apply(v, Pure(Identity)) is equivalent to v.
//   - Homomorphism: Apply(Pure(x), Pure(f)) is equivalent to Pure(f(x)).
//
// Only the lift appears as a method. An Ap method is not possible in Go:
// it would need the receiver's shape instantiated at func(A) A from
// inside the method set of the shape at A, an instantiation cycle the
// compiler rejects. Application therefore lives in the statically
// dispatched package-level functions ApplyOption, ApplyResult,
// ApplyList, and ApplySeq.
type Applicative[A any] interface {
	Functor[A]

	// Pure lifts a plain value into the minimal context of the
	// receiver's shape. The receiver supplies only the shape; its
	// contents are not consulted.
	Pure(value A) Applicative[A]
}
