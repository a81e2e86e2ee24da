package functional

// Monad extends Applicative with sequencing of context-producing
// computations (flat-map).
//
// Laws, in terms of the package-level operations:
//   - Left identity: Bind(Pure(x), f) is equivalent to f(x).
//   - Right identity: Bind(m, Pure) is equivalent to m.
//   - Associativity: Bind(Bind(m, f), g) is equivalent to
//     Bind(m, func(x) { return Bind(f(x), g) }).
//
// Additionally, deriving apply from bind and map must agree with the
// shape-specific apply. The derivation direction follows each shape's
// bias. For Option and Result, whose apply propagates the value
// context's state first:
//
//	Apply(v, ff) == Bind(v, func(a) { return Map(ff, func(f) { return f(a) }) })
//
// For List and Seq, whose row-major order walks functions first:
//
//	Apply(v, ff) == Bind(ff, func(f) { return Map(v, f) })
//
// The continuation passed to Bind must return the same concrete shape as
// the receiver; returning a different shape is a caller error and panics.
// The type-changing variants are BindOption, BindResult, BindList, and
// BindSeq.
type Monad[A any] interface {
	Applicative[A]

	// Bind invokes fn with each contained value and flattens the contexts
	// fn produces into a single context. Absent and failed cases
	// short-circuit without invoking fn.
	Bind(fn func(A) Monad[A]) Monad[A]
}
