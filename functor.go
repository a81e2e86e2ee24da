package functional

// Functor represents contexts whose contained values can be transformed
// while preserving the shape of the context.
//
// Laws, for every shape and every value v:
//   - Identity: v.Map(Identity) is equivalent to v.
//   - Composition: v.Map(f).Map(g) is equivalent to v.Map(Pipe(f, g)).
//
// The Map method keeps the element type fixed because Go interface methods
// cannot introduce type parameters. The type-changing variants are the
// package-level functions MapOption, MapResult, MapList, and MapSeq.
type Functor[A any] interface {
	// Map applies fn to each contained value. Element count and shape are
	// unchanged; for shapes with an absent or failed case, fn is never
	// invoked and the case propagates untouched.
	Map(fn func(A) A) Functor[A]
}
