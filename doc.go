// Package functional provides functional programming typeclasses for Go.
//
// The package defines a small capability hierarchy — Functor, Applicative,
// and Monad — together with implementations for three container shapes:
// Option (a value that may be absent), Result (a value or an error), and
// List (an ordered sequence). A lazy Seq shape covers sequences that should
// not be materialized. Function combinators (Compose, Pipe, Curry) round
// out the package.
//
// # Two API surfaces
//
// Go interface methods cannot introduce new type parameters, so the
// hierarchy is split into two complementary surfaces:
//
// Package-level generic functions are the primary API. They change the
// element type freely and are resolved statically per concrete shape:
//
//	doubled := functional.MapOption(functional.Some(5), func(x int) int { return x * 2 })
//	// Some(10)
//
//	lengths := functional.MapList(functional.ListOf("a", "bb"), func(s string) int { return len(s) })
//	// [1 2]
//
// The Functor, Applicative, and Monad interfaces cover the endomorphic
// subset (element type unchanged). They let business logic run uniformly
// over any shape:
//
//	func applyDiscount(prices functional.Functor[int]) functional.Functor[int] {
//		return prices.Map(func(p int) int { return p * 90 / 100 })
//	}
//
//	applyDiscount(functional.Some(1000))          // Some(900)
//	applyDiscount(functional.ListOf(1000, 2500))  // [900 2250]
//
// # Short-circuiting
//
// Option and Result are tagged variants. Absence and failure bypass the
// supplied function entirely and propagate unchanged; the Result error
// payload is opaque to the package and is never inspected or transformed.
//
// # Combinators
//
//	inc := func(x int) int { return x + 1 }
//	double := func(x int) int { return x * 2 }
//
//	functional.Compose(double, inc)(5) // 12: right-to-left, double(inc(5))
//	functional.Pipe(inc, double)(5)    // 12: left-to-right
//	functional.Curry(add)(5)(3)        // 8
//
// Combinators defer evaluation: composing never invokes the wrapped
// functions, and the returned function is reusable across invocations.
package functional
