package functional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqIsLazy(t *testing.T) {
	t.Run("Map touches nothing until iterated", func(t *testing.T) {
		calls := 0
		s := MapSeq(SeqOf(1, 2, 3), func(x int) int {
			calls++
			return x * 2
		})
		assert.Equal(t, 0, calls, "building the Seq must not invoke fn")

		got := CollectSeq(s)
		assert.Equal(t, ListOf(2, 4, 6), got)
		assert.Equal(t, 3, calls)
	})

	t.Run("Take consumes only the prefix", func(t *testing.T) {
		calls := 0
		naturals := Seq[int](func(yield func(int) bool) {
			for i := 1; ; i++ {
				calls++
				if !yield(i) {
					return
				}
			}
		})
		got := CollectSeq(TakeSeq(MapSeq(naturals, func(x int) int { return x * x }), 4))
		assert.Equal(t, ListOf(1, 4, 9, 16), got)
		assert.Equal(t, 5, calls, "only the consumed prefix may be produced")
	})

	t.Run("Bind is lazy per element", func(t *testing.T) {
		calls := 0
		s := BindSeq(SeqOf(1, 2), func(x int) Seq[int] {
			calls++
			return SeqOf(x, x*10)
		})
		assert.Equal(t, 0, calls)
		assert.Equal(t, ListOf(1, 10, 2, 20), CollectSeq(s))
	})

	t.Run("Bind on empty never invokes fn", func(t *testing.T) {
		called := false
		got := CollectSeq(BindSeq(SeqOf[int](), func(x int) Seq[int] {
			called = true
			return SeqOf(x)
		}))
		assert.Empty(t, got)
		assert.False(t, called)
	})
}

func TestSeqTypeclassLaws(t *testing.T) {
	s := SeqOf(1, 2, 3)

	t.Run("functor identity", func(t *testing.T) {
		assert.Equal(t, CollectSeq(s), CollectSeq(MapSeq(s, Identity[int])))
	})

	t.Run("functor composition", func(t *testing.T) {
		f := func(x int) int { return x + 1 }
		g := func(x int) int { return x * 2 }
		assert.Equal(t,
			CollectSeq(MapSeq(MapSeq(s, f), g)),
			CollectSeq(MapSeq(s, Pipe(f, g))))
	})

	t.Run("applicative identity", func(t *testing.T) {
		assert.Equal(t, CollectSeq(s), CollectSeq(ApplySeq(s, PureSeq(Identity[int]))))
	})

	t.Run("applicative homomorphism", func(t *testing.T) {
		f := func(x int) int { return x * 3 }
		assert.Equal(t,
			CollectSeq(PureSeq(f(5))),
			CollectSeq(ApplySeq(PureSeq(5), PureSeq(f))))
	})

	t.Run("apply is row-major over functions then values", func(t *testing.T) {
		ff := SeqOf(
			func(x int) int { return x + 1 },
			func(x int) int { return x * 2 },
		)
		assert.Equal(t, ListOf(2, 3, 4, 2, 4, 6), CollectSeq(ApplySeq(s, ff)))
	})

	t.Run("derived apply from bind equals native apply", func(t *testing.T) {
		ff := SeqOf(
			func(x int) int { return x + 1 },
			func(x int) int { return x * 2 },
		)
		derived := BindSeq(ff, func(f func(int) int) Seq[int] {
			return MapSeq(s, f)
		})
		assert.Equal(t, CollectSeq(ApplySeq(s, ff)), CollectSeq(derived))
	})

	t.Run("monad left identity", func(t *testing.T) {
		f := func(x int) Seq[int] { return SeqOf(x, x*2) }
		assert.Equal(t, CollectSeq(f(7)), CollectSeq(BindSeq(PureSeq(7), f)))
	})

	t.Run("monad right identity", func(t *testing.T) {
		assert.Equal(t, CollectSeq(s), CollectSeq(BindSeq(s, PureSeq[int])))
	})

	t.Run("monad associativity", func(t *testing.T) {
		f := func(x int) Seq[int] { return SeqOf(x, x+1) }
		g := func(x int) Seq[int] { return SeqOf(x * 2) }
		left := BindSeq(BindSeq(s, f), g)
		right := BindSeq(s, func(x int) Seq[int] { return BindSeq(f(x), g) })
		assert.Equal(t, CollectSeq(left), CollectSeq(right))
	})
}

func TestSeqHelpers(t *testing.T) {
	t.Run("Filter keeps matching elements", func(t *testing.T) {
		got := CollectSeq(FilterSeq(SeqOf(1, 2, 3, 4), func(x int) bool { return x%2 == 0 }))
		assert.Equal(t, ListOf(2, 4), got)
	})

	t.Run("Reduce folds left to right", func(t *testing.T) {
		got := ReduceSeq(SeqOf(1, 2, 3), 0, func(acc, x int) int { return acc*10 + x })
		assert.Equal(t, 123, got)
	})

	t.Run("Concat chains in order", func(t *testing.T) {
		got := CollectSeq(ConcatSeq(SeqOf(1, 2), SeqOf(3)))
		assert.Equal(t, ListOf(1, 2, 3), got)
	})

	t.Run("Concat respects early termination", func(t *testing.T) {
		got := CollectSeq(TakeSeq(ConcatSeq(SeqOf(1, 2), SeqOf(3, 4)), 1))
		assert.Equal(t, ListOf(1), got)
	})
}
