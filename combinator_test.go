package functional

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func addOne(x int) int { return x + 1 }

func double(x int) int { return x * 2 }

func add(a, b int) int { return a + b }

func add3(a, b, c int) int { return a + b + c }

func itoa(x int) string { return strconv.Itoa(x) }

func exclaim(s string) string { return s + "!" }

func TestCompose(t *testing.T) {
	t.Run("applies right to left", func(t *testing.T) {
		f := Compose(double, addOne)
		assert.Equal(t, 12, f(5), "double(addOne(5))")
	})

	t.Run("changes types through the chain", func(t *testing.T) {
		f := Compose(exclaim, itoa)
		assert.Equal(t, "7!", f(7))
	})

	t.Run("defers evaluation until invoked", func(t *testing.T) {
		calls := 0
		counted := func(x int) int {
			calls++
			return x
		}
		f := Compose(counted, counted)
		assert.Equal(t, 0, calls, "composing must not invoke the functions")
		f(1)
		assert.Equal(t, 2, calls)
	})

	t.Run("returned function is reusable", func(t *testing.T) {
		f := Compose(double, addOne)
		assert.Equal(t, 12, f(5))
		assert.Equal(t, 12, f(5))
		assert.Equal(t, 2, f(0))
	})
}

func TestPipe(t *testing.T) {
	t.Run("applies left to right", func(t *testing.T) {
		f := Pipe(addOne, double)
		assert.Equal(t, 12, f(5), "double(addOne(5))")
	})

	t.Run("mirrors Compose with swapped arguments", func(t *testing.T) {
		for _, x := range []int{-3, 0, 5, 100} {
			assert.Equal(t, Compose(double, addOne)(x), Pipe(addOne, double)(x))
		}
	})

	t.Run("changes types through the chain", func(t *testing.T) {
		f := Pipe(itoa, exclaim)
		assert.Equal(t, "7!", f(7))
	})
}

func TestComposeAllAndPipeAll(t *testing.T) {
	t.Run("ComposeAll applies right to left", func(t *testing.T) {
		f := ComposeAll(double, addOne) // double(addOne(x))
		assert.Equal(t, 12, f(5))
	})

	t.Run("PipeAll applies left to right", func(t *testing.T) {
		f := PipeAll(addOne, double) // double(addOne(x))
		assert.Equal(t, 12, f(5))
	})

	t.Run("empty chain is the identity", func(t *testing.T) {
		assert.Equal(t, 5, ComposeAll[int]()(5))
		assert.Equal(t, 5, PipeAll[int]()(5))
	})
}

func TestCurry(t *testing.T) {
	t.Run("curried call equals direct call", func(t *testing.T) {
		assert.Equal(t, 8, Curry(add)(5)(3))
		assert.Equal(t, add(5, 3), Curry(add)(5)(3))
	})

	t.Run("partial application is reusable", func(t *testing.T) {
		addFive := Curry(add)(5)
		assert.Equal(t, 8, addFive(3))
		assert.Equal(t, 15, addFive(10))
		assert.Equal(t, 8, addFive(3))
	})

	t.Run("Curry3 threads three arguments", func(t *testing.T) {
		assert.Equal(t, 6, Curry3(add3)(1)(2)(3))
	})

	t.Run("Uncurry inverts Curry", func(t *testing.T) {
		assert.Equal(t, 8, Uncurry(Curry(add))(5, 3))
		assert.Equal(t, 6, Uncurry3(Curry3(add3))(1, 2, 3))
	})
}

func TestFlipConstIdentity(t *testing.T) {
	t.Run("Flip swaps arguments", func(t *testing.T) {
		divide := func(a, b int) int { return a / b }
		assert.Equal(t, 3, Flip(divide)(2, 6))
	})

	t.Run("Const ignores its argument", func(t *testing.T) {
		always := Const[int, string](42)
		assert.Equal(t, 42, always("anything"))
		assert.Equal(t, 42, always(""))
	})

	t.Run("Identity returns its input", func(t *testing.T) {
		assert.Equal(t, 5, Identity(5))
		assert.Equal(t, "x", Identity("x"))
	})
}

func TestCombinatorsPropagatePanics(t *testing.T) {
	boom := func(int) int { panic("boom") }

	assert.PanicsWithValue(t, "boom", func() {
		Compose(double, boom)(1)
	})
	assert.PanicsWithValue(t, "boom", func() {
		Pipe(boom, double)(1)
	})
}
