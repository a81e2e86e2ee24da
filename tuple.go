package functional

// Pair represents a tuple of two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a new Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns the pair's values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a new Pair with the elements exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// MapPairFirst applies a function to the first element.
func MapPairFirst[A, B, C any](p Pair[A, B], fn func(A) C) Pair[C, B] {
	return Pair[C, B]{First: fn(p.First), Second: p.Second}
}

// MapPairSecond applies a function to the second element.
func MapPairSecond[A, B, C any](p Pair[A, B], fn func(B) C) Pair[A, C] {
	return Pair[A, C]{First: p.First, Second: fn(p.Second)}
}

// ZipOption combines two Options into an Option of a Pair, present only
// when both inputs are present.
func ZipOption[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.present && b.present {
		return Some(NewPair(a.value, b.value))
	}
	return None[Pair[A, B]]()
}

// ZipList combines two Lists element-wise, truncating to the shorter.
func ZipList[A, B any](as List[A], bs List[B]) List[Pair[A, B]] {
	n := min(len(as), len(bs))
	result := make(List[Pair[A, B]], n)
	for i := 0; i < n; i++ {
		result[i] = NewPair(as[i], bs[i])
	}
	return result
}

// UnzipList splits a List of Pairs into two Lists.
func UnzipList[A, B any](pairs List[Pair[A, B]]) (List[A], List[B]) {
	as := make(List[A], len(pairs))
	bs := make(List[B], len(pairs))
	for i, p := range pairs {
		as[i] = p.First
		bs[i] = p.Second
	}
	return as, bs
}
