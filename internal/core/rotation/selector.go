package rotation

import "math/rand/v2"

// Weighted is anything that carries a selection weight.
type Weighted interface {
	SelectionWeight() int
}

// Rand is the random source PickOne draws from. *rand.Rand satisfies it;
// tests supply fixed sequences.
type Rand interface {
	Float64() float64
}

// RandFunc adapts a function to Rand.
type RandFunc func() float64

func (f RandFunc) Float64() float64 { return f() }

// DefaultRand draws from the global math/rand/v2 source, which is safe
// for concurrent use.
var DefaultRand Rand = RandFunc(rand.Float64)

// selectionWeight treats zero and negative weights as 1.
func selectionWeight(w Weighted) float64 {
	if v := w.SelectionWeight(); v > 1 {
		return float64(v)
	}
	return 1
}

// PickOne selects one item with probability weight/total by walking the
// cumulative weights in input order. ok is false only for empty input.
func PickOne[T Weighted](items []T, rng Rand) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	var total float64
	for _, it := range items {
		total += selectionWeight(it)
	}
	r := rng.Float64() * total
	for _, it := range items {
		w := selectionWeight(it)
		if r < w {
			return it, true
		}
		r -= w
	}
	// only reachable through float rounding
	return items[0], true
}
