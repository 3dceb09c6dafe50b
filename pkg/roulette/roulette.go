// Package roulette implements weighted random selection (roulette-wheel
// draws) over arbitrary item slices with an injectable randomness source,
// so selection-heavy code stays deterministic under test.
package roulette

// Rand is the subset of *math/rand.Rand the picker needs.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Pick draws one item with probability proportional to its weight. Negative
// weights count as zero. When every weight is zero the draw degrades to a
// uniform random choice, so a non-empty input always yields an item. The
// boolean is false only for an empty input.
func Pick[T any](rng Rand, items []T, weight func(T) float64) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}

	weights := make([]float64, len(items))
	total := 0.0
	for i, item := range items {
		w := weight(item)
		if w < 0 {
			w = 0
		}
		weights[i] = w
		total += w
	}

	if total <= 0 {
		return items[rng.Intn(len(items))], true
	}

	r := rng.Float64() * total
	acc := 0.0
	for i, item := range items {
		acc += weights[i]
		if r < acc {
			return item, true
		}
	}
	// Floating-point accumulation can leave r a hair past the last bucket.
	return items[len(items)-1], true
}
