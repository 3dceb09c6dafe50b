package roulette

import (
	"math/rand"
	"testing"
)

func newRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

func TestPickEmpty(t *testing.T) {
	_, ok := Pick(newRand(), nil, func(int) float64 { return 1 })
	if ok {
		t.Fatal("Pick over empty slice reported ok")
	}
}

func TestPickSingleItem(t *testing.T) {
	for _, w := range []float64{0, 1, 36} {
		got, ok := Pick(newRand(), []string{"only"}, func(string) float64 { return w })
		if !ok || got != "only" {
			t.Fatalf("weight %v: got (%q, %v), want the single item", w, got, ok)
		}
	}
}

func TestPickZeroWeightsFallsBackToUniform(t *testing.T) {
	rng := newRand()
	items := []int{1, 2, 3}
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		got, ok := Pick(rng, items, func(int) float64 { return 0 })
		if !ok {
			t.Fatal("Pick reported not ok for non-empty input")
		}
		seen[got] = true
	}
	if len(seen) != len(items) {
		t.Errorf("uniform fallback only ever chose %v", seen)
	}
}

func TestPickDeterministicForSeed(t *testing.T) {
	items := []int{10, 20, 30, 40}
	weight := func(v int) float64 { return float64(v) }

	first := make([]int, 20)
	for i := range first {
		first[i], _ = Pick(rand.New(rand.NewSource(42)), items, weight)
		// fresh source each draw: identical seed must give identical pick
	}
	for i := 1; i < len(first); i++ {
		if first[i] != first[0] {
			t.Fatalf("same seed produced different picks: %v", first)
		}
	}
}

func TestPickIsBiasedTowardHeavyWeights(t *testing.T) {
	rng := newRand()
	// Weights mirror the confidence formula extremes: 36 vs 4.
	type item struct{ w float64 }
	items := []item{{36}, {4}}

	heavy := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		got, _ := Pick(rng, items, func(it item) float64 { return it.w })
		if got.w == 36 {
			heavy++
		}
	}
	// Expected share 0.9; allow slack for the fixed seed.
	share := float64(heavy) / draws
	if share < 0.85 || share > 0.95 {
		t.Errorf("heavy item share = %v, want ~0.9", share)
	}
}

func TestPickNegativeWeightTreatedAsZero(t *testing.T) {
	rng := newRand()
	items := []int{-1, 1}
	for i := 0; i < 50; i++ {
		got, _ := Pick(rng, items, func(v int) float64 { return float64(v) })
		if got == -1 {
			t.Fatal("negative-weight item was drawn despite positive alternative")
		}
	}
}
