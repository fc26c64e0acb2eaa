// ABOUTME: Sampling helpers over the shared seeded random stream.
// ABOUTME: Weighted choice keeps literal (value, weight) tiers, duplicates included.

package generate

import (
	"fmt"
	"math/rand"
)

// weightedOption pairs a value with its relative weight. Weights are
// relative, not percentages. Some tables repeat a value across tiers with
// separate weights; the tiers were hand-tuned in the dashboard's original
// fixtures, so they are kept literal rather than collapsed.
type weightedOption[T any] struct {
	value  T
	weight int
}

// pickWeighted draws one value according to the cumulative weights.
func pickWeighted[T any](r *rand.Rand, options []weightedOption[T]) T {
	total := 0
	for _, o := range options {
		total += o.weight
	}
	n := r.Intn(total)
	for _, o := range options {
		if n < o.weight {
			return o.value
		}
		n -= o.weight
	}
	return options[len(options)-1].value
}

// pick draws one value uniformly.
func pick[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// randRange returns a uniform integer in [lo, hi], both inclusive.
func randRange(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// sample draws n distinct items without replacement. Asking for more items
// than the pool holds is a bounds violation, not something to truncate
// silently.
func sample[T any](r *rand.Rand, pool []T, n int) ([]T, error) {
	if n > len(pool) {
		return nil, fmt.Errorf("sample: requested %d distinct items from a pool of %d", n, len(pool))
	}
	cp := make([]T, len(pool))
	copy(cp, pool)
	for i := 0; i < n; i++ {
		j := i + r.Intn(len(cp)-i)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[:n], nil
}
