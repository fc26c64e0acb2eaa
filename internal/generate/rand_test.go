// ABOUTME: Unit tests for the sampling helpers: weighted tiers, ranges, and
// ABOUTME: the without-replacement bounds check.

package generate

import (
	"math/rand"
	"testing"
)

func TestPickWeightedRespectsZeroWeight(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	options := []weightedOption[string]{
		{"never", 0},
		{"always", 10},
	}
	for i := 0; i < 100; i++ {
		if got := pickWeighted(r, options); got != "always" {
			t.Fatalf("pickWeighted returned zero-weight option %q", got)
		}
	}
}

func TestPickWeightedCoversDuplicateTiers(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	// Same shape as the order-status table: one label split across tiers.
	options := []weightedOption[string]{
		{"completed", 70}, {"completed", 15}, {"completed", 5},
		{"pending", 8}, {"cancelled", 2},
	}
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[pickWeighted(r, options)]++
	}
	// completed holds 90% of the mass; allow generous slack.
	if counts["completed"] < 8500 {
		t.Errorf("completed drawn %d/10000 times, expected about 9000", counts["completed"])
	}
	if counts["cancelled"] == 0 {
		t.Error("cancelled never drawn over 10000 trials")
	}
}

func TestRandRangeInclusive(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := randRange(r, -5, 6)
		if v < -5 || v > 6 {
			t.Fatalf("randRange(-5, 6) = %d, out of bounds", v)
		}
		seen[v] = true
	}
	if !seen[-5] || !seen[6] {
		t.Error("randRange never hit an inclusive bound over 1000 draws")
	}
}

func TestSampleDistinct(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	pool := []int{1, 2, 3, 4, 5, 6, 7, 8}

	for trial := 0; trial < 100; trial++ {
		got, err := sample(r, pool, 5)
		if err != nil {
			t.Fatalf("sample failed: %v", err)
		}
		if len(got) != 5 {
			t.Fatalf("sample returned %d items, want 5", len(got))
		}
		seen := map[int]bool{}
		for _, v := range got {
			if seen[v] {
				t.Fatalf("sample returned duplicate %d", v)
			}
			seen[v] = true
		}
	}
}

func TestSampleRejectsOversizedRequest(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	if _, err := sample(r, []int{1, 2}, 3); err == nil {
		t.Error("sample accepted a request larger than the pool")
	}
}

func TestSampleLeavesPoolUntouched(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	pool := []int{1, 2, 3, 4}
	_, err := sample(r, pool, 4)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	for i, want := range []int{1, 2, 3, 4} {
		if pool[i] != want {
			t.Fatalf("sample mutated its input pool: %v", pool)
		}
	}
}
