package destroy

import (
	"math/rand"

	"github.com/katalvlaran/cvrp-lns/cvrpsol"
	"github.com/katalvlaran/cvrp-lns/tabu"
)

// DefaultK is the default destroy size (spec default k=5).
const DefaultK = 5

// Destroy draws up to k distinct customers from part's free set, removes
// each from sol, and pushes each into the tabu FIFO (evicting as needed).
// Returns the removed customers — the repair workset.
//
// Complexity: O(k) amortized.
func Destroy(sol *cvrpsol.Solution, part *tabu.Partition, k int, rng *rand.Rand) []int {
	workset := part.DrawAndTabu(rng, k)
	for _, c := range workset {
		sol.Remove(c)
	}
	return workset
}

// Jump performs the larger "restart" destroy (spec §4.6 step 4): removes
// kJump customers drawn uniformly from the whole customer domain,
// ignoring tabu membership entirely. The caller is expected to clear the
// tabu partition around a Jump (see package lns), since Jump does not
// itself touch it.
//
// Complexity: O(n) for the permutation draw, O(kJump) for the removals.
func Jump(sol *cvrpsol.Solution, n int, kJump int, rng *rand.Rand) []int {
	if kJump > n {
		kJump = n
	}
	if kJump <= 0 {
		return nil
	}

	perm := rng.Perm(n)
	workset := make([]int, 0, kJump)
	for i := 0; i < kJump; i++ {
		c := perm[i] + 1 // customers are 1-indexed
		sol.Remove(c)
		workset = append(workset, c)
	}
	return workset
}
