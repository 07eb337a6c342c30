package construct

import (
	"math/rand"

	"github.com/katalvlaran/cvrp-lns/cvrperr"
	"github.com/katalvlaran/cvrp-lns/cvrpsol"
	"github.com/katalvlaran/cvrp-lns/distmat"
)

// Strategy is the capability every construction tier implements: build a
// feasible Solution from an Instance, or report why it could not.
type Strategy interface {
	Construct(inst *distmat.Instance, rng *rand.Rand) (*cvrpsol.Solution, error)
}

// DefaultSavingsSigma is the standard deviation of the jitter added to each
// Clarke–Wright saving, in distance units. Small relative to typical
// savings so the perturbation breaks ties without reordering the bulk of
// the list.
const DefaultSavingsSigma = 1.0

// Bootstrap tries Savings, then Sweep, then Greedy, returning the first
// feasible Solution. Returns ErrInfeasible only if all three fail; Greedy,
// the last tier, fails when total demand > M*Q or when first-fit needs
// more than M routes.
//
// Complexity: dominated by Savings' O(n^2 log n) sort; see savings.go.
func Bootstrap(inst *distmat.Instance, rng *rand.Rand) (*cvrpsol.Solution, error) {
	tiers := []Strategy{
		savingsStrategy{sigma: DefaultSavingsSigma},
		sweepStrategy{},
		greedyStrategy{},
	}

	var last error
	for _, tier := range tiers {
		sol, err := tier.Construct(inst, rng)
		if err == nil {
			return sol, nil
		}
		last = err
	}
	if last == nil {
		last = cvrperr.ErrInfeasible
	}
	return nil, last
}

// buildSolution inserts routes (given as ordered customer-index slices) into
// a fresh Solution, one route per non-empty slice, in the order given.
// Returns ErrInfeasible if there are more non-empty routes than inst.M.
func buildSolution(inst *distmat.Instance, routes [][]int) (*cvrpsol.Solution, error) {
	nonEmpty := 0
	for _, r := range routes {
		if len(r) > 0 {
			nonEmpty++
		}
	}
	if nonEmpty > inst.M {
		return nil, cvrperr.ErrInfeasible
	}

	sol := cvrpsol.New(inst)
	slot := 0
	for _, r := range routes {
		if len(r) == 0 {
			continue
		}
		for pos, c := range r {
			if err := sol.Insert(slot, pos, c); err != nil {
				return nil, cvrperr.ErrInfeasible
			}
		}
		slot++
	}
	return sol, nil
}
