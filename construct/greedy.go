package construct

import (
	"math/rand"

	"github.com/katalvlaran/cvrp-lns/cvrperr"
	"github.com/katalvlaran/cvrp-lns/cvrpsol"
	"github.com/katalvlaran/cvrp-lns/distmat"
)

// greedyStrategy is the last-resort construction tier (spec tier 3):
// iterate customers in input order, placing each in the first existing
// route with remaining capacity, else opening a new route. Fails up front
// if total demand exceeds M*Q, in which case no arrangement of routes
// could ever be feasible; otherwise fails (via buildSolution) when
// first-fit opens more than M routes.
//
// Complexity: O(n * routes) worst case — acceptable since this tier only
// runs when the two faster tiers have already failed.
type greedyStrategy struct{}

func (greedyStrategy) Construct(inst *distmat.Instance, rng *rand.Rand) (*cvrpsol.Solution, error) {
	if inst.TotalDemand() > inst.M*inst.Q {
		return nil, cvrperr.ErrInfeasible
	}
	if inst.N == 0 {
		return buildSolution(inst, nil)
	}

	var routes [][]int
	loads := make([]int, 0)

	for c := 1; c <= inst.N; c++ {
		d := inst.Demand[c]
		placed := false
		for r := range routes {
			if loads[r]+d <= inst.Q {
				routes[r] = append(routes[r], c)
				loads[r] += d
				placed = true
				break
			}
		}
		if !placed {
			routes = append(routes, []int{c})
			loads = append(loads, d)
		}
	}

	return buildSolution(inst, routes)
}
