package construct

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/cvrp-lns/cvrpsol"
	"github.com/katalvlaran/cvrp-lns/distmat"
)

// sweepStrategy implements the polar-sweep construction tier (spec tier 2):
// compute each customer's polar angle about the depot, sort by angle, then
// walk the sorted list appending to the current route until the next
// customer would exceed Q, at which point a new route is opened. Fails if
// more than M routes are needed.
//
// Complexity: O(n log n) for the angle sort, O(n) for the walk.
type sweepStrategy struct{}

func (sweepStrategy) Construct(inst *distmat.Instance, rng *rand.Rand) (*cvrpsol.Solution, error) {
	n := inst.N
	if n == 0 {
		return buildSolution(inst, nil)
	}

	order := make([]int, n)
	for i := 0; i < n; i++ {
		order[i] = i + 1
	}
	depot := inst.Coord[0]
	angle := func(c int) float64 {
		p := inst.Coord[c]
		return math.Atan2(p.Y-depot.Y, p.X-depot.X)
	}
	sort.Slice(order, func(a, b int) bool { return angle(order[a]) < angle(order[b]) })

	var routes [][]int
	var current []int
	load := 0
	for _, c := range order {
		d := inst.Demand[c]
		if load+d > inst.Q {
			if len(current) > 0 {
				routes = append(routes, current)
			}
			current = nil
			load = 0
		}
		current = append(current, c)
		load += d
	}
	if len(current) > 0 {
		routes = append(routes, current)
	}

	return buildSolution(inst, routes)
}
