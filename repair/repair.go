package repair

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/cvrp-lns/cvrperr"
	"github.com/katalvlaran/cvrp-lns/cvrpsol"
	"github.com/katalvlaran/cvrp-lns/distmat"
)

// DefaultPRandom is the default probability of a random (rather than
// best-Δ) insertion per customer (spec default p_random=0.02).
const DefaultPRandom = 0.02

// candidate is a feasible (route, position) insertion slot for the
// customer currently being placed.
type candidate struct {
	route int
	pos   int
}

// Repair reinserts workset into sol, largest demand first (stable on
// ties). For each customer, with probability pRandom a uniformly random
// feasible slot is chosen; otherwise the slot minimizing insertion Δ is
// chosen, ties broken by lowest (route, position). Pass pRandom=0 for the
// greedy no-jitter repair used by the restart jump.
//
// Returns cvrperr.ErrTransientInfeasible if some customer has no feasible
// slot in any route; sol is left partially repaired in that case — the
// caller is expected to discard it and restore from a backup.
//
// Complexity: O(|workset| * M * avgRouteLen).
func Repair(inst *distmat.Instance, sol *cvrpsol.Solution, workset []int, pRandom float64, rng *rand.Rand) error {
	ordered := make([]int, len(workset))
	copy(ordered, workset)
	sort.SliceStable(ordered, func(i, j int) bool {
		return inst.Demand[ordered[i]] > inst.Demand[ordered[j]]
	})

	for _, c := range ordered {
		demand := inst.Demand[c]
		candidates := feasibleSlots(sol, demand)
		if len(candidates) == 0 {
			return cvrperr.ErrTransientInfeasible
		}

		var chosen candidate
		if pRandom > 0 && rng.Float64() < pRandom {
			chosen = candidates[rng.Intn(len(candidates))]
		} else {
			chosen = bestSlot(inst, sol, candidates, c)
		}

		if err := sol.Insert(chosen.route, chosen.pos, c); err != nil {
			// Load changed between feasibleSlots and Insert only if the
			// caller mutates sol concurrently, which never happens within
			// a single repair call; surface defensively rather than panic.
			return err
		}
	}

	return nil
}

// feasibleSlots enumerates every (route, position) pair across all routes
// whose load can accept demand, one entry per position 0..len(route).
func feasibleSlots(sol *cvrpsol.Solution, demand int) []candidate {
	var out []candidate
	for r, route := range sol.Routes {
		if !sol.Feasible(r, demand) {
			continue
		}
		for p := 0; p <= len(route); p++ {
			out = append(out, candidate{route: r, pos: p})
		}
	}
	return out
}

// bestSlot scans candidates and returns the one minimizing insertion Δ,
// ties broken by lowest (route, position) — candidates is already
// enumerated in ascending (route, position) order so the first strict
// improvement wins ties.
func bestSlot(inst *distmat.Instance, sol *cvrpsol.Solution, candidates []candidate, c int) candidate {
	best := candidates[0]
	bestDelta := cvrpsol.InsertionDelta(inst, sol.Routes[best.route], best.pos, c)

	for _, cand := range candidates[1:] {
		delta := cvrpsol.InsertionDelta(inst, sol.Routes[cand.route], cand.pos, c)
		if delta < bestDelta {
			best = cand
			bestDelta = delta
		}
	}

	return best
}
