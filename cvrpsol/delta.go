package cvrpsol

// InsertionDelta computes the cost delta of inserting customer c at
// position p in route, without mutating anything — used by the repair
// operator to scan all feasible insertion points before committing to the
// cheapest one. Mirrors the delta computed by Insert exactly.
//
// Complexity: O(1).
func InsertionDelta(inst *Instance, route []int, p int, c int) float64 {
	prev := depotOr(route, p-1)
	next := depotOr(route, p)
	return inst.Dist(prev, c) + inst.Dist(c, next) - inst.Dist(prev, next)
}

// Feasible reports whether inserting a customer of the given demand into
// route r would keep Load[r] within capacity.
//
// Complexity: O(1).
func (s *Solution) Feasible(r int, demand int) bool {
	return s.Load[r]+demand <= s.inst.Q
}
