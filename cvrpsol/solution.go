package cvrpsol

import (
	"github.com/katalvlaran/cvrp-lns/cvrperr"
	"github.com/katalvlaran/cvrp-lns/distmat"
)

// Unassigned marks a customer with no current route in Assignment.
const Unassigned = -1

// Solution is a mutable CVRP solution over a fixed Instance: at most
// inst.M routes, each an ordered sequence of customer indices with the
// depot terminators implicit. Zero value is not meaningful; use New.
type Solution struct {
	Routes     [][]int // len == inst.M; entries may be empty (unused route slots)
	Load       []int   // len == inst.M; Load[r] == sum of Demand over Routes[r]
	Cost       float64 // cached total distance across all routes
	Assignment []int   // len == inst.N+1; Assignment[c] == route index or Unassigned

	inst *Instance
}

// Instance is a type alias kept local to avoid importing distmat under an
// unexported name in every signature; it is exactly *distmat.Instance.
type Instance = distmat.Instance

// New allocates an empty Solution over inst: inst.M empty routes, zero
// cost, and every customer Unassigned.
//
// Complexity: O(M + N).
func New(inst *Instance) *Solution {
	s := &Solution{
		Routes:     make([][]int, inst.M),
		Load:       make([]int, inst.M),
		Assignment: make([]int, inst.N+1),
		inst:       inst,
	}
	for c := range s.Assignment {
		s.Assignment[c] = Unassigned
	}
	return s
}

// depotOr returns route[idx], or the depot (0) if idx is off either end of route.
func depotOr(route []int, idx int) int {
	if idx < 0 || idx >= len(route) {
		return 0
	}
	return route[idx]
}

// Insert places customer c at position p within route r, updating Load[r],
// Cost, and Assignment[c]. Fails with ErrCapacityExceeded (no mutation) if
// the resulting load would exceed Q.
//
// Δcost = dist(prev, c) + dist(c, next) − dist(prev, next), where prev/next
// are the neighbors of position p with the depot substituted at endpoints.
//
// Complexity: O(len(Routes[r])) for the slice insert, O(1) for the cost update.
func (s *Solution) Insert(r, p, c int) error {
	demand := s.inst.Demand[c]
	if s.Load[r]+demand > s.inst.Q {
		return cvrperr.ErrCapacityExceeded
	}

	route := s.Routes[r]
	prev := depotOr(route, p-1)
	next := depotOr(route, p)

	delta := s.inst.Dist(prev, c) + s.inst.Dist(c, next) - s.inst.Dist(prev, next)

	route = append(route, 0)
	copy(route[p+1:], route[p:])
	route[p] = c
	s.Routes[r] = route

	s.Load[r] += demand
	s.Cost += delta
	s.Assignment[c] = r

	return nil
}

// Remove locates customer c via Assignment and removes it from its route,
// updating Load, Cost, and Assignment symmetrically with Insert. A no-op
// when c is already Unassigned.
//
// Complexity: O(len(route)) to locate and shift.
func (s *Solution) Remove(c int) {
	r := s.Assignment[c]
	if r == Unassigned {
		return
	}
	route := s.Routes[r]

	p := -1
	for i, v := range route {
		if v == c {
			p = i
			break
		}
	}
	if p == -1 {
		return
	}

	prev := depotOr(route, p-1)
	next := depotOr(route, p+1)
	delta := s.inst.Dist(prev, c) + s.inst.Dist(c, next) - s.inst.Dist(prev, next)

	copy(route[p:], route[p+1:])
	route = route[:len(route)-1]
	s.Routes[r] = route

	s.Load[r] -= s.inst.Demand[c]
	s.Cost -= delta
	s.Assignment[c] = Unassigned
}

// CloneInto overwrites dst from s, reusing dst's existing route-slice
// backing arrays whenever their capacity suffices so no fresh allocation
// of route buffers happens when snapshotting inside the hot loop.
//
// Complexity: O(M + N).
func (s *Solution) CloneInto(dst *Solution) {
	if cap(dst.Routes) < len(s.Routes) {
		dst.Routes = make([][]int, len(s.Routes))
	} else {
		dst.Routes = dst.Routes[:len(s.Routes)]
	}
	for r := range s.Routes {
		src := s.Routes[r]
		if cap(dst.Routes[r]) < len(src) {
			dst.Routes[r] = make([]int, len(src))
		} else {
			dst.Routes[r] = dst.Routes[r][:len(src)]
		}
		copy(dst.Routes[r], src)
	}

	if cap(dst.Load) < len(s.Load) {
		dst.Load = make([]int, len(s.Load))
	} else {
		dst.Load = dst.Load[:len(s.Load)]
	}
	copy(dst.Load, s.Load)

	if cap(dst.Assignment) < len(s.Assignment) {
		dst.Assignment = make([]int, len(s.Assignment))
	} else {
		dst.Assignment = dst.Assignment[:len(s.Assignment)]
	}
	copy(dst.Assignment, s.Assignment)

	dst.Cost = s.Cost
	dst.inst = s.inst
}

// Resync recomputes Cost and every Load[r] from scratch, bounding the
// incremental-delta drift accumulated over many Insert/Remove calls.
// Does not validate invariants; see Verify for that.
//
// Complexity: O(N) total (sum of route lengths) plus O(M).
func (s *Solution) Resync() {
	var total float64
	for r, route := range s.Routes {
		load := 0
		prev := 0 // depot
		for _, c := range route {
			total += s.inst.Dist(prev, c)
			load += s.inst.Demand[c]
			prev = c
		}
		total += s.inst.Dist(prev, 0)
		s.Load[r] = load
	}
	s.Cost = total
}

// Verify recomputes loads and cost from scratch and checks every invariant:
// every customer appears exactly once, no route exceeds Q, and the cached
// Cost/Load match the recomputation within a tight epsilon. Intended for
// tests and debug assertions, not the hot loop.
//
// Complexity: O(N + M).
func (s *Solution) Verify() error {
	seen := make([]bool, s.inst.N+1)
	var total float64

	for r, route := range s.Routes {
		load := 0
		prev := 0
		for _, c := range route {
			if c < 1 || c > s.inst.N {
				return cvrperr.ErrInvariant
			}
			if seen[c] {
				return cvrperr.ErrInvariant
			}
			seen[c] = true
			if s.Assignment[c] != r {
				return cvrperr.ErrInvariant
			}
			load += s.inst.Demand[c]
			total += s.inst.Dist(prev, c)
			prev = c
		}
		total += s.inst.Dist(prev, 0)
		if load > s.inst.Q {
			return cvrperr.ErrInvariant
		}
		if load != s.Load[r] {
			return cvrperr.ErrInvariant
		}
	}

	for c := 1; c <= s.inst.N; c++ {
		if !seen[c] {
			return cvrperr.ErrInvariant
		}
	}

	eps := 1e-9 * float64(s.inst.N+1)
	diff := total - s.Cost
	if diff < 0 {
		diff = -diff
	}
	if diff > eps {
		return cvrperr.ErrInvariant
	}

	return nil
}

// Tokens renders the solution as the space-separated depot-bracketed token
// stream of the §6 JSON "Solution" field: every route begins and ends with
// 0, and consecutive non-empty routes share their boundary 0s.
//
// Complexity: O(N).
func (s *Solution) Tokens() []int {
	out := make([]int, 0, s.inst.N+2*len(s.Routes))
	wroteAny := false
	for _, route := range s.Routes {
		if len(route) == 0 {
			continue
		}
		if !wroteAny {
			out = append(out, 0)
			wroteAny = true
		}
		out = append(out, route...)
		out = append(out, 0)
	}
	if !wroteAny {
		out = append(out, 0, 0)
	}
	return out
}
