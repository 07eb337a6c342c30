package distmat

import (
	"math"

	"github.com/katalvlaran/cvrp-lns/cvrperr"
)

// Point is a planar coordinate. Index 0 in Instance.Coord is always the depot.
type Point struct {
	X float64
	Y float64
}

// Instance is the immutable CVRP problem description: depot at index 0,
// customers at indices 1..N, a fleet bound M, and vehicle capacity Q.
// Once built, an Instance and its distance matrix are never mutated; they
// are shared read-only across every worker goroutine (see package fleet).
type Instance struct {
	N int // number of customers, excludes depot
	M int // upper bound on routes (fleet size)
	Q int // vehicle capacity

	Coord  []Point // len N+1, index 0 is the depot
	Demand []int   // len N+1, Demand[0] == 0

	dist []float64 // flat (N+1)x(N+1) row-major buffer
	dim  int        // N+1, cached for index arithmetic
}

// New builds an Instance from raw coordinate/demand slices and precomputes
// the full distance matrix in a single O(n^2) pass. coord and demand must
// both have length n+1 (depot plus n customers).
//
// Complexity: O(n^2) time and memory.
func New(n, m, q int, coord []Point, demand []int) (*Instance, error) {
	dim := n + 1
	if len(coord) != dim || len(demand) != dim {
		return nil, cvrperr.ErrParse
	}
	if n < 0 || m < 1 || q < 1 {
		return nil, cvrperr.ErrParse
	}
	if demand[0] != 0 {
		return nil, cvrperr.ErrParse
	}
	for i := 1; i < dim; i++ {
		if demand[i] < 0 {
			return nil, cvrperr.ErrParse
		}
		if demand[i] > q {
			// A single customer's demand exceeds capacity: no route can ever
			// carry it. This is a construction-time infeasibility, not a
			// parse error, but we surface it eagerly here since it is cheap
			// to detect and would otherwise silently doom every strategy.
			return nil, cvrperr.ErrInfeasible
		}
	}

	inst := &Instance{
		N:      n,
		M:      m,
		Q:      q,
		Coord:  coord,
		Demand: demand,
		dist:   make([]float64, dim*dim),
		dim:    dim,
	}

	for i := 0; i < dim; i++ {
		xi, yi := coord[i].X, coord[i].Y
		base := i * dim
		for j := 0; j < dim; j++ {
			if i == j {
				inst.dist[base+j] = 0
				continue
			}
			dx := xi - coord[j].X
			dy := yi - coord[j].Y
			inst.dist[base+j] = math.Sqrt(dx*dx + dy*dy)
		}
	}

	return inst, nil
}

// Dist returns the Euclidean distance between nodes i and j (0 is the depot).
// No bounds check: callers in the hot loop only ever pass indices drawn from
// the validated customer/depot domain.
//
// Complexity: O(1).
func (inst *Instance) Dist(i, j int) float64 {
	return inst.dist[i*inst.dim+j]
}

// TotalDemand sums Demand[1..N]; used by the greedy construction fallback's
// feasibility check (total demand must not exceed M*Q).
//
// Complexity: O(n).
func (inst *Instance) TotalDemand() int {
	total := 0
	for i := 1; i <= inst.N; i++ {
		total += inst.Demand[i]
	}
	return total
}
