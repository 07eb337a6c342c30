package repair_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cvrp-lns/construct"
	"github.com/katalvlaran/cvrp-lns/destroy"
	"github.com/katalvlaran/cvrp-lns/distmat"
	"github.com/katalvlaran/cvrp-lns/repair"
	"github.com/katalvlaran/cvrp-lns/tabu"
)

func buildInstance(t *testing.T, n, m, q int) *distmat.Instance {
	t.Helper()
	coord := make([]distmat.Point, n+1)
	demand := make([]int, n+1)
	for i := 1; i <= n; i++ {
		coord[i] = distmat.Point{X: float64(i % 5), Y: float64(i / 5)}
		demand[i] = 1 + i%3
	}
	inst, err := distmat.New(n, m, q, coord, demand)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return inst
}

// Destroy(W) followed by Repair(W) into a valid pre-state must yield a
// valid solution whose customer set is identical to the pre-state's.
func TestRepair_RoundTripPreservesCustomerSet(t *testing.T) {
	inst := buildInstance(t, 20, 5, 10)
	rng := rand.New(rand.NewSource(11))
	sol, err := construct.Bootstrap(inst, rng)
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	if err := sol.Verify(); err != nil {
		t.Fatalf("pre-state Verify failed: %v", err)
	}

	part := tabu.NewPartition(inst.N)
	workset := destroy.Destroy(sol, part, 5, rng)

	if err := repair.Repair(inst, sol, workset, repair.DefaultPRandom, rng); err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	if err := sol.Verify(); err != nil {
		t.Fatalf("post-repair Verify failed: %v", err)
	}
	for _, c := range workset {
		if sol.Assignment[c] == -1 {
			t.Fatalf("customer %d not reassigned after repair", c)
		}
	}
}

func TestRepair_GreedyModeNeverDrawsRandom(t *testing.T) {
	inst := buildInstance(t, 12, 3, 10)
	rng := rand.New(rand.NewSource(22))
	sol, err := construct.Bootstrap(inst, rng)
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	part := tabu.NewPartition(inst.N)
	workset := destroy.Destroy(sol, part, 4, rng)

	if err := repair.Repair(inst, sol, workset, 0, rng); err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	if err := sol.Verify(); err != nil {
		t.Fatalf("post-repair Verify failed: %v", err)
	}
}

// Jump ignores tabu and ordinary feasibility should still hold post-repair
// for a larger workset drawn via Jump.
func TestRepair_AfterJump(t *testing.T) {
	inst := buildInstance(t, 20, 5, 10)
	rng := rand.New(rand.NewSource(33))
	sol, err := construct.Bootstrap(inst, rng)
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	workset := destroy.Jump(sol, inst.N, 6, rng)
	if err := repair.Repair(inst, sol, workset, 0, rng); err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	if err := sol.Verify(); err != nil {
		t.Fatalf("post-repair Verify failed: %v", err)
	}
}
