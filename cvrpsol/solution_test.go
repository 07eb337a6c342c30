package cvrpsol_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/cvrp-lns/cvrperr"
	"github.com/katalvlaran/cvrp-lns/cvrpsol"
	"github.com/katalvlaran/cvrp-lns/distmat"
)

func mustInstance(t *testing.T) *distmat.Instance {
	t.Helper()
	coord := []distmat.Point{{0, 0}, {1, 0}, {0, 1}, {3, 0}}
	demand := []int{0, 5, 5, 4}
	inst, err := distmat.New(3, 2, 10, coord, demand)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return inst
}

func TestInsertRemove_RoundTripRestoresZeroCost(t *testing.T) {
	inst := mustInstance(t)
	s := cvrpsol.New(inst)

	if err := s.Insert(0, 0, 1); err != nil {
		t.Fatalf("Insert(1) failed: %v", err)
	}
	if err := s.Insert(0, 1, 2); err != nil {
		t.Fatalf("Insert(2) failed: %v", err)
	}
	if s.Assignment[1] != 0 || s.Assignment[2] != 0 {
		t.Fatalf("unexpected assignment: %v", s.Assignment)
	}
	if s.Load[0] != 10 {
		t.Fatalf("Load[0] = %d, want 10", s.Load[0])
	}

	s.Remove(1)
	s.Remove(2)

	if s.Cost != 0 {
		t.Fatalf("Cost after full removal = %v, want 0", s.Cost)
	}
	if s.Load[0] != 0 {
		t.Fatalf("Load[0] after removal = %d, want 0", s.Load[0])
	}
	if s.Assignment[1] != cvrpsol.Unassigned || s.Assignment[2] != cvrpsol.Unassigned {
		t.Fatalf("expected both customers unassigned")
	}
}

func TestInsert_RejectsCapacityExceeded(t *testing.T) {
	inst := mustInstance(t)
	s := cvrpsol.New(inst)

	if err := s.Insert(0, 0, 1); err != nil { // load 5
		t.Fatalf("Insert(1) failed: %v", err)
	}
	if err := s.Insert(0, 1, 2); err != nil { // load 10
		t.Fatalf("Insert(2) failed: %v", err)
	}
	err := s.Insert(0, 2, 3) // would push load to 14 > Q=10
	if !errors.Is(err, cvrperr.ErrCapacityExceeded) {
		t.Fatalf("got %v, want ErrCapacityExceeded", err)
	}
	// Rejected insert must not have mutated state.
	if s.Load[0] != 10 {
		t.Fatalf("Load[0] = %d after rejected insert, want unchanged 10", s.Load[0])
	}
	if s.Assignment[3] != cvrpsol.Unassigned {
		t.Fatalf("customer 3 should remain unassigned after rejected insert")
	}
}

func TestVerify_PassesOnWellFormedSolution(t *testing.T) {
	inst := mustInstance(t)
	s := cvrpsol.New(inst)
	_ = s.Insert(0, 0, 1)
	_ = s.Insert(1, 0, 2)
	_ = s.Insert(1, 1, 3)

	if err := s.Verify(); err != nil {
		t.Fatalf("Verify() = %v, want nil", err)
	}
}

func TestVerify_CatchesStaleCachedCost(t *testing.T) {
	inst := mustInstance(t)
	s := cvrpsol.New(inst)
	_ = s.Insert(0, 0, 1)

	s.Cost += 1000 // corrupt the cache directly
	err := s.Verify()
	if err == nil {
		t.Fatalf("Verify() = nil, want an error for a corrupted cache")
	}
	if !errors.Is(err, cvrperr.ErrInvariant) {
		t.Fatalf("Verify() = %v, want wrapping cvrperr.ErrInvariant (not ErrParse: this is an internal bookkeeping bug, not a malformed input)", err)
	}
}

func TestCloneInto_ReusesCapacityAndIsIndependent(t *testing.T) {
	inst := mustInstance(t)
	s := cvrpsol.New(inst)
	_ = s.Insert(0, 0, 1)
	_ = s.Insert(0, 1, 2)

	dst := cvrpsol.New(inst)
	s.CloneInto(dst)

	if dst.Cost != s.Cost {
		t.Fatalf("cloned Cost = %v, want %v", dst.Cost, s.Cost)
	}
	if len(dst.Routes[0]) != 2 {
		t.Fatalf("cloned route length = %d, want 2", len(dst.Routes[0]))
	}

	// Mutating the source after clone must not affect dst (independent storage).
	s.Remove(1)
	if len(dst.Routes[0]) != 2 {
		t.Fatalf("dst.Routes[0] mutated after source Remove: %v", dst.Routes[0])
	}
}

func TestResync_MatchesIncrementalCost(t *testing.T) {
	inst := mustInstance(t)
	s := cvrpsol.New(inst)
	_ = s.Insert(0, 0, 1)
	_ = s.Insert(0, 1, 2)
	_ = s.Insert(1, 0, 3)

	want := s.Cost
	s.Resync()
	if math.Abs(s.Cost-want) > 1e-9 {
		t.Fatalf("Resync Cost = %v, want %v", s.Cost, want)
	}
}

func TestTokens_SharesBoundaryZeros(t *testing.T) {
	inst := mustInstance(t)
	s := cvrpsol.New(inst)
	_ = s.Insert(0, 0, 1)
	_ = s.Insert(1, 0, 2)
	_ = s.Insert(1, 1, 3)

	tokens := s.Tokens()
	want := []int{0, 1, 0, 2, 3, 0}
	if len(tokens) != len(want) {
		t.Fatalf("Tokens() = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("Tokens() = %v, want %v", tokens, want)
		}
	}
}
