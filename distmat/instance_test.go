package distmat_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/cvrp-lns/cvrperr"
	"github.com/katalvlaran/cvrp-lns/distmat"
)

func TestNew_BuildsSymmetricZeroDiagonal(t *testing.T) {
	coord := []distmat.Point{{0, 0}, {3, 4}, {0, 1}}
	demand := []int{0, 5, 3}

	inst, err := distmat.New(2, 2, 10, coord, demand)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i <= inst.N; i++ {
		if inst.Dist(i, i) != 0 {
			t.Fatalf("Dist(%d,%d) = %v, want 0", i, i, inst.Dist(i, i))
		}
	}
	for i := 0; i <= inst.N; i++ {
		for j := 0; j <= inst.N; j++ {
			if inst.Dist(i, j) != inst.Dist(j, i) {
				t.Fatalf("asymmetry at (%d,%d)", i, j)
			}
		}
	}
	if got := inst.Dist(0, 1); math.Abs(got-5.0) > 1e-9 {
		t.Fatalf("Dist(0,1) = %v, want 5", got)
	}
}

func TestNew_RejectsNonZeroDepotDemand(t *testing.T) {
	coord := []distmat.Point{{0, 0}, {1, 0}}
	demand := []int{1, 2}

	_, err := distmat.New(1, 1, 10, coord, demand)
	if !errors.Is(err, cvrperr.ErrParse) {
		t.Fatalf("got %v, want ErrParse", err)
	}
}

func TestNew_SingleDemandExceedingCapacityIsInfeasible(t *testing.T) {
	coord := []distmat.Point{{0, 0}, {1, 0}}
	demand := []int{0, 11}

	_, err := distmat.New(1, 1, 10, coord, demand)
	if !errors.Is(err, cvrperr.ErrInfeasible) {
		t.Fatalf("got %v, want ErrInfeasible", err)
	}
}

func TestTotalDemand(t *testing.T) {
	coord := []distmat.Point{{0, 0}, {1, 0}, {2, 0}}
	demand := []int{0, 3, 4}

	inst, err := distmat.New(2, 1, 10, coord, demand)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := inst.TotalDemand(); got != 7 {
		t.Fatalf("TotalDemand() = %d, want 7", got)
	}
}
