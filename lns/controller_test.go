package lns

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/cvrp-lns/cvrpcfg"
	"github.com/katalvlaran/cvrp-lns/cvrpsol"
	"github.com/katalvlaran/cvrp-lns/distmat"
)

// fakeShared is a minimal SharedBest for exercising the §4.7 cooperation
// hooks without a real fleet.Pool: it counts calls and, when primed,
// returns a caller-supplied snapshot.
type fakeShared struct {
	publishCalls  int
	snapshotCalls int
	snapshot      *cvrpsol.Solution
}

func (f *fakeShared) Publish(candidate *cvrpsol.Solution) { f.publishCalls++ }

func (f *fakeShared) Snapshot(dst *cvrpsol.Solution) bool {
	f.snapshotCalls++
	if f.snapshot == nil {
		return false
	}
	f.snapshot.CloneInto(dst)
	return true
}

func buildControllerInstance(t *testing.T, n, m, q int) *distmat.Instance {
	t.Helper()
	coord := make([]distmat.Point, n+1)
	demand := make([]int, n+1)
	for i := 1; i <= n; i++ {
		coord[i] = distmat.Point{X: float64((i * 7) % 23), Y: float64((i * 13) % 19)}
		demand[i] = 1 + i%4
	}
	inst, err := distmat.New(n, m, q, coord, demand)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return inst
}

func TestJumpSize(t *testing.T) {
	cases := []struct {
		k        int
		fraction float64
		n        int
		want     int
	}{
		{k: 5, fraction: 0.15, n: 20, want: 5},  // ceil(0.15*20)=3 < k=5
		{k: 5, fraction: 0.15, n: 100, want: 15}, // ceil(0.15*100)=15 > k=5
		{k: 5, fraction: 0.15, n: 34, want: 6},   // ceil(0.15*34)=ceil(5.1)=6 > k=5
	}
	for _, tc := range cases {
		cfg := cvrpcfg.DefaultConfig()
		cfg.K = tc.k
		cfg.JumpFraction = tc.fraction
		got := jumpSize(cfg, tc.n)
		if got != tc.want {
			t.Errorf("jumpSize(k=%d,frac=%v,n=%d) = %d, want %d", tc.k, tc.fraction, tc.n, got, tc.want)
		}
	}
}

// Scenario C/D-adjacent: repeated Step calls must always leave current and
// global_best feasible, regardless of which acceptance branch was taken.
func TestController_StepMaintainsFeasibility(t *testing.T) {
	inst := buildControllerInstance(t, 30, 7, 12)
	cfg := cvrpcfg.DefaultConfig()
	rng := rand.New(rand.NewSource(99))

	c, err := NewController(inst, cfg, rng)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}

	for i := 0; i < 300; i++ {
		c.Step()
		if err := c.current.Verify(); err != nil {
			t.Fatalf("iteration %d: current infeasible: %v", i, err)
		}
		if err := c.globalBest.Verify(); err != nil {
			t.Fatalf("iteration %d: global_best infeasible: %v", i, err)
		}
	}
}

// Scenario D: forcing stagnation_limit=1 means every Step ends with
// stagnation reset to zero — either because it improved global_best, or
// because the restart triggered and reset it.
func TestController_StagnationAlwaysResolvesWhenLimitIsOne(t *testing.T) {
	inst := buildControllerInstance(t, 25, 7, 10)
	cfg := cvrpcfg.DefaultConfig()
	cfg.StagnationLimit = 1
	rng := rand.New(rand.NewSource(7))

	c, err := NewController(inst, cfg, rng)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}

	for i := 0; i < 50; i++ {
		c.Step()
		if c.stagnation != 0 {
			t.Fatalf("iteration %d: stagnation = %d, want 0 (limit=1 forces immediate restart)", i, c.stagnation)
		}
	}
}

// Restart must clear tabu memory, zero stagnation, and leave recent_best
// equal to the reseeded, freshly-repaired current — regardless of which
// source (global_best or recent_best) was chosen.
func TestController_RestartClearsTabuAndStagnation(t *testing.T) {
	inst := buildControllerInstance(t, 25, 7, 10)
	cfg := cvrpcfg.DefaultConfig()
	rng := rand.New(rand.NewSource(123))

	c, err := NewController(inst, cfg, rng)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	c.stagnation = cfg.StagnationLimit // force eligibility
	c.part.DrawAndTabu(rng, 2)         // put some customers in tabu to prove Reset clears them

	c.restart()

	if c.stagnation != 0 {
		t.Fatalf("stagnation = %d after restart, want 0", c.stagnation)
	}
	if c.part.TabuLen() != 0 {
		t.Fatalf("TabuLen() = %d after restart, want 0", c.part.TabuLen())
	}
	if err := c.current.Verify(); err != nil {
		t.Fatalf("current infeasible after restart: %v", err)
	}
	if c.recentBest.Cost != c.current.Cost {
		t.Fatalf("recent_best.Cost = %v, current.Cost = %v; restart must sync recent_best to current", c.recentBest.Cost, c.current.Cost)
	}
}

// Scenario E spirit: global_best is only ever overwritten on strict
// improvement, so across many iterations (which will include some accepted
// worsening moves at the default p_worse=0.10) its cost is non-increasing.
func TestController_GlobalBestNonIncreasing(t *testing.T) {
	inst := buildControllerInstance(t, 40, 7, 15)
	cfg := cvrpcfg.DefaultConfig()
	rng := rand.New(rand.NewSource(2024))

	c, err := NewController(inst, cfg, rng)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}

	prev := c.globalBest.Cost
	for i := 0; i < 400; i++ {
		c.Step()
		if c.globalBest.Cost > prev+1e-9 {
			t.Fatalf("iteration %d: global_best.Cost increased from %v to %v", i, prev, c.globalBest.Cost)
		}
		prev = c.globalBest.Cost
	}
}

// §4.7: a worker must publish every accepted global-best improvement to
// its attached orchestrator, not only report a final result once Run
// returns.
func TestController_Step_PublishesImprovementToShared(t *testing.T) {
	inst := buildControllerInstance(t, 30, 7, 12)
	cfg := cvrpcfg.DefaultConfig()
	rng := rand.New(rand.NewSource(55))

	c, err := NewController(inst, cfg, rng)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	fake := &fakeShared{}
	c.SetShared(fake)

	for i := 0; i < 200; i++ {
		c.Step()
	}

	if fake.publishCalls == 0 {
		t.Fatalf("expected at least one Publish call to the shared orchestrator over 200 iterations, got 0")
	}
}

// §4.7: on a restart eligible to reseed from global_best, the controller
// must query the attached orchestrator's pooled best rather than going
// straight to its own local global_best.
func TestController_Restart_QueriesSharedSnapshot(t *testing.T) {
	inst := buildControllerInstance(t, 20, 5, 10)
	cfg := cvrpcfg.DefaultConfig()
	cfg.RestartFromGlobalBestProb = 1.0 // always take the global-best branch
	rng := rand.New(rand.NewSource(321))

	c, err := NewController(inst, cfg, rng)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	fake := &fakeShared{snapshot: cvrpsol.New(inst)}
	c.globalBest.CloneInto(fake.snapshot)
	c.SetShared(fake)

	c.stagnation = cfg.StagnationLimit
	c.restart()

	if fake.snapshotCalls != 1 {
		t.Fatalf("Snapshot calls = %d, want 1 (restart must query the orchestrator before falling back)", fake.snapshotCalls)
	}
	if err := c.current.Verify(); err != nil {
		t.Fatalf("current infeasible after restart: %v", err)
	}
}

// When the orchestrator has nothing to offer yet (Snapshot returns
// false), restart must still fall back to the worker's own global_best
// rather than leaving current untouched or panicking.
func TestController_Restart_FallsBackWhenSharedSnapshotEmpty(t *testing.T) {
	inst := buildControllerInstance(t, 20, 5, 10)
	cfg := cvrpcfg.DefaultConfig()
	cfg.RestartFromGlobalBestProb = 1.0
	rng := rand.New(rand.NewSource(321))

	c, err := NewController(inst, cfg, rng)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	fake := &fakeShared{} // no snapshot primed
	c.SetShared(fake)

	c.stagnation = cfg.StagnationLimit
	c.restart()

	if fake.snapshotCalls != 1 {
		t.Fatalf("Snapshot calls = %d, want 1", fake.snapshotCalls)
	}
	if err := c.current.Verify(); err != nil {
		t.Fatalf("current infeasible after restart: %v", err)
	}
}

func TestController_RunRespectsContextCancellation(t *testing.T) {
	inst := buildControllerInstance(t, 50, 9, 15)
	cfg := cvrpcfg.DefaultConfig()
	rng := rand.New(rand.NewSource(5))

	c, err := NewController(inst, cfg, rng)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	best := c.Run(ctx)
	if err := best.Verify(); err != nil {
		t.Fatalf("global_best infeasible after Run: %v", err)
	}
}

func TestController_RunRespectsMaxIterations(t *testing.T) {
	inst := buildControllerInstance(t, 20, 5, 10)
	cfg := cvrpcfg.DefaultConfig()
	cfg.MaxIterations = 17
	rng := rand.New(rand.NewSource(6))

	c, err := NewController(inst, cfg, rng)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}

	c.Run(context.Background())
	if c.Iterations() != 17 {
		t.Fatalf("Iterations() = %d, want 17", c.Iterations())
	}
}
