package lns

import (
	"context"
	"math"
	"math/rand"

	"github.com/katalvlaran/cvrp-lns/construct"
	"github.com/katalvlaran/cvrp-lns/cvrpcfg"
	"github.com/katalvlaran/cvrp-lns/cvrpsol"
	"github.com/katalvlaran/cvrp-lns/destroy"
	"github.com/katalvlaran/cvrp-lns/distmat"
	"github.com/katalvlaran/cvrp-lns/repair"
	"github.com/katalvlaran/cvrp-lns/tabu"
	"github.com/katalvlaran/cvrp-lns/telemetry"
)

// SharedBest lets a Controller cooperate with an orchestrator pooling
// results from multiple concurrent workers (§4.7): a worker publishes
// every newly accepted global-best solution, and on restart may request
// the orchestrator's current best instead of falling back to its own
// local one.
type SharedBest interface {
	// Publish reports a newly accepted global-best solution.
	Publish(candidate *cvrpsol.Solution)
	// Snapshot copies the orchestrator's current best into dst, reporting
	// whether one has been published yet.
	Snapshot(dst *cvrpsol.Solution) bool
}

// Controller runs one independent destroy/repair/accept loop over a single
// Instance. Zero value is not meaningful; use NewController.
type Controller struct {
	inst *distmat.Instance
	cfg  cvrpcfg.Config
	rng  *rand.Rand
	part *tabu.Partition

	current    *cvrpsol.Solution
	recentBest *cvrpsol.Solution
	globalBest *cvrpsol.Solution
	backup     *cvrpsol.Solution

	shared SharedBest
	log    *telemetry.Logger

	stagnation int
	kJump      int
	iterations int
}

// NewController bootstraps an initial feasible solution via construct.Bootstrap
// and seeds current/recent_best/global_best from it.
func NewController(inst *distmat.Instance, cfg cvrpcfg.Config, rng *rand.Rand) (*Controller, error) {
	sol, err := construct.Bootstrap(inst, rng)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		inst:       inst,
		cfg:        cfg,
		rng:        rng,
		part:       tabu.NewPartitionFrac(inst.N, cfg.TabuFraction),
		current:    sol,
		recentBest: cvrpsol.New(inst),
		globalBest: cvrpsol.New(inst),
		backup:     cvrpsol.New(inst),
		kJump:      jumpSize(cfg, inst.N),
		log:        telemetry.Nop(),
	}
	sol.CloneInto(c.recentBest)
	sol.CloneInto(c.globalBest)

	return c, nil
}

// jumpSize computes k_jump = max(k, ceil(JumpFraction*n)) per §4.6 step 4.
func jumpSize(cfg cvrpcfg.Config, n int) int {
	j := int(math.Ceil(cfg.JumpFraction * float64(n)))
	if cfg.K > j {
		return cfg.K
	}
	return j
}

// GlobalBest returns the controller's best solution found so far.
func (c *Controller) GlobalBest() *cvrpsol.Solution { return c.globalBest }

// SetShared attaches an orchestrator for this worker to cooperate with
// (§4.7): subsequent global-best improvements are published to it, and
// restarts may reseed from its pooled best. A Controller with no shared
// orchestrator behaves exactly as before (falls back to its own
// global/recent best).
func (c *Controller) SetShared(shared SharedBest) { c.shared = shared }

// SetLogger attaches a scoped Logger for this controller to report through
// (per-iteration Debug detail, Info on accepted global-best improvements
// and restarts, Warn on transient repair failures). A Controller with no
// logger attached logs nothing.
func (c *Controller) SetLogger(log *telemetry.Logger) {
	if log != nil {
		c.log = log
	}
}

// Iterations returns the number of Step calls completed so far.
func (c *Controller) Iterations() int { return c.iterations }

// Step runs one destroy/repair/accept iteration, per §4.6:
//  1. snapshot current as backup;
//  2. destroy then repair current; on infeasibility, restore from backup;
//  3. accept or roll back per the Δ rule, updating recent/global best;
//  4. trigger a restart once stagnation reaches the configured limit.
func (c *Controller) Step() {
	c.iterations++
	c.current.CloneInto(c.backup)

	workset := destroy.Destroy(c.current, c.part, c.cfg.K, c.rng)
	if err := repair.Repair(c.inst, c.current, workset, c.cfg.PRandom, c.rng); err != nil {
		c.log.Warn("repair failed, restored backup", err)
		c.backup.CloneInto(c.current)
		c.stagnation++
		if c.stagnation >= c.cfg.StagnationLimit {
			c.restart()
		}
		return
	}

	delta := c.current.Cost - c.backup.Cost
	if delta < 0 {
		if c.current.Cost < c.recentBest.Cost {
			c.current.CloneInto(c.recentBest)
		}
		if c.current.Cost < c.globalBest.Cost {
			c.current.CloneInto(c.globalBest)
			c.stagnation = 0
			c.log.Improvement(c.iterations, c.globalBest.Cost)
			if c.shared != nil {
				c.shared.Publish(c.globalBest)
			}
		} else {
			c.stagnation++
		}
	} else {
		if c.rng.Float64() >= c.cfg.PWorse {
			c.backup.CloneInto(c.current)
		}
		c.stagnation++
	}

	c.log.Iteration(c.iterations, c.current.Cost, c.globalBest.Cost, c.stagnation)

	if c.cfg.ResyncEvery > 0 && c.iterations%c.cfg.ResyncEvery == 0 {
		c.current.Resync()
	}

	if c.stagnation >= c.cfg.StagnationLimit {
		c.restart()
	}
}

// restart reseeds current from global_best (probability 0.80) or
// recent_best, applies a larger tabu-ignoring jump, repairs it greedily
// (no random jitter), clears tabu memory, and resets stagnation. When a
// shared orchestrator is attached, the global-best branch requests its
// pooled best (which may be ahead of this worker's own) rather than
// falling back to the worker-local one.
func (c *Controller) restart() {
	seededFromGlobalBest := c.rng.Float64() < c.cfg.RestartFromGlobalBestProb
	if seededFromGlobalBest {
		if c.shared == nil || !c.shared.Snapshot(c.current) {
			c.globalBest.CloneInto(c.current)
		}
	} else {
		c.recentBest.CloneInto(c.current)
	}
	// Keep a seed snapshot in backup: if the greedy jump-repair can't
	// place every customer, fall back to the pre-jump seed rather than
	// leave current partially repaired.
	c.current.CloneInto(c.backup)

	workset := destroy.Jump(c.current, c.inst.N, c.kJump, c.rng)
	if err := repair.Repair(c.inst, c.current, workset, 0, c.rng); err != nil {
		c.log.Warn("jump-repair failed, restored pre-jump seed", err)
		c.backup.CloneInto(c.current)
	}

	c.log.Restart(c.iterations, seededFromGlobalBest, c.kJump)

	c.part.Reset()
	c.stagnation = 0
	c.current.CloneInto(c.recentBest)
}

// Run steps the controller until ctx is cancelled or MaxIterations (if
// nonzero) is reached, then returns GlobalBest. Cancellation is cooperative:
// checked once per iteration boundary, so Run returns within one destroy+repair
// of ctx being done.
func (c *Controller) Run(ctx context.Context) *cvrpsol.Solution {
	for {
		select {
		case <-ctx.Done():
			return c.GlobalBest()
		default:
		}

		c.Step()

		if c.cfg.MaxIterations > 0 && c.iterations >= c.cfg.MaxIterations {
			return c.GlobalBest()
		}
	}
}
