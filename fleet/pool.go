package fleet

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cvrp-lns/cvrpcfg"
	"github.com/katalvlaran/cvrp-lns/cvrpsol"
	"github.com/katalvlaran/cvrp-lns/distmat"
	"github.com/katalvlaran/cvrp-lns/lns"
	"github.com/katalvlaran/cvrp-lns/telemetry"
)

// Pool runs cfg.Workers independent lns.Controller instances over the same
// Instance and reconciles their global bests into one winner. Zero value is
// not meaningful; use NewPool.
type Pool struct {
	inst *distmat.Instance
	cfg  cvrpcfg.Config
	log  *telemetry.Logger

	mu         sync.Mutex
	globalBest *cvrpsol.Solution

	totalIterations int64
}

var _ lns.SharedBest = (*Pool)(nil)

// NewPool prepares an orchestrator for inst under cfg. No controller is
// constructed until Run.
func NewPool(inst *distmat.Instance, cfg cvrpcfg.Config) *Pool {
	return &Pool{inst: inst, cfg: cfg, log: telemetry.Nop()}
}

// SetLogger attaches a Logger that Run scopes per worker (Worker(id)) and
// threads into each lns.Controller, so per-iteration detail, restarts, and
// global-best improvements carry a worker id (§6 "orchestrator logs ...").
// A Pool with no logger attached logs nothing.
func (p *Pool) SetLogger(log *telemetry.Logger) {
	if log != nil {
		p.log = log
	}
}

// Run launches cfg.Workers controllers concurrently, each seeded from
// cfg.MasterSeed via an independent derived stream, and waits for all of
// them to finish (by context cancellation, by cfg.TimeBudget if nonzero, or
// by MaxIterations). Returns the best solution found across every worker.
//
// Complexity: O(workers) goroutines, each running its own Controller.Run.
func (p *Pool) Run(ctx context.Context) (*cvrpsol.Solution, error) {
	if p.cfg.TimeBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.TimeBudget)
		defer cancel()
	}

	group, gctx := errgroup.WithContext(ctx)
	base := rand.New(rand.NewSource(p.cfg.MasterSeed))

	workers := p.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	for w := 0; w < workers; w++ {
		workerRNG := deriveRNG(base, uint64(w))
		group.Go(func() error {
			ctrl, err := lns.NewController(p.inst, p.cfg, workerRNG)
			if err != nil {
				return err
			}
			ctrl.SetShared(p)
			ctrl.SetLogger(p.log.Worker(w))
			best := ctrl.Run(gctx)
			atomic.AddInt64(&p.totalIterations, int64(ctrl.Iterations()))
			p.considerGlobalBest(best)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return p.GlobalBest(), nil
}

// considerGlobalBest atomically replaces the pool's shared global_best if
// candidate strictly improves on it. Takes an independent snapshot rather
// than aliasing the worker's own solution, since the worker's buffers keep
// mutating after returning the pointer.
func (p *Pool) considerGlobalBest(candidate *cvrpsol.Solution) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.globalBest == nil || candidate.Cost < p.globalBest.Cost {
		snapshot := cvrpsol.New(p.inst)
		candidate.CloneInto(snapshot)
		p.globalBest = snapshot
	}
}

// Publish implements lns.SharedBest: a worker reports a newly accepted
// global-best solution for the pool to fold into the shared global_best
// (§4.7 "workers publish improvements to the orchestrator").
func (p *Pool) Publish(candidate *cvrpsol.Solution) {
	p.considerGlobalBest(candidate)
}

// Snapshot implements lns.SharedBest: copies the pool's current shared
// global_best into dst, reporting whether one has been published yet.
// A restarting worker calls this to reseed from the orchestrator's best
// instead of its own, which may lag behind the other workers (§4.7).
func (p *Pool) Snapshot(dst *cvrpsol.Solution) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.globalBest == nil {
		return false
	}
	p.globalBest.CloneInto(dst)
	return true
}

// TotalIterations returns the sum of Iterations() across every worker that
// has finished so far.
func (p *Pool) TotalIterations() int {
	return int(atomic.LoadInt64(&p.totalIterations))
}

// GlobalBest returns a safe-to-read snapshot of the pool's current shared
// best. Returns nil if no worker has reported yet.
func (p *Pool) GlobalBest() *cvrpsol.Solution {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.globalBest == nil {
		return nil
	}
	snapshot := cvrpsol.New(p.inst)
	p.globalBest.CloneInto(snapshot)
	return snapshot
}
