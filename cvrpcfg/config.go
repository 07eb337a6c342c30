package cvrpcfg

import "time"

// Config collects every tunable threshold of the destroy/repair/LNS engine.
// Zero value is not meaningful; use DefaultConfig.
type Config struct {
	// K is the destroy size per ordinary iteration. Default: 5.
	K int

	// TabuFraction sizes the tabu FIFO as ceil(TabuFraction*n). Default: 0.10.
	TabuFraction float64

	// PRandom is the probability repair picks a uniformly random feasible
	// slot instead of the best-Δ slot. Default: 0.02.
	PRandom float64

	// PWorse is the probability a non-improving repair is accepted anyway.
	// Default: 0.10.
	PWorse float64

	// StagnationLimit is the number of non-improving iterations that
	// triggers a restart. Default: 50.
	StagnationLimit int

	// RestartFromGlobalBestProb is the probability a restart reseeds
	// current from global_best rather than recent_best. Default: 0.80.
	RestartFromGlobalBestProb float64

	// JumpFraction sizes the restart jump as max(K, ceil(JumpFraction*n)).
	// Default: 0.15.
	JumpFraction float64

	// Workers is the number of parallel LNS controllers in the pool.
	// Default: 4.
	Workers int

	// TimeBudget bounds wall-clock run time; zero means no time bound
	// (iteration budget only). Default: 4m59s.
	TimeBudget time.Duration

	// MaxIterations bounds the total iterations per worker; zero means
	// unbounded (time budget only). Default: 0.
	MaxIterations int

	// ResyncEvery periodically recomputes Cost/Load from scratch to bound
	// incremental floating-point drift. Default: 500.
	ResyncEvery int

	// MasterSeed seeds the deterministic per-worker RNG derivation.
	// Default: 1.
	MasterSeed int64
}

// DefaultConfig returns the documented defaults of the LNS specification.
func DefaultConfig() Config {
	return Config{
		K:                         5,
		TabuFraction:              0.10,
		PRandom:                   0.02,
		PWorse:                    0.10,
		StagnationLimit:           50,
		RestartFromGlobalBestProb: 0.80,
		JumpFraction:              0.15,
		Workers:                   4,
		TimeBudget:                4*time.Minute + 59*time.Second,
		MaxIterations:             0,
		ResyncEvery:               500,
		MasterSeed:                1,
	}
}
