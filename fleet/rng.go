package fleet

import "math/rand"

// deriveSeed mixes a parent seed and a worker index into a new 64-bit seed
// via a SplitMix64-style avalanche mix, giving each worker a decorrelated
// deterministic stream from one master seed.
//
// Complexity: O(1).
func deriveSeed(parent int64, worker uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (worker + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG builds one independent *rand.Rand per worker from a master seed.
// base.Int63() is consumed once per call to decorrelate consecutive workers
// before mixing in the worker index, mirroring the construction pattern
// used elsewhere in this codebase for derived RNG streams.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, worker uint64) *rand.Rand {
	parent := base.Int63()
	return rand.New(rand.NewSource(deriveSeed(parent, worker)))
}
