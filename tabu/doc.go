// Package tabu implements the short-term tabu memory used by the LNS
// destroy operator: a two-set partition of {1..N} into Free and Tabu,
// backed by a fixed-capacity FIFO so that inserting into Tabu evicts the
// oldest member back into Free.
//
// Contracts (hold at every observable point):
//
//	Free ∩ Tabu == ∅
//	Free ∪ Tabu == {1..N}
//	len(Tabu) <= ceil(fraction * N)   (fraction 0.10 by default)
//
// Destroy may only draw from Free; DrawAndTabu moves each drawn customer
// from Free into Tabu, evicting the oldest Tabu member (which rejoins Free) once the FIFO
// is at capacity. All operations are O(1) amortized via a plain-index
// swap-remove, mirroring the assignment[c] -> route index discipline used
// throughout the rest of this repository (no owned back-references).
package tabu
