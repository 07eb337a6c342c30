// Package distmat defines the immutable CVRP problem Instance and its
// precomputed Euclidean distance matrix.
//
// # What & Why
//
// An Instance is a depot (index 0) plus N customers, each with a planar
// coordinate and an integer demand, and a fleet upper bound M of identical
// vehicles of capacity Q. The distance matrix is built once, O(n^2) time
// and memory, and then shared read-only by every worker: lookups in the
// hot search loop are a single flat-slice index, no bounds check, because
// indices in that loop are always drawn from the customer domain
// (construction/destroy/repair never synthesize an out-of-range index).
//
// # Contracts
//
//   - N >= 0, M >= 1, Q >= 1.
//   - Demand[0] == 0 (depot), Demand[i] <= Q for all i (else infeasible:
//     no route could ever carry that customer).
//   - Dist(i, i) == 0, Dist(i, j) == Dist(j, i) (planar Euclidean metric).
//
// # Complexity
//
//	Build: O(n^2) time, O(n^2) memory for the flat buffer.
//	Dist:  O(1), inlined at call sites in hot loops.
package distmat
