// Package cvrpsol defines the CVRP Solution representation: a fixed-size
// slice of routes, cached per-route load, cached total cost, and a plain
// customer->route assignment index maintained incrementally.
//
// # Contracts (hold at every observable point)
//
//	Every customer 1..N appears in exactly one route.
//	Sum of demands on any route <= Q.
//	Load[r] and Cost equal the values Verify() recomputes from scratch
//	  (up to float identity when using the same summation order).
//	len(Routes) <= M.
//
// # Numeric semantics
//
// Cost is maintained by incremental delta in the hot loop (Insert/Remove).
// Resync recomputes Cost and every Load[r] from scratch to bound
// floating-point drift; package lns calls it on its current solution every
// cvrpcfg.Config.ResyncEvery iterations (default 500). Comparisons of solution quality always use
// strict < on the cached float — never ==.
//
// # Cloning
//
// CloneInto overwrites a destination Solution from this one, reusing the
// destination's existing route-slice backing arrays whenever their
// capacity suffices, so that snapshot/restore inside the LNS hot loop does
// not allocate in steady state.
package cvrpsol
