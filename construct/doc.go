// Package construct builds an initial feasible CVRP Solution via a
// three-tier fallback, tried in order until one succeeds:
//
//  1. Savings (Clarke–Wright with Gaussian-jittered savings).
//  2. Sweep (polar-angle partitioning around the depot).
//  3. Greedy (first-fit in input order).
//
// Each tier is a Strategy — a small capability abstraction selected at
// construction time rather than a class hierarchy, per the "polymorphic
// solvers" design note: construct(instance) -> solution, nothing more.
// Bootstrap runs the tiers in order and returns the first feasible
// solution, and ErrInfeasible only when all three fail. Greedy, the last
// tier, fails when total demand > M*Q or when first-fit needs more than M
// routes; a single demand exceeding Q is already rejected at Instance
// construction time (see distmat.New).
package construct
