// Package cvrperr centralizes the sentinel errors shared across the CVRP-LNS
// engine. Every kind named by the design is declared exactly once here so
// callers can match with errors.Is instead of string comparison.
//
// Propagation policy:
//   - Fatal kinds (ErrParse, ErrInfeasible) short-circuit the run and are
//     reported on stderr by the CLI.
//   - Recoverable kinds (ErrCapacityExceeded, ErrEmptyTabu, ErrEmptyFree,
//     ErrTransientInfeasible) never escape the LNS loop; the controller
//     catches them locally and counts the iteration as non-improving.
//
// Do not wrap with fmt.Errorf where a sentinel suffices; the one accepted
// exception is vrpio's parse error, which adds line context while still
// matching ErrParse via errors.Is.
package cvrperr

import "errors"

var (
	// ErrParse indicates a malformed .vrp input file. Fatal.
	ErrParse = errors.New("cvrp: malformed input file")

	// ErrInfeasible indicates construction could not produce any feasible
	// solution (e.g. total demand exceeds M*Q, or a single demand exceeds Q). Fatal.
	ErrInfeasible = errors.New("cvrp: no feasible solution exists")

	// ErrCapacityExceeded indicates an attempted insertion would push a
	// route's load over Q. Recovered locally: the tried position is rejected.
	ErrCapacityExceeded = errors.New("cvrp: insertion would exceed vehicle capacity")

	// ErrEmptyFree indicates destroy was asked to draw more customers than
	// the free set currently holds. Recovered by clamping to len(free).
	ErrEmptyFree = errors.New("cvrp: free set exhausted")

	// ErrEmptyTabu indicates a tabu-queue operation was attempted on an
	// empty FIFO (e.g. evicting from zero length). Recovered by no-op.
	ErrEmptyTabu = errors.New("cvrp: tabu queue is empty")

	// ErrTransientInfeasible indicates repair could not place some customer
	// at any feasible position. Recovered by restoring the pre-destroy backup;
	// the iteration is counted as non-improving.
	ErrTransientInfeasible = errors.New("cvrp: no feasible insertion point for customer")

	// ErrInvariant indicates a constructed Solution violates one of its own
	// bookkeeping invariants (a customer missing or duplicated, a stale
	// Assignment/Load entry) as found by Solution.Verify. This is a bug in
	// the engine, not a malformed input, so it is never confused with
	// ErrParse even though both are fatal.
	ErrInvariant = errors.New("cvrp: solution invariant violated")
)
