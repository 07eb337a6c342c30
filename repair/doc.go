// Package repair implements the LNS repair operator: reinsert a workset of
// removed customers into a Solution, one at a time, largest demand first.
//
// Each customer is placed either at a uniformly random feasible (route,
// position) pair (with small probability, for diversification) or at the
// feasible position minimizing insertion cost (the common case). A customer
// with no feasible position at all yields cvrperr.ErrTransientInfeasible;
// the caller (package lns) is expected to restore the pre-destroy backup.
package repair
