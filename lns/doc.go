// Package lns implements the adaptive Large Neighborhood Search controller:
// a single-threaded destroy/repair/accept loop over one Solution, with a
// stagnation-triggered restart policy. Package fleet runs N of these
// controllers concurrently and reconciles their global bests.
//
// Per iteration: snapshot current, destroy+repair it, accept or roll back
// per the Δ-based rule, and trigger a restart jump once stagnation crosses
// the configured limit. See cvrpcfg for every threshold involved.
package lns
