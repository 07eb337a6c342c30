// Command and library cvrp-lns solves the Capacitated Vehicle Routing
// Problem with an adaptive Large Neighborhood Search engine.
//
// Package layout:
//
//	distmat/  — Instance and its precomputed distance matrix
//	cvrpsol/  — mutable Solution with incremental cost/load tracking
//	tabu/     — free/tabu customer partition with FIFO eviction
//	construct/ — bootstrap heuristics (Clarke-Wright, sweep, greedy)
//	destroy/  — destroy operator (ordinary draw and restart jump)
//	repair/   — best-insertion and random-jitter repair operator
//	lns/      — single-worker destroy/repair/accept controller
//	fleet/    — parallel worker pool and orchestrator
//	cvrpcfg/  — engine configuration and defaults
//	cvrperr/  — shared sentinel errors
//	telemetry/ — structured logging
//	vrpio/    — .vrp parsing and JSON result emission
//	cmd/cvrp-lns/ — CLI entry point
//
// See DESIGN.md for how each package maps to its source material.
package cvrplns
