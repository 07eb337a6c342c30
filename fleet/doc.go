// Package fleet is the worker pool / orchestrator: it runs N independent
// lns.Controller instances concurrently, each with its own deterministically
// derived RNG stream and its own current/recent_best solutions, and
// reconciles their results into one shared global_best guarded by a mutex.
//
// Cancellation is cooperative: the orchestrator derives a single
// context.Context (carrying the configured time budget, if any) and every
// worker's Controller.Run polls it once per iteration. Pool.Run joins all
// workers via errgroup before returning.
package fleet
