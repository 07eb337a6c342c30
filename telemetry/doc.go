// Package telemetry wires structured logging for the CVRP-LNS engine. It
// wraps a *zap.SugaredLogger with a handful of domain-specific helpers
// (iteration progress, restart events, worker lifecycle) so callers never
// hand-format log lines themselves.
package telemetry
