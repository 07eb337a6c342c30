// Package vrpio is the boundary between the CVRP-LNS engine and the outside
// world: it parses the whitespace-separated .vrp instance format into a
// distmat.Instance, and renders a finished run as the single-line JSON
// result record the CLI prints on stdout.
package vrpio
