// Package cvrpcfg holds the tunable constants of the LNS engine as a single
// Config value, following the Options/DefaultOptions pattern: construct a
// Config via DefaultConfig and override only the fields a caller cares
// about.
package cvrpcfg
