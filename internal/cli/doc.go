// Package cli wires together the Cobra command tree for the empathic binary.
//
// The root command takes one input file, reads configuration, builds the
// selected rewrite strategy, runs the review engine and writes the report.
// Subcommands cover configuration (config init, show, set), providers
// (list, check) and version.
package cli
