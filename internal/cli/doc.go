// Package cli defines the Cobra command tree for the extbuild CLI. Each file
// in this package registers one top-level command (build, plan, check, etc.)
// with the root command. Command implementations delegate to internal packages
// for the build logic and only handle flag parsing, I/O formatting and
// wiring.
package cli
