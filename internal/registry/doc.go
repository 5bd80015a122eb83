// Package registry provides the dispatcher that glues puzzle identifiers to
// compiled solvers.
//
// Each puzzle package exposes a Module that registers its solver under the
// identifier used on the command line (e.g., "day1"). During startup the App
// registers every compiled-in module; afterwards the Registry is read-only and
// Solve is the single entry point used to run a puzzle.
package registry
