// Package dispatch resolves and runs CLI commands.
//
// Ownership boundary:
// - command name normalization
//
// - registry lookup with classified load results
//
// - two-tier resolution with the help fallback
//
// - global/local option merge and handler invocation
//
// Resolution order:
// - namespace command -> identity help -> terminal diagnostic
//
// - the raw command form is pushed back for the fallback so help can
//   describe it.
//
// Dispatch does not own option policy (package opt) or token ordering
// (package argv).
package dispatch
