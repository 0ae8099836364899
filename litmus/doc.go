// Package litmus provides the canonical litmus histories from the
// causal consistency literature - the small executions that separate
// CC, CM, and CCv from one another - plus a seeded random history
// generator for exercising the checkers.
//
// The named fixtures are shared by the package tests and usable as
// worked examples:
//
//	Ha       - CC ✓  CM ✓  CCv ✗  (no global write order)
//	Hb       - CC ✓  CM ✗  CCv ✓  (reader's own past incoherent)
//	Hc       - CC ✓  CM ✗  CCv ✗
//	Hd       - CC ✓  CM ✓  CCv ✓  (symmetric independent writes)
//	He       - CC ✗  CM ✗  CCv ✗  (WriteCORead)
//	ThinAir  - a read of a value nobody wrote
//	CyclicCO - program order and write-read edges close a cycle
//
// Generate produces differentiated histories deterministically from a
// seed; reads return either a previously generated write's value or
// the initial value, so the output ranges over both consistent and
// inconsistent executions.
package litmus
