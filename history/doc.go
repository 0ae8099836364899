// Package history models recorded executions of a shared object and
// the abstract state machine that judges them.
//
// A History is built once from per-process operation lists: every
// operation gets a stable identifier "{process}.{index}" (one-indexed
// within its process), a label, and a place in the program-order
// poset. Histories are then derived, never mutated in place:
//
//   - WithOrder swaps the program order for a causal-order refinement
//   - CausalHist restricts to the causal past of one operation,
//     erasing return values outside a chosen retain set
//   - CausalArb serializes the causal past along a given total order
//
// The Specification interface is the open extension point: a pure,
// deterministic state machine with Start and Step. Satisfies walks a
// log left to right, threading state through Step and comparing the
// returned operation against every entry that still carries its
// observed return. RWMemorySpecification is the built-in key-value
// memory: wr(k,v) binds k, rd(k) returns the bound value or nil for
// the initial state.
//
// Errors:
//
//   - ErrEmptyProcess      - a process identifier is the empty string
//   - ErrNoOperations      - the input maps no process to any operation
//   - ErrOperationNotFound - an identifier names no operation
package history
