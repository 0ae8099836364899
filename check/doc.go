// Package check implements the semantic deciders for the three weak
// causal consistency criteria: CC, CM, and CCv.
//
// All three search the refinements of the history's program order -
// every causal-order candidate co - and validate candidate
// serializations against an abstract Specification:
//
//   - CC: every operation o must own a topological sort of its causal
//     past (only o keeping its return) that the specification accepts,
//     all under one co.
//   - CM: as CC, but o's entire causal past keeps its returns - the
//     reader sees its own past coherently.
//   - CCv: one total order arb over co must serialize every
//     operation's causal past acceptably - a globally agreed
//     arbitration of writes.
//
// The searches are pure functions of their inputs and are complete on
// their own; the badpattern filter is an optional short-circuit for
// callers, never a dependency.
//
// Options follow the house pattern: context cancellation checked
// between refinements, a zerolog.Logger for structured progress
// events (which refinement, which operation, which sort witnessed -
// no semantic effect), and optional bounded parallelism across
// refinements, which are mutually independent.
//
// Complexity: exponential in the number of unordered operation pairs;
// this is intrinsic to the problem, and the engine chooses
// correctness over speed.
//
// Errors:
//
//   - ErrNilHistory / ErrNilSpecification - programmer errors
//   - context.Canceled / DeadlineExceeded - the search was cut short
package check
