package history

import "fmt"

// State is an opaque specification state. Implementations must treat
// states as immutable values: Step returns a fresh state rather than
// mutating its input, so search branches can share snapshots freely.
type State any

// Specification is a deterministic abstract state machine: the legal
// behaviors of the shared object. Step is pure - given a state and an
// instruction it yields the successor state and the operation the
// object would return.
type Specification interface {
	// Start returns the initial state.
	Start() State

	// Step applies in to st, returning the successor state and the
	// completed operation (argument plus produced return).
	Step(st State, in Instruction) (State, Operation)
}

// Satisfies walks log left to right, threading state through
// spec.Step. Entries carrying their observed return (Verify) must
// match the specification's answer exactly; the rest only advance the
// state. An empty log is vacuously satisfied.
func Satisfies(spec Specification, log []Entry) bool {
	st := spec.Start()
	var out Operation
	for _, e := range log {
		st, out = spec.Step(st, e.Op.Instruction())
		if e.Verify && out != e.Op {
			return false
		}
	}

	return true
}

// RWMemorySpecification is the built-in read/write key-value memory:
// wr(k, v) binds k to v, rd(k) returns the bound value or nil when k
// was never written.
type RWMemorySpecification struct{}

// memState is an immutable snapshot of the memory contents. Step
// copies on write, so handed-out states never change underfoot.
type memState map[string]any

// Start returns the empty memory.
func (RWMemorySpecification) Start() State {
	return memState(nil)
}

// Step applies a read or write to the snapshot.
func (RWMemorySpecification) Step(st State, in Instruction) (State, Operation) {
	m, _ := st.(memState)
	switch in.Method {
	case MethodWrite:
		next := make(memState, len(m)+1)
		for k, v := range m {
			next[k] = v
		}
		next[in.Key] = in.Value

		return next, Operation{Method: MethodWrite, Key: in.Key, Value: in.Value}
	case MethodRead:
		return m, Operation{Method: MethodRead, Key: in.Key, Ret: m[in.Key]}
	default:
		panic(fmt.Sprintf("history: unexpected method %d", in.Method))
	}
}
