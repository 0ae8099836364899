package badpattern

import (
	"errors"
	"fmt"

	"github.com/causalix/causalix/history"
	"github.com/causalix/causalix/poset"
)

// writeKey indexes a write by its full argument.
type writeKey struct {
	Key   string
	Value any
}

// wrEdge records one recovered write-to-read pair on a key.
type wrEdge struct {
	key   string
	value any
	write string // writer identifier
	read  string // reader identifier
}

// analysis carries the closed causal order and the recovered
// write-read relation the individual pattern checks operate on.
type analysis struct {
	h      *history.History
	co     *poset.Poset
	writes map[writeKey]string
	edges  []wrEdge
}

// Differentiated reports whether every written (key, value) pair
// occurs at most once in h.
func Differentiated(h *history.History) bool {
	seen := make(map[writeKey]struct{})
	for _, id := range h.Operations() {
		e, _ := h.Label(id)
		if e.Op.Method != history.MethodWrite {
			continue
		}
		k := writeKey{Key: e.Op.Key, Value: e.Op.Value}
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
	}

	return true
}

// makeCO recovers wr from the write index, links it onto a copy of
// the program order, and closes the result. A non-clean verdict is
// ThinAirRead or CyclicCO; ErrNotDifferentiated is an input error.
func makeCO(h *history.History) (*analysis, Verdict, error) {
	if !Differentiated(h) {
		return nil, Verdict{}, ErrNotDifferentiated
	}

	a := &analysis{
		h:      h,
		writes: make(map[writeKey]string),
	}

	// 1. Index writes by their full argument.
	ids := h.Operations()
	for _, id := range ids {
		e, _ := h.Label(id)
		if e.Op.Method == history.MethodWrite {
			a.writes[writeKey{Key: e.Op.Key, Value: e.Op.Value}] = id
		}
	}

	// 2. Link each non-initial read to its writer. A read whose value
	//    no write produced comes out of thin air; stop before closure,
	//    the verdict does not depend on the placement.
	a.co = h.Poset().Clone()
	for _, id := range ids {
		e, _ := h.Label(id)
		if e.Op.Method != history.MethodRead || e.Op.Ret == nil {
			continue
		}
		w, ok := a.writes[writeKey{Key: e.Op.Key, Value: e.Op.Ret}]
		if !ok {
			return nil, bad(ThinAirRead), nil
		}
		if w == id {
			// A read can not be its own writer; unreachable with the
			// method split, kept as a guard for future specifications.
			return nil, bad(CyclicCO), nil
		}
		if err := a.co.Link(w, id); err != nil {
			return nil, Verdict{}, fmt.Errorf("badpattern: link wr: %w", err)
		}
		a.edges = append(a.edges, wrEdge{key: e.Op.Key, value: e.Op.Ret, write: w, read: id})
	}

	// 3. Cycle check and transitive closure in one pass.
	if err := a.co.Close(); err != nil {
		if errors.Is(err, poset.ErrCycleDetected) {
			return nil, bad(CyclicCO), nil
		}

		return nil, Verdict{}, fmt.Errorf("badpattern: close co: %w", err)
	}

	return a, clean, nil
}

// CO exposes the finished causal order co = (po ∪ wr)⁺ of a
// differentiated history, or the ThinAirRead/CyclicCO verdict that
// prevented its construction. Intended for inspection and tests.
func CO(h *history.History) (*poset.Poset, Verdict, error) {
	a, v, err := makeCO(h)
	if err != nil || !v.Clean {
		return nil, v, err
	}

	return a.co, v, nil
}
