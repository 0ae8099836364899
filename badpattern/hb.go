package badpattern

import (
	"github.com/causalix/causalix/history"
)

// hbEdge is one happens-before edge owed to a single process's view.
type hbEdge struct {
	from, to string
}

// hbEdges computes the per-process happens-before extension: for each
// recovered wr edge (w, r) on key k returning v, every causal ancestor
// of r writing k with a value other than v must, in r's process's
// view, happen before w.
func (a *analysis) hbEdges() map[string][]hbEdge {
	out := make(map[string][]hbEdge)
	for _, wr := range a.edges {
		proc, ok := a.h.Process(wr.read)
		if !ok {
			continue
		}
		anc, err := a.co.Predecessors(wr.read)
		if err != nil {
			continue
		}
		for _, o := range anc {
			oe, _ := a.h.Label(o)
			if oe.Op.Method != history.MethodWrite || oe.Op.Key != wr.key || oe.Op.Value == wr.value {
				continue
			}
			out[proc] = append(out[proc], hbEdge{from: o, to: wr.write})
		}
	}

	return out
}

// hbCheck runs the two CM-only patterns together, honoring report
// order: a WriteHBInitRead anywhere wins over a CyclicHB elsewhere.
func (a *analysis) hbCheck() Verdict {
	edges := a.hbEdges()
	cyclic := false

	for _, proc := range a.h.Processes() {
		g := a.co.Clone()
		for _, e := range edges[proc] {
			if e.from == e.to {
				continue
			}
			if err := g.Link(e.from, e.to); err != nil {
				continue
			}
		}
		if err := g.Close(); err != nil {
			// Closure failed: this process's view is cyclic, and its
			// ancestor cones are unusable for the init-read scan.
			cyclic = true

			continue
		}

		// WriteCOInitRead, but over this process's extended view and
		// restricted to this process's own reads.
		for _, id := range a.h.Operations() {
			if p, _ := a.h.Process(id); p != proc {
				continue
			}
			e, _ := a.h.Label(id)
			if e.Op.Method != history.MethodRead || e.Op.Ret != nil {
				continue
			}
			anc, err := g.Predecessors(id)
			if err != nil {
				continue
			}
			for _, w := range anc {
				we, _ := a.h.Label(w)
				if we.Op.Method == history.MethodWrite && we.Op.Key == e.Op.Key {
					return bad(WriteHBInitRead)
				}
			}
		}
	}

	if cyclic {
		return bad(CyclicHB)
	}

	return clean
}
