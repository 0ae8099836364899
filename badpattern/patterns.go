package badpattern

import (
	"github.com/causalix/causalix/history"
)

// writeCOInitRead reports whether some initial-value read has a causal
// ancestor writing the same key.
func (a *analysis) writeCOInitRead() bool {
	for _, id := range a.h.Operations() {
		e, _ := a.h.Label(id)
		if e.Op.Method != history.MethodRead || e.Op.Ret != nil {
			continue
		}
		anc, err := a.co.Predecessors(id)
		if err != nil {
			continue
		}
		for _, w := range anc {
			we, _ := a.h.Label(w)
			if we.Op.Method == history.MethodWrite && we.Op.Key == e.Op.Key {
				return true
			}
		}
	}

	return false
}

// writeCORead reports whether, for some recovered wr edge (w, r) on
// key k, another write of k sits causally between w and r.
func (a *analysis) writeCORead() bool {
	for _, wr := range a.edges {
		mids, err := a.co.Between(wr.write, wr.read)
		if err != nil {
			continue
		}
		for _, m := range mids {
			me, _ := a.h.Label(m)
			if me.Op.Method == history.MethodWrite && me.Op.Key == wr.key {
				return true
			}
		}
	}

	return false
}

// cyclicCF reports whether the conflict edges close a cycle: for each
// wr edge (w, r) on key k, every other write of k in r's causal past
// must be arbitrated before w, so it gains an edge onto w.
func (a *analysis) cyclicCF() bool {
	cf := a.co.Clone()
	for _, wr := range a.edges {
		anc, err := a.co.Predecessors(wr.read)
		if err != nil {
			continue
		}
		for _, o := range anc {
			if o == wr.write {
				continue
			}
			oe, _ := a.h.Label(o)
			if oe.Op.Method != history.MethodWrite || oe.Op.Key != wr.key {
				continue
			}
			if err = cf.Link(o, wr.write); err != nil {
				// Endpoints come from co; only self-links could fail,
				// and those are excluded above.
				continue
			}
		}
	}

	return cf.Close() != nil
}
