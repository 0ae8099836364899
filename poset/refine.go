package poset

// This file implements refinement enumeration: the set of all
// transitively-closed strict partial orders over the same elements
// whose edge set contains the current one, the current order included.
//
// The search is a frontier traversal (BFS) over (poset, pair-index)
// states. Candidate pairs are the ordered pairs (u, v) with no edge in
// either direction in the starting order; at each state every
// still-undecided pair at or beyond the state's index is either
// skipped (index advancement, no copy) or applied to an independent
// copy via orderIdx. Two dedup layers keep the traversal finite and
// the output a set:
//
//   - states dedup on (fingerprint, index): identical states have
//     identical futures, so revisits are pruned without losing any
//     reachable order;
//   - results dedup on fingerprint-bucketed structural equality, so
//     each distinct refinement is emitted exactly once no matter how
//     many candidate subsets produce it.

// pair is an ordered candidate (u, v) in dense indices.
type pair struct{ u, v int }

// posetSet deduplicates posets by Fingerprint with an Equal fallback
// on bucket collisions. It is the set-semantics half of the
// hash-mirrors-equality contract.
type posetSet struct {
	buckets map[uint64][]*Poset
	size    int
}

func newPosetSet() *posetSet {
	return &posetSet{buckets: make(map[uint64][]*Poset)}
}

// add inserts p and reports whether it was not present before.
func (s *posetSet) add(p *Poset) bool {
	fp := p.Fingerprint()
	for _, q := range s.buckets[fp] {
		if p.Equal(q) {
			return false
		}
	}
	s.buckets[fp] = append(s.buckets[fp], p)
	s.size++

	return true
}

// stateKey identifies a (poset, next-pair) search state by the poset
// fingerprint; collisions fall back to Equal within the bucket.
type stateKey struct {
	fp   uint64
	next int
}

// stateSet deduplicates (poset, index) frontier states.
type stateSet struct {
	buckets map[stateKey][]*Poset
}

func newStateSet() *stateSet {
	return &stateSet{buckets: make(map[stateKey][]*Poset)}
}

func (s *stateSet) add(p *Poset, next int) bool {
	k := stateKey{fp: p.Fingerprint(), next: next}
	for _, q := range s.buckets[k] {
		if p.Equal(q) {
			return false
		}
	}
	s.buckets[k] = append(s.buckets[k], p)

	return true
}

// candidatePairs enumerates, in deterministic index order, every
// ordered pair unrelated in both directions. Pairs already connected
// are pruned here; their reverses are pruned too, since either
// direction forbids the reverse.
func (p *Poset) candidatePairs() []pair {
	n := len(p.names)
	var out []pair
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if p.succ[u].Contains(uint32(v)) || p.succ[v].Contains(uint32(u)) {
				continue
			}
			out = append(out, pair{u, v})
		}
	}

	return out
}

// VisitRefinements calls fn for every refinement of p, the current
// order first, in breadth-first discovery order. Each poset passed to
// fn is an independent copy and may be retained or mutated by the
// caller. fn returns false to stop the enumeration early.
func (p *Poset) VisitRefinements(fn func(*Poset) bool) {
	pairs := p.candidatePairs()
	results := newPosetSet()
	states := newStateSet()

	// Frontier state: an order plus the index of the next candidate
	// pair to decide. Skipping is index advancement, so one state fans
	// out over every remaining pair without copying.
	type state struct {
		p    *Poset
		next int
	}

	base := p.Clone()
	results.add(base)
	states.add(base, 0)
	if !fn(base.Clone()) {
		return
	}

	queue := []state{{p: base, next: 0}}
	var st state
	for len(queue) > 0 {
		st = queue[0]
		queue = queue[1:]

		for i := st.next; i < len(pairs); i++ {
			pr := pairs[i]
			// Decided since the candidate list was drawn up? Then the
			// include branch is settled either way; skip.
			if st.p.succ[pr.u].Contains(uint32(pr.v)) || st.p.succ[pr.v].Contains(uint32(pr.u)) {
				continue
			}
			q := st.p.Clone()
			if !q.orderIdx(pr.u, pr.v) {
				continue
			}
			if results.add(q) {
				if !fn(q.Clone()) {
					return
				}
			}
			if states.add(q, i+1) {
				queue = append(queue, state{p: q, next: i + 1})
			}
		}
	}
}

// Refinements returns every refinement of p, the current order
// included. The result is a set: structurally equal orders appear
// once. Finite but combinatorially large; prefer VisitRefinements
// when an early exit is possible.
func (p *Poset) Refinements() []*Poset {
	var out []*Poset
	p.VisitRefinements(func(q *Poset) bool {
		out = append(out, q)

		return true
	})

	return out
}
