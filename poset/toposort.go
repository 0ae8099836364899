package poset

// This file enumerates linear extensions: every total order over the
// elements consistent with the current partial order. The enumerator
// is a backtracking Kahn's algorithm - at each depth every currently
// source element (no unplaced predecessor) is tried in ascending name
// order, so the enumeration is deterministic.

// VisitTopologicalSorts calls fn for every topological sort of p, in
// lexicographic order of the underlying element indices. The slice
// passed to fn is a fresh copy per call. fn returns false to stop the
// enumeration early.
func (p *Poset) VisitTopologicalSorts(fn func(order []string) bool) {
	n := len(p.names)
	if n == 0 {
		fn(nil)

		return
	}

	// Precompute direct rows once; the closed rows are supersets of
	// the direct ones, and linear extensions of a closure coincide
	// with those of the original relation, so the closed rows serve.
	succRows := make([][]uint32, n)
	indeg := make([]int, n)
	for i := 0; i < n; i++ {
		succRows[i] = p.succ[i].ToArray()
	}
	for i := 0; i < n; i++ {
		for _, j := range succRows[i] {
			indeg[j]++
		}
	}

	placed := make([]bool, n)
	order := make([]int, 0, n)

	// rec returns false when fn asked to abort.
	var rec func() bool
	rec = func() bool {
		if len(order) == n {
			out := make([]string, n)
			for i, v := range order {
				out[i] = p.names[v]
			}

			return fn(out)
		}
		for v := 0; v < n; v++ {
			if placed[v] || indeg[v] != 0 {
				continue
			}
			// Place v and release its successors.
			placed[v] = true
			order = append(order, v)
			for _, w := range succRows[v] {
				indeg[w]--
			}
			ok := rec()
			// Backtrack.
			for _, w := range succRows[v] {
				indeg[w]++
			}
			order = order[:len(order)-1]
			placed[v] = false
			if !ok {
				return false
			}
		}

		return true
	}
	rec()
}

// AllTopologicalSorts returns every topological sort of p, eagerly
// materialized for repeated reuse. A poset with a cycle smuggled in
// via Link and never Closed yields no sorts.
func (p *Poset) AllTopologicalSorts() [][]string {
	var out [][]string
	p.VisitTopologicalSorts(func(order []string) bool {
		out = append(out, order)

		return true
	})

	return out
}
