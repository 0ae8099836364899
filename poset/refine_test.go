package poset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causalix/causalix/poset"
)

// TestRefinements_TwoElements: the empty order, a<b, and b<a.
func TestRefinements_TwoElements(t *testing.T) {
	p := poset.New([]string{"a", "b"})
	refs := p.Refinements()
	assert.Len(t, refs, 3)
}

// TestRefinements_ThreeElements: the number of strict partial orders
// on three labeled elements is 19.
func TestRefinements_ThreeElements(t *testing.T) {
	p := poset.New([]string{"a", "b", "c"})
	refs := p.Refinements()
	assert.Len(t, refs, 19)
}

// TestRefinements_PreOrderedChain: {a1, b1, b2, b3} with b1<b2<b3
// fixed leaves exactly 10 extensions (a1 slotted around the chain).
func TestRefinements_PreOrderedChain(t *testing.T) {
	p := poset.New([]string{"a1", "b1", "b2", "b3"})
	require.NoError(t, p.Order("b1", "b2"))
	require.NoError(t, p.Order("b2", "b3"))

	refs := p.Refinements()
	assert.Len(t, refs, 10)
}

// TestRefinements_ContainsSelfAndExtends: every refinement preserves
// the original edges, and the original itself is among them.
func TestRefinements_ContainsSelfAndExtends(t *testing.T) {
	p := poset.New([]string{"a", "b", "c"})
	require.NoError(t, p.Order("a", "b"))

	refs := p.Refinements()
	foundSelf := false
	for _, r := range refs {
		assert.True(t, r.Check("a", "b"), "refinement dropped an original edge")
		if r.Equal(p) {
			foundSelf = true
		}
	}
	assert.True(t, foundSelf, "original order missing from its refinements")
}

// TestRefinements_ContainsTotalOrders: maximal extensions are total.
func TestRefinements_ContainsTotalOrders(t *testing.T) {
	p := poset.New([]string{"a", "b", "c"})
	totals := 0
	for _, r := range p.Refinements() {
		// A total order on n elements relates n(n-1)/2 pairs.
		if r.EdgeCount() == 3 {
			totals++
		}
	}
	assert.Equal(t, 6, totals, "expected every permutation as a maximal refinement")
}

// TestRefinements_Deduplicated: no two reported refinements are equal.
func TestRefinements_Deduplicated(t *testing.T) {
	p := poset.New([]string{"a", "b", "c"})
	refs := p.Refinements()
	for i := range refs {
		for j := i + 1; j < len(refs); j++ {
			assert.False(t, refs[i].Equal(refs[j]), "duplicate refinement at %d/%d", i, j)
		}
	}
}

// TestVisitRefinements_EarlyStop: returning false stops the stream.
func TestVisitRefinements_EarlyStop(t *testing.T) {
	p := poset.New([]string{"a", "b", "c"})
	calls := 0
	p.VisitRefinements(func(*poset.Poset) bool {
		calls++

		return calls < 5
	})
	assert.Equal(t, 5, calls)
}

// TestVisitRefinements_CopiesAreIndependent: mutating a visited poset
// must not corrupt the enumeration.
func TestVisitRefinements_CopiesAreIndependent(t *testing.T) {
	p := poset.New([]string{"a", "b"})
	var got []*poset.Poset
	p.VisitRefinements(func(r *poset.Poset) bool {
		r.OrderTry("a", "b") // scribble on the visited copy
		got = append(got, r)

		return true
	})
	require.Len(t, got, 3)
	assert.False(t, p.Check("a", "b"), "enumeration source was mutated")
}
