package poset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causalix/causalix/poset"
)

// chainPlusOne builds {a1, b1, b2, b3} with b1<b2<b3.
func chainPlusOne(t *testing.T) *poset.Poset {
	t.Helper()
	p := poset.New([]string{"a1", "b1", "b2", "b3"})
	require.NoError(t, p.Order("b1", "b2"))
	require.NoError(t, p.Order("b2", "b3"))

	return p
}

// TestTopoSorts_CountChain: a free element against a 3-chain slots in
// 4 ways; pinning a1 before b2 leaves 2.
func TestTopoSorts_CountChain(t *testing.T) {
	p := chainPlusOne(t)
	assert.Len(t, p.AllTopologicalSorts(), 4)

	require.NoError(t, p.Order("a1", "b2"))
	assert.Len(t, p.AllTopologicalSorts(), 2)
}

// TestTopoSorts_RespectOrder: every sort visits each element once and
// never contradicts the relation.
func TestTopoSorts_RespectOrder(t *testing.T) {
	p := chainPlusOne(t)
	elems := p.Elements()

	for _, sort := range p.AllTopologicalSorts() {
		require.Len(t, sort, len(elems))
		pos := make(map[string]int, len(sort))
		for i, v := range sort {
			_, dup := pos[v]
			require.False(t, dup, "element %s visited twice", v)
			pos[v] = i
		}
		for _, u := range elems {
			for _, v := range elems {
				if p.Check(u, v) {
					assert.Less(t, pos[u], pos[v], "sort %v violates %s < %s", sort, u, v)
				}
			}
		}
	}
}

// TestTopoSorts_TotalOrder: a total order has exactly one sort.
func TestTopoSorts_TotalOrder(t *testing.T) {
	p := poset.New([]string{"x", "y", "z"})
	require.NoError(t, p.Order("y", "x"))
	require.NoError(t, p.Order("x", "z"))

	sorts := p.AllTopologicalSorts()
	require.Len(t, sorts, 1)
	assert.Equal(t, []string{"y", "x", "z"}, sorts[0])
}

// TestTopoSorts_EmptyOrderIsPermutations: n unrelated elements give
// n! sorts.
func TestTopoSorts_EmptyOrderIsPermutations(t *testing.T) {
	p := poset.New([]string{"a", "b", "c"})
	assert.Len(t, p.AllTopologicalSorts(), 6)
}

// TestVisitTopoSorts_EarlyStop: returning false stops the stream.
func TestVisitTopoSorts_EarlyStop(t *testing.T) {
	p := poset.New([]string{"a", "b", "c"})
	calls := 0
	p.VisitTopologicalSorts(func([]string) bool {
		calls++

		return false
	})
	assert.Equal(t, 1, calls)
}
