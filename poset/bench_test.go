package poset_test

import (
	"fmt"
	"testing"

	"github.com/causalix/causalix/poset"
)

// BenchmarkOrderTry_Chain measures incremental closure maintenance on
// a growing chain of size N.
func BenchmarkOrderTry_Chain(b *testing.B) {
	const n = 256
	elems := make([]string, n)
	for i := range elems {
		elems[i] = fmt.Sprintf("v%03d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := poset.New(elems)
		for j := 0; j+1 < n; j++ {
			if !p.OrderTry(elems[j], elems[j+1]) {
				b.Fatal("chain ordering rejected")
			}
		}
	}
}

// BenchmarkOrderTry_Rejection measures the cached rejection path.
func BenchmarkOrderTry_Rejection(b *testing.B) {
	p := poset.New([]string{"a", "b", "c", "d"})
	p.OrderTry("a", "b")
	p.OrderTry("b", "c")
	p.OrderTry("c", "d")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if p.OrderTry("d", "a") {
			b.Fatal("cycle accepted")
		}
	}
}

// BenchmarkRefinements_FourFree measures full enumeration over four
// unordered elements (219 partial orders).
func BenchmarkRefinements_FourFree(b *testing.B) {
	elems := []string{"a", "b", "c", "d"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := poset.New(elems)
		if got := len(p.Refinements()); got != 219 {
			b.Fatalf("expected 219 refinements, got %d", got)
		}
	}
}

// BenchmarkTopoSorts_TwoChains measures linear-extension enumeration
// of two independent 4-chains (70 sorts).
func BenchmarkTopoSorts_TwoChains(b *testing.B) {
	elems := []string{"a1", "a2", "a3", "a4", "b1", "b2", "b3", "b4"}
	p := poset.New(elems)
	for _, c := range [][2]string{{"a1", "a2"}, {"a2", "a3"}, {"a3", "a4"}, {"b1", "b2"}, {"b2", "b3"}, {"b3", "b4"}} {
		p.OrderTry(c[0], c[1])
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		p.VisitTopologicalSorts(func([]string) bool {
			n++

			return true
		})
		if n != 70 {
			b.Fatalf("expected 70 sorts, got %d", n)
		}
	}
}
