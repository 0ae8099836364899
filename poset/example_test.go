package poset_test

import (
	"fmt"

	"github.com/causalix/causalix/poset"
)

// ExamplePoset_OrderTry demonstrates incremental ordering with the
// closure maintained after every accepted pair.
func ExamplePoset_OrderTry() {
	p := poset.New([]string{"a1", "b1", "b2", "b3"})
	fmt.Println(p.OrderTry("b1", "b2"), p.OrderTry("b2", "b3"))
	fmt.Println(p.Check("b1", "b3")) // implied transitively
	fmt.Println(p.OrderTry("b3", "b1"))
	// Output:
	// true true
	// true
	// false
}

// ExamplePoset_Refinements counts the strict partial orders extending
// a fixed chain with one free element.
func ExamplePoset_Refinements() {
	p := poset.New([]string{"a1", "b1", "b2", "b3"})
	_ = p.OrderTry("b1", "b2")
	_ = p.OrderTry("b2", "b3")
	fmt.Println(len(p.Refinements()))
	// Output:
	// 10
}

// ExamplePoset_AllTopologicalSorts lists the linear extensions of a
// small order.
func ExamplePoset_AllTopologicalSorts() {
	p := poset.New([]string{"a1", "b1", "b2"})
	_ = p.OrderTry("b1", "b2")
	_ = p.OrderTry("a1", "b2")
	for _, s := range p.AllTopologicalSorts() {
		fmt.Println(s)
	}
	// Output:
	// [a1 b1 b2]
	// [b1 a1 b2]
}
