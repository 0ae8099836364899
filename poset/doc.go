// Package poset implements a mutable, transitively-closed strict
// partial order over a finite set of string-named elements, together
// with the two enumerations the consistency checkers are built on:
// refinements (every strict partial order extending the current one)
// and topological sorts (every total order consistent with it).
//
// Key features:
//   - Order / OrderTry: incremental ordering with an asymmetry check;
//     every successful insertion re-establishes transitive closure, so
//     Check is a single bitmap lookup afterwards
//   - Link + Close: unchecked edge insertion for derived orders, with
//     cycle detection and one-shot transitive closure
//   - Subset, Clone: independent derivations (the rejection cache is
//     never carried over - it is stale relative to a new edge set)
//   - Equal / Fingerprint: value semantics by graph shape, so posets
//     can be deduplicated in sets during the refinement search
//   - Refinements / VisitRefinements, AllTopologicalSorts /
//     VisitTopologicalSorts: materializing and streaming enumeration
//   - WriteDOT: Graphviz export for debugging
//
// Representation: element names are interned to dense indices at
// construction; each element carries its predecessor and successor
// cones as roaring bitmaps. Because the order is kept closed, the
// cones double as the adjacency rows, and the asymmetry test for
// OrderTry(a, b) is a single bitmap intersection of pred(a)∪{a} with
// succ(b)∪{b}. Rejected pairs are remembered per instance in a bounded
// LRU cache, so repeating a refused ordering on the same poset skips
// the cone test; posets derived by Clone or Subset start without it.
//
// Complexity:
//
//   - OrderTry: O(V²/w) worst case for the cone union (w = machine
//     word via the bitmap containers), amortized far lower
//   - Check:    O(1) bitmap membership
//   - Refinements: super-exponential in the number of unordered pairs;
//     correctness over speed, with dedup and connected-pair pruning
//
// Errors:
//
//   - ErrElementNotFound  - an operand names no element of the poset
//   - ErrSelfOrder        - attempt to Link an element to itself
//   - ErrAsymmetry        - ordering would create a two-way relation
//   - ErrCycleDetected    - Close found a cycle among linked edges
package poset
