package poset

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Poset is a strict partial order over a finite set of named elements,
// maintained transitively closed after every successful Order/OrderTry.
//
// Element names are interned to dense indices at construction; pred[i]
// and succ[i] hold the full upward and downward cones of element i as
// roaring bitmaps, so they are simultaneously the adjacency rows of the
// closed relation.
//
// A Poset is not safe for concurrent mutation. Concurrent reads
// (Check, Predecessors, enumeration) are safe once mutation stops.
type Poset struct {
	names []string       // sorted element names; index = dense id
	index map[string]int // name → dense id

	succ []*roaring.Bitmap // succ[i] = all j with i < j in the order
	pred []*roaring.Bitmap // pred[j] = all i with i < j in the order

	// rejected caches packed (a, b) pairs whose ordering was refused
	// for asymmetry. Lazily allocated; never copied to derivations.
	rejected     *roaringPairCache
	rejectedSize int

	fp   uint64 // memoized fingerprint of the edge set
	fpOK bool
}

// roaringPairCache is a thin wrapper over a bounded LRU of packed
// ordered pairs. Kept separate so Clone and Subset can drop it without
// touching the order itself.
type roaringPairCache struct {
	c *lru.Cache[uint64, struct{}]
}

func newPairCache(size int) *roaringPairCache {
	c, err := lru.New[uint64, struct{}](size)
	if err != nil {
		// size is validated at option time; only size < 1 can fail here
		panic(fmt.Sprintf("poset: rejection cache: %v", err))
	}

	return &roaringPairCache{c: c}
}

func (r *roaringPairCache) contains(k uint64) bool { return r != nil && r.c.Contains(k) }
func (r *roaringPairCache) add(k uint64)           { r.c.Add(k, struct{}{}) }

// packPair encodes an ordered index pair as a single cache key.
func packPair(a, b int) uint64 { return uint64(uint32(a))<<32 | uint64(uint32(b)) }

// New creates a Poset over the given elements with the empty order.
// Duplicate names are collapsed; element enumeration order is the
// sorted name order, so construction is deterministic regardless of
// input order.
func New(elements []string, opts ...Option) *Poset {
	// 1. Apply construction options.
	o := defaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 2. Intern: sort and deduplicate names into dense indices.
	names := make([]string, 0, len(elements))
	seen := make(map[string]struct{}, len(elements))
	for _, e := range elements {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		names = append(names, e)
	}
	sort.Strings(names)

	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}

	// 3. Allocate empty cone rows.
	succ := make([]*roaring.Bitmap, len(names))
	pred := make([]*roaring.Bitmap, len(names))
	for i := range names {
		succ[i] = roaring.New()
		pred[i] = roaring.New()
	}

	return &Poset{
		names:        names,
		index:        index,
		succ:         succ,
		pred:         pred,
		rejectedSize: o.rejectionCacheSize,
	}
}

// Len reports the number of elements.
func (p *Poset) Len() int { return len(p.names) }

// Has reports whether name is an element of the poset.
func (p *Poset) Has(name string) bool {
	_, ok := p.index[name]

	return ok
}

// Elements returns the element names in sorted order. The slice is a
// copy and may be retained by the caller.
func (p *Poset) Elements() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)

	return out
}

// Check reports whether a < b in the current order. Unknown names
// yield false.
func (p *Poset) Check(a, b string) bool {
	ia, ok := p.index[a]
	if !ok {
		return false
	}
	ib, ok := p.index[b]
	if !ok {
		return false
	}

	return p.succ[ia].Contains(uint32(ib))
}

// Predecessors returns every element strictly below node, sorted.
func (p *Poset) Predecessors(node string) ([]string, error) {
	i, ok := p.index[node]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, node)
	}

	return p.namesOf(p.pred[i]), nil
}

// Successors returns every element strictly above node, sorted.
func (p *Poset) Successors(node string) ([]string, error) {
	i, ok := p.index[node]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, node)
	}

	return p.namesOf(p.succ[i]), nil
}

// Between returns every element u with a < u < b, sorted. It is the
// intersection of a's successor cone with b's predecessor cone.
func (p *Poset) Between(a, b string) ([]string, error) {
	ia, ok := p.index[a]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, a)
	}
	ib, ok := p.index[b]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, b)
	}

	return p.namesOf(roaring.And(p.succ[ia], p.pred[ib])), nil
}

// namesOf maps a bitmap of dense indices back to sorted names.
// Indices ascend, and names were sorted at interning time, so the
// result is sorted by construction.
func (p *Poset) namesOf(bm *roaring.Bitmap) []string {
	out := make([]string, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, p.names[it.Next()])
	}

	return out
}

// Link inserts the single edge a → b without an asymmetry check and
// without re-closing the order. It is intended for constructing
// derived orders whose validity is established afterwards via Close.
func (p *Poset) Link(a, b string) error {
	ia, ok := p.index[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrElementNotFound, a)
	}
	ib, ok := p.index[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrElementNotFound, b)
	}
	if ia == ib {
		return fmt.Errorf("%w: %q", ErrSelfOrder, a)
	}

	p.succ[ia].Add(uint32(ib))
	p.pred[ib].Add(uint32(ia))
	p.fpOK = false

	return nil
}

// Order attempts to add a < b together with its transitive
// consequences. It fails with ErrAsymmetry (and leaves the order
// unchanged) if b ≤ a already holds. Intended for one-shot external
// callers; the search hot path uses OrderTry.
func (p *Poset) Order(a, b string) error {
	ia, ok := p.index[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrElementNotFound, a)
	}
	ib, ok := p.index[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrElementNotFound, b)
	}
	if !p.orderIdx(ia, ib) {
		return fmt.Errorf("%w: %s < %s", ErrAsymmetry, a, b)
	}

	return nil
}

// OrderTry attempts to add a < b and its transitive consequences.
// It reports false - with no mutation - if the ordering would violate
// asymmetry or if either name is unknown. It never allocates an error,
// which matters inside the refinement search.
func (p *Poset) OrderTry(a, b string) bool {
	ia, ok := p.index[a]
	if !ok {
		return false
	}
	ib, ok := p.index[b]
	if !ok {
		return false
	}

	return p.orderIdx(ia, ib)
}

// orderIdx implements Order/OrderTry on dense indices.
//
// On success it adds, for every u ∈ pred(a)∪{a} and v ∈ succ(b)∪{b},
// the edge u → v; the order stays transitively closed, so Check
// remains a single lookup.
func (p *Poset) orderIdx(ia, ib int) bool {
	// 1. Rejection cache probe (a pair this instance already refused).
	key := packPair(ia, ib)
	if p.rejected.contains(key) {
		return false
	}

	// 2. Asymmetry test: pred(a)∪{a} must not meet succ(b)∪{b}.
	//    ia == ib is covered, since then ia is in both cones.
	ps := p.pred[ia].Clone()
	ps.Add(uint32(ia))
	ss := p.succ[ib].Clone()
	ss.Add(uint32(ib))
	if ps.Intersects(ss) {
		if p.rejected == nil {
			p.rejected = newPairCache(p.rejectedSize)
		}
		p.rejected.add(key)

		return false
	}

	// 3. Closure update: every upstream element gains the downstream
	//    cone, and vice versa. The cones are disjoint, so no self-loop
	//    can be introduced.
	it := ps.Iterator()
	for it.HasNext() {
		p.succ[it.Next()].Or(ss)
	}
	it = ss.Iterator()
	for it.HasNext() {
		p.pred[it.Next()].Or(ps)
	}
	p.fpOK = false

	return true
}

// Clone returns an independent deep copy of the order. The asymmetry
// rejection cache is not carried over.
func (p *Poset) Clone() *Poset {
	succ := make([]*roaring.Bitmap, len(p.succ))
	pred := make([]*roaring.Bitmap, len(p.pred))
	for i := range p.succ {
		succ[i] = p.succ[i].Clone()
		pred[i] = p.pred[i].Clone()
	}

	return &Poset{
		names:        p.names, // interning is immutable; share it
		index:        p.index,
		succ:         succ,
		pred:         pred,
		rejectedSize: p.rejectedSize,
		fp:           p.fp,
		fpOK:         p.fpOK,
	}
}

// Subset returns the induced sub-poset on keep: the kept elements with
// every edge whose endpoints both survive. The rejection cache is
// reset - it is stale relative to the restricted element set.
func (p *Poset) Subset(keep []string) (*Poset, error) {
	s := New(keep, WithRejectionCacheSize(p.rejectedSize))
	for _, n := range s.names {
		if _, ok := p.index[n]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrElementNotFound, n)
		}
	}

	// Restrict each surviving row to the surviving columns.
	var oi, oj int
	for ni, n := range s.names {
		oi = p.index[n]
		it := p.succ[oi].Iterator()
		for it.HasNext() {
			oj = int(it.Next())
			if nj, ok := s.index[p.names[oj]]; ok {
				s.succ[ni].Add(uint32(nj))
				s.pred[nj].Add(uint32(ni))
			}
		}
	}

	return s, nil
}

// Equal reports structural equality: same element names and the same
// edge set.
func (p *Poset) Equal(o *Poset) bool {
	if p == o {
		return true
	}
	if o == nil || len(p.names) != len(o.names) {
		return false
	}
	for i, n := range p.names {
		if o.names[i] != n {
			return false
		}
	}
	for i := range p.succ {
		if !p.succ[i].Equals(o.succ[i]) {
			return false
		}
	}

	return true
}

// Fingerprint returns a 64-bit digest of the element names and edge
// set, memoized until the next mutation. Equal posets have equal
// fingerprints, so the digest serves as the bucket key for dedup sets;
// collisions must be resolved by Equal.
func (p *Poset) Fingerprint() uint64 {
	if p.fpOK {
		return p.fp
	}

	d := xxhash.New()
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], uint64(len(p.names)))
	_, _ = d.Write(word[:])
	for _, n := range p.names {
		_, _ = d.WriteString(n)
		_, _ = d.Write([]byte{0})
	}
	for i := range p.succ {
		binary.LittleEndian.PutUint64(word[:], ^uint64(i))
		_, _ = d.Write(word[:])
		it := p.succ[i].Iterator()
		for it.HasNext() {
			binary.LittleEndian.PutUint64(word[:], uint64(it.Next()))
			_, _ = d.Write(word[:])
		}
	}
	p.fp = d.Sum64()
	p.fpOK = true

	return p.fp
}

// EdgeCount reports the number of ordered pairs currently related.
func (p *Poset) EdgeCount() int {
	var n uint64
	for i := range p.succ {
		n += p.succ[i].GetCardinality()
	}

	return int(n)
}

// Close verifies that the linked edges form a DAG and re-establishes
// transitive closure, rebuilding the predecessor rows. It is the
// companion of Link: derive an order with raw edges, then Close once.
// Returns ErrCycleDetected on a cycle; the linked edges are then left
// as they were, unclosed.
func (p *Poset) Close() error {
	// 1. Three-color DFS for cycle detection, collecting finish order.
	const (
		white = iota // unvisited
		gray         // on the recursion stack
		black        // fully explored
	)
	n := len(p.names)
	state := make([]uint8, n)
	finish := make([]int, 0, n)

	// Iterative DFS; frame.next tracks progress through the row.
	type frame struct {
		node int
		row  []uint32
		next int
	}
	var stack []frame
	for root := 0; root < n; root++ {
		if state[root] != white {
			continue
		}
		state[root] = gray
		stack = append(stack[:0], frame{node: root, row: p.succ[root].ToArray()})
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next < len(f.row) {
				w := int(f.row[f.next])
				f.next++
				switch state[w] {
				case gray:
					return fmt.Errorf("%w: via %s", ErrCycleDetected, p.names[w])
				case white:
					state[w] = gray
					stack = append(stack, frame{node: w, row: p.succ[w].ToArray()})
				}

				continue
			}
			state[f.node] = black
			finish = append(finish, f.node)
			stack = stack[:len(stack)-1]
		}
	}

	// 2. Fold rows in finish order: every direct successor finished
	//    earlier, so its row is already closed when we absorb it.
	for _, v := range finish {
		for _, w := range p.succ[v].ToArray() {
			p.succ[v].Or(p.succ[w])
		}
	}

	// 3. Rebuild predecessor rows from the closed successor rows.
	for j := range p.pred {
		p.pred[j].Clear()
	}
	for i := range p.succ {
		it := p.succ[i].Iterator()
		for it.HasNext() {
			p.pred[it.Next()].Add(uint32(i))
		}
	}

	// 4. Closure changed the edge set: drop memoized state.
	p.fpOK = false
	p.rejected = nil

	return nil
}
