package history

import (
	"fmt"
	"sort"

	"github.com/causalix/causalix/poset"
)

// History is a recorded execution: the set of operation identifiers,
// their labels, and the program-order poset. Construct with New, then
// derive with WithOrder, CausalHist, or CausalArb; a History is never
// mutated in place.
type History struct {
	ids    []string         // all identifiers, sorted
	label  map[string]Entry // identifier → labeled operation
	procOf map[string]string
	procs  []string // process names, sorted
	po     *poset.Poset
}

// New builds a History from per-process operation lists. Identifiers
// are "{process}.{index}", one-indexed in list order; consecutive
// operations of each process are related in the program order.
func New(data map[string][]Operation) (*History, error) {
	// 1. Deterministic process iteration.
	procs := make([]string, 0, len(data))
	for p := range data {
		if p == "" {
			return nil, ErrEmptyProcess
		}
		procs = append(procs, p)
	}
	sort.Strings(procs)

	// 2. Assign identifiers and labels.
	h := &History{
		label:  make(map[string]Entry),
		procOf: make(map[string]string),
		procs:  procs,
	}
	for _, p := range procs {
		for i, op := range data[p] {
			id := opID(p, i+1)
			h.ids = append(h.ids, id)
			h.label[id] = Entry{Op: op, Verify: true}
			h.procOf[id] = p
		}
	}
	if len(h.ids) == 0 {
		return nil, ErrNoOperations
	}
	sort.Strings(h.ids)

	// 3. Program order: chain each process's operations.
	h.po = poset.New(h.ids)
	for _, p := range procs {
		for i := 1; i < len(data[p]); i++ {
			// Fresh chains over distinct elements cannot violate
			// asymmetry; Order is used for its error on misuse.
			if err := h.po.Order(opID(p, i), opID(p, i+1)); err != nil {
				return nil, fmt.Errorf("history: program order: %w", err)
			}
		}
	}

	return h, nil
}

// opID formats the stable identifier of operation i (one-indexed) of
// process p.
func opID(p string, i int) string { return fmt.Sprintf("%s.%d", p, i) }

// Operations returns all identifiers in sorted order. The slice is a
// copy.
func (h *History) Operations() []string {
	out := make([]string, len(h.ids))
	copy(out, h.ids)

	return out
}

// Label returns the labeled entry of id.
func (h *History) Label(id string) (Entry, bool) {
	e, ok := h.label[id]

	return e, ok
}

// Processes returns the process names in sorted order.
func (h *History) Processes() []string {
	out := make([]string, len(h.procs))
	copy(out, h.procs)

	return out
}

// Process returns the process an identifier belongs to.
func (h *History) Process(id string) (string, bool) {
	p, ok := h.procOf[id]

	return p, ok
}

// Poset returns the history's order. The pointer is shared: treat it
// as read-only and derive via WithOrder instead of mutating.
func (h *History) Poset() *poset.Poset {
	return h.po
}

// WithOrder returns a shallow derivation of h whose order is co -
// typically a causal-order refinement of the program order produced
// by the poset engine. Labels and identifiers are shared.
func (h *History) WithOrder(co *poset.Poset) *History {
	d := *h
	d.po = co

	return &d
}

// CausalHist returns the sub-history on the causal past of id
// (predecessors plus id itself). Labels outside retain lose their
// observed return and verification; labels inside keep both.
func (h *History) CausalHist(id string, retain map[string]struct{}) (*History, error) {
	if _, ok := h.label[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, id)
	}
	preds, err := h.po.Predecessors(id)
	if err != nil {
		return nil, fmt.Errorf("history: causal past: %w", err)
	}
	keep := append(preds, id)

	sub, err := h.po.Subset(keep)
	if err != nil {
		return nil, fmt.Errorf("history: causal past: %w", err)
	}

	d := &History{
		ids:    keep,
		label:  make(map[string]Entry, len(keep)),
		procOf: make(map[string]string, len(keep)),
		procs:  h.procs,
		po:     sub,
	}
	sort.Strings(d.ids)
	for _, k := range keep {
		e := h.label[k]
		if _, ok := retain[k]; !ok {
			e.Op.Ret = nil
			e.Verify = false
		}
		d.label[k] = e
		d.procOf[k] = h.procOf[k]
	}

	return d, nil
}

// CausalArb serializes the causal past of id along arb, a total order
// over the history's operations. The result lists the causal
// predecessors of id in arb order, truncated at id: every entry is
// demoted to an unverified instruction except id itself, which keeps
// its observed return.
func (h *History) CausalArb(id string, arb []string) ([]Entry, error) {
	if _, ok := h.label[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, id)
	}
	preds, err := h.po.Predecessors(id)
	if err != nil {
		return nil, fmt.Errorf("history: causal past: %w", err)
	}
	past := make(map[string]struct{}, len(preds)+1)
	for _, p := range preds {
		past[p] = struct{}{}
	}
	past[id] = struct{}{}

	var log []Entry
	for _, o := range arb {
		if _, ok := past[o]; !ok {
			continue
		}
		e := h.label[o]
		if o == id {
			log = append(log, e)

			// arb extends the causal order, so nothing past id can
			// precede it causally.
			return log, nil
		}
		e.Op.Ret = nil
		e.Verify = false
		log = append(log, e)
	}

	return nil, fmt.Errorf("%w: %q not in serialization", ErrOperationNotFound, id)
}
