package check

import (
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/causalix/causalix/history"
	"github.com/causalix/causalix/poset"
)

// criterion selects the search variant shared by the three deciders.
type criterion uint8

const (
	critCC criterion = iota
	critCM
	critCCv
)

// errWitnessFound aborts the parallel group once one refinement
// witnesses the history; it never escapes this package.
var errWitnessFound = errors.New("check: witness found")

// CC decides Causal Consistency: some refinement co of the program
// order explains every operation's observed return through a
// topological sort of that operation's causal past.
func CC(h *history.History, spec history.Specification, opts ...Option) (bool, error) {
	return run(h, spec, critCC, opts)
}

// CM decides Causal Memory: as CC, but each operation's serialization
// must also replay the observed returns of its entire causal past -
// the reader sees its own past coherently.
func CM(h *history.History, spec history.Specification, opts ...Option) (bool, error) {
	return run(h, spec, critCM, opts)
}

// CCv decides Causal Convergence: some refinement co admits one total
// order arb whose per-operation serializations all satisfy the
// specification - a global arbitration of writes.
func CCv(h *history.History, spec history.Specification, opts ...Option) (bool, error) {
	return run(h, spec, critCCv, opts)
}

// run drives the outer refinement search, sequentially or with a
// bounded worker group.
func run(h *history.History, spec history.Specification, crit criterion, opts []Option) (bool, error) {
	// 1. Validate programmer-error inputs.
	if h == nil {
		return false, ErrNilHistory
	}
	if spec == nil {
		return false, ErrNilSpecification
	}

	// 2. Apply options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Parallel path: refinements are independent work items.
	if o.Parallelism > 1 {
		return runParallel(h, spec, crit, o)
	}

	// 4. Sequential path: stream refinements, stop at first witness.
	var (
		ok      bool
		runErr  error
		refIdx  int
		refines = h.Poset()
	)
	refines.VisitRefinements(func(co *poset.Poset) bool {
		// Cooperative cancellation between refinements.
		if err := o.Ctx.Err(); err != nil {
			runErr = err

			return false
		}
		lg := o.Logger.With().Int("refinement", refIdx).Logger()
		refIdx++
		if witness(h, spec, crit, co, lg) {
			ok = true

			return false
		}

		return true
	})

	return ok, runErr
}

// runParallel fans the refinement set out over a bounded errgroup.
// The first witness cancels the remaining workers; the verdict is the
// same as the sequential search because the criteria are commutative
// over the refinement set.
func runParallel(h *history.History, spec history.Specification, crit criterion, o Options) (bool, error) {
	refs := h.Poset().Refinements()

	g, gctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Parallelism)
	for i, co := range refs {
		i, co := i, co
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			lg := o.Logger.With().Int("refinement", i).Logger()
			if witness(h, spec, crit, co, lg) {
				return errWitnessFound
			}

			return nil
		})
	}

	err := g.Wait()
	switch {
	case errors.Is(err, errWitnessFound):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}

// witness reports whether co explains the whole history under the
// given criterion.
func witness(h *history.History, spec history.Specification, crit criterion, co *poset.Poset, lg zerolog.Logger) bool {
	if crit == critCCv {
		return witnessArb(h, spec, co, lg)
	}

	return witnessCausal(h, spec, co, crit == critCM, lg)
}

// witnessCausal implements the CC/CM inner search: every operation
// needs a satisfying topological sort of its causal history. Under CM
// the causal history keeps the returns of the whole past; under CC
// only the focused operation keeps its own.
func witnessCausal(h *history.History, spec history.Specification, co *poset.Poset, keepPast bool, lg zerolog.Logger) bool {
	hc := h.WithOrder(co)
	for _, id := range co.Elements() {
		retain := map[string]struct{}{id: {}}
		if keepPast {
			preds, err := co.Predecessors(id)
			if err != nil {
				return false
			}
			for _, p := range preds {
				retain[p] = struct{}{}
			}
		}
		ch, err := hc.CausalHist(id, retain)
		if err != nil {
			return false
		}

		found := false
		ch.Poset().VisitTopologicalSorts(func(ro []string) bool {
			if history.Satisfies(spec, entriesOf(ch, ro)) {
				lg.Debug().Str("op", id).Strs("serialization", ro).Msg("operation witnessed")
				found = true

				return false
			}

			return true
		})
		if !found {
			lg.Debug().Str("op", id).Msg("no satisfying serialization")

			return false
		}
	}

	return true
}

// witnessArb implements the CCv inner search: one topological sort of
// co must serialize every operation's causal past acceptably.
func witnessArb(h *history.History, spec history.Specification, co *poset.Poset, lg zerolog.Logger) bool {
	hc := h.WithOrder(co)
	elems := co.Elements()

	ok := false
	co.VisitTopologicalSorts(func(arb []string) bool {
		for _, id := range elems {
			log, err := hc.CausalArb(id, arb)
			if err != nil || !history.Satisfies(spec, log) {
				return true // next arbitration
			}
		}
		lg.Debug().Strs("arb", arb).Msg("arbitration witnessed")
		ok = true

		return false
	})

	return ok
}

// entriesOf projects a serialization into the log the specification
// replays.
func entriesOf(h *history.History, ro []string) []history.Entry {
	log := make([]history.Entry, 0, len(ro))
	for _, id := range ro {
		e, _ := h.Label(id)
		log = append(log, e)
	}

	return log
}
