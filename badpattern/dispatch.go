package badpattern

import "github.com/causalix/causalix/history"

// FindCC runs the necessary checks for Causal Consistency, reporting
// the first violation in check order: ThinAirRead/CyclicCO (during co
// construction), WriteCOInitRead, WriteCORead.
func FindCC(h *history.History) (Verdict, error) {
	_, v, err := findCommon(h)

	return v, err
}

// FindCCv runs the Causal Convergence checks: everything FindCC runs,
// then CyclicCF.
func FindCCv(h *history.History) (Verdict, error) {
	a, v, err := findCommon(h)
	if err != nil || !v.Clean {
		return v, err
	}
	if a.cyclicCF() {
		return bad(CyclicCF), nil
	}

	return clean, nil
}

// FindCM runs the Causal Memory checks: everything FindCC runs, then
// WriteHBInitRead and CyclicHB over the per-process happens-before
// extensions.
func FindCM(h *history.History) (Verdict, error) {
	a, v, err := findCommon(h)
	if err != nil || !v.Clean {
		return v, err
	}

	return a.hbCheck(), nil
}

// findCommon builds co and runs the checks shared by all three
// criteria.
func findCommon(h *history.History) (*analysis, Verdict, error) {
	a, v, err := makeCO(h)
	if err != nil || !v.Clean {
		return nil, v, err
	}
	if a.writeCOInitRead() {
		return nil, bad(WriteCOInitRead), nil
	}
	if a.writeCORead() {
		return nil, bad(WriteCORead), nil
	}

	return a, clean, nil
}
