package litmus

import (
	"fmt"

	"github.com/causalix/causalix/history"
)

// mustHistory builds a fixture; the named histories are static and
// known valid, so a construction failure is a bug here, not input.
func mustHistory(data map[string][]history.Operation) *history.History {
	h, err := history.New(data)
	if err != nil {
		panic(fmt.Sprintf("litmus: bad fixture: %v", err))
	}

	return h
}

// Ha is the two-process exchange: each process writes x and reads the
// other's value. CC and CM hold; CCv fails (CyclicCF) - no single
// total order of the writes explains both reads.
func Ha() *history.History {
	return mustHistory(map[string][]history.Operation{
		"a": {history.Write("x", 1), history.Read("x", 2)},
		"b": {history.Write("x", 2), history.Read("x", 1)},
	})
}

// Hb separates CM from CCv: process b overwrites x, then reads z as
// initial, y=1, and its own x=2 - coherent under one arbitration but
// not against b's own past.
func Hb() *history.History {
	return mustHistory(map[string][]history.Operation{
		"a": {history.Write("z", 1), history.Write("x", 1), history.Write("y", 1)},
		"b": {history.Write("x", 2), history.ReadInit("z"), history.Read("y", 1), history.Read("x", 2)},
	})
}

// Hc fails both CM and CCv: process b writes x=2, then reads x=1
// followed by its own x=2 again.
func Hc() *history.History {
	return mustHistory(map[string][]history.Operation{
		"a": {history.Write("x", 1)},
		"b": {history.Write("x", 2), history.Read("x", 1), history.Read("x", 2)},
	})
}

// Hd is the symmetric independent pair: each process writes its key,
// misses the other's, and reads back its own. All three criteria hold.
func Hd() *history.History {
	return mustHistory(map[string][]history.Operation{
		"a": {history.Write("x", 1), history.ReadInit("y"), history.Write("y", 2), history.Read("x", 1)},
		"b": {history.Write("y", 1), history.ReadInit("x"), history.Write("x", 2), history.Read("y", 1)},
	})
}

// He fails every criterion: c reads x=2 (which causally follows
// wr(x,1) through b) and then the stale x=1 - a WriteCORead.
func He() *history.History {
	return mustHistory(map[string][]history.Operation{
		"a": {history.Write("x", 1), history.Write("y", 1)},
		"b": {history.Read("y", 1), history.Write("x", 2)},
		"c": {history.Read("x", 2), history.Read("x", 1)},
	})
}

// ThinAir reads y=1, a value no write produced.
func ThinAir() *history.History {
	return mustHistory(map[string][]history.Operation{
		"a": {history.Write("x", 1), history.Read("x", 2)},
		"b": {history.Write("x", 2), history.Read("y", 1)},
	})
}

// CyclicCO reads x=1 before it is written in the same process while b
// reads its own write: the wr edges close a cycle with program order.
func CyclicCO() *history.History {
	return mustHistory(map[string][]history.Operation{
		"a": {history.Read("x", 1), history.Write("x", 1)},
		"b": {history.Write("x", 2), history.Read("x", 2)},
	})
}
