package litmus

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/causalix/causalix/history"
)

// ErrBadConfig indicates a non-positive dimension in GenConfig.
var ErrBadConfig = errors.New("litmus: processes, ops and keys must be positive")

// GenConfig parameterizes Generate.
type GenConfig struct {
	// Processes is the number of client processes.
	Processes int

	// OpsPerProcess is the number of operations each process performs.
	OpsPerProcess int

	// Keys is the number of distinct keys drawn from.
	Keys int

	// ReadBias is the probability in [0, 1] that an operation is a
	// read; the default 0 means an even split.
	ReadBias float64

	// Seed drives the deterministic source; equal configs generate
	// equal histories.
	Seed int64
}

// Generate produces a differentiated history: writes carry globally
// unique values, and each read returns either the value of some
// already generated write of its key or the initial value. The result
// deliberately ranges over consistent and inconsistent executions -
// it is checker food, not a simulation of a correct store.
func Generate(cfg GenConfig) (*history.History, error) {
	if cfg.Processes < 1 || cfg.OpsPerProcess < 1 || cfg.Keys < 1 {
		return nil, ErrBadConfig
	}
	bias := cfg.ReadBias
	if bias <= 0 || bias > 1 {
		bias = 0.5
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	data := make(map[string][]history.Operation, cfg.Processes)
	written := make(map[string][]int) // key → values written so far

	nextVal := 0
	for p := 0; p < cfg.Processes; p++ {
		proc := fmt.Sprintf("p%d", p)
		ops := make([]history.Operation, 0, cfg.OpsPerProcess)
		for i := 0; i < cfg.OpsPerProcess; i++ {
			key := fmt.Sprintf("k%d", rng.Intn(cfg.Keys))
			if rng.Float64() < bias && len(written[key]) > 0 {
				// Read: an existing value of the key, or the initial
				// value one time in len+1.
				vs := written[key]
				if n := rng.Intn(len(vs) + 1); n < len(vs) {
					ops = append(ops, history.Read(key, vs[n]))
				} else {
					ops = append(ops, history.ReadInit(key))
				}

				continue
			}
			// Write: unique values keep the history differentiated.
			nextVal++
			written[key] = append(written[key], nextVal)
			ops = append(ops, history.Write(key, nextVal))
		}
		data[proc] = ops
	}

	return history.New(data)
}
