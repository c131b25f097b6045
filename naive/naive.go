// Package naive implements the reference oracle BACE's property and scenario
// tests check the prover/verifier pair against: evaluate k independently on
// every row of batch.
package naive

import (
	"github.com/nume-crypto/bace"
	"github.com/nume-crypto/bace/circuit"
	"github.com/nume-crypto/bace/internal/parallel"
)

// minWorkPerCPU below which Evaluate's per-row loop runs serially.
const minWorkPerCPU = 16

// Evaluate returns an OutputBatch whose i-th entry is k.Evaluate(batch[i]).
func Evaluate(k *circuit.Circuit, batch bace.InputBatch) (bace.OutputBatch, error) {
	if len(batch) == 0 {
		return nil, bace.ErrInputSizeMismatch
	}

	out := make(bace.OutputBatch, len(batch))
	errs := make([]error, len(batch))
	parallel.Range(len(batch), minWorkPerCPU, func(start, end int) {
		for i := start; i < end; i++ {
			v, err := k.Evaluate(batch[i])
			if err != nil {
				errs[i] = err
				continue
			}
			out[i] = v
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
