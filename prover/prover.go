// Package prover implements the BACE prover: given a circuit and a batch of
// inputs, it lifts the batch into a column low-degree extension on the large
// evaluation domain, re-evaluates the circuit pointwise there, and
// inverse-FFTs the result back into coefficient form.
package prover

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/bace"
	"github.com/nume-crypto/bace/bacelog"
	"github.com/nume-crypto/bace/circuit"
	"github.com/nume-crypto/bace/common"
	"github.com/nume-crypto/bace/domain"
	"github.com/nume-crypto/bace/internal/parallel"
)

// minWorkPerCPU below which Prove's pointwise evaluation loop runs serially
// rather than paying for goroutine dispatch.
const minWorkPerCPU = 64

// columnMinWorkPerCPU below which Prove's per-column zero-extend-and-FFT loop
// runs serially. Each unit of work is a full FFT over l elements, so the
// threshold is much lower than minWorkPerCPU's per-element one.
const columnMinWorkPerCPU = 4

// Prove evaluates k on every row of batch, returning the length-L proof
// polynomial in coefficient form. See SPEC_FULL.md §4.4 for the algorithm.
func Prove(k *circuit.Circuit, batch bace.InputBatch) (bace.Proof, error) {
	n := common.GetInputSize(batch)
	if n == 0 {
		return nil, bace.ErrInputSizeMismatch
	}
	if uint32(n) != k.NumInputs() {
		return nil, bace.ErrCircuitInputMismatch
	}
	if k.Size() == k.NumInputs() {
		return nil, bace.ErrEmptyCircuit
	}

	c := domain.GetColumnSize(uint64(len(batch)))
	l := domain.GetLargeDegree(c, k.Degree())

	large, err := domain.GetEvaluationDomain(l)
	if err != nil {
		return nil, err
	}

	log := bacelog.L().With().Uint64("batchSize", uint64(len(batch))).Uint64("n", n).
		Uint64("columnSize", c).Uint64("largeDegree", l).Logger()
	log.Debug().Msg("prover: starting")

	rows, err := common.ComputeColumnLDE(batch, c)
	if err != nil {
		return nil, err
	}
	parallel.Range(len(rows), columnMinWorkPerCPU, func(start, end int) {
		for i := start; i < end; i++ {
			extended := make([]fr.Element, l)
			copy(extended, rows[i])
			large.FFT(extended)
			rows[i] = extended
		}
	})

	proof := make(bace.Proof, l)
	parallelEvaluate(k, rows, proof, n)

	large.IFFT(proof)

	log.Debug().Msg("prover: done")
	return proof, nil
}

func parallelEvaluate(k *circuit.Circuit, rows [][]fr.Element, proof bace.Proof, n uint64) {
	parallel.Range(len(proof), minWorkPerCPU, func(start, end int) {
		x := make(bace.Input, n)
		for idx := start; idx < end; idx++ {
			for col := range rows {
				x[col] = rows[col][idx]
			}
			v, err := k.Evaluate(x)
			if err != nil {
				// x always has length n == k.NumInputs(); the only remaining
				// failure is an empty circuit, which Prove rejects with
				// ErrEmptyCircuit before calling this.
				panic(err)
			}
			proof[idx] = v
		}
	})
}
