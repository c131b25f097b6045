// Package common provides the column low-degree-extension step shared by the
// prover and verifier: validating a batch's shape and inverse-FFT-ing each
// input column into coefficient form on a size-C radix-2 domain.
package common

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/bace"
	"github.com/nume-crypto/bace/domain"
	"github.com/nume-crypto/bace/internal/parallel"
)

// minWorkPerCPU below which ComputeColumnLDE's per-column IFFT loop runs
// serially. Each unit of work here is a full IFFT over columnSize elements,
// not a single field op, so the threshold is much lower than naive's or
// prover's per-element loops.
const minWorkPerCPU = 4

// GetInputSize returns the shared input length of every row in batch, or the
// sentinel 0 if the batch is empty or its rows disagree in length.
func GetInputSize(batch bace.InputBatch) uint64 {
	if len(batch) == 0 {
		return 0
	}
	n := len(batch[0])
	for _, row := range batch {
		if len(row) != n {
			return 0
		}
	}
	return uint64(n)
}

// ComputeColumnLDE builds the n x columnSize column low-degree extension of
// batch: column i is the length-B vector (batch[0][i], ..., batch[B-1][i]),
// zero-padded to columnSize and inverse-FFT'd in place over the size-
// columnSize radix-2 domain, so row i holds the coefficient form of the
// unique degree-<columnSize polynomial interpolating column i.
func ComputeColumnLDE(batch bace.InputBatch, columnSize uint64) ([][]fr.Element, error) {
	if len(batch) == 0 {
		return nil, bace.ErrEmptyBatch
	}
	n := len(batch[0])
	for _, row := range batch {
		if len(row) != n {
			return nil, bace.ErrInputSizeMismatch
		}
	}

	d, err := domain.GetEvaluationDomain(columnSize)
	if err != nil {
		return nil, err
	}

	rows := make([][]fr.Element, n)
	parallel.Range(n, minWorkPerCPU, func(start, end int) {
		for col := start; col < end; col++ {
			row := make([]fr.Element, columnSize)
			for b, input := range batch {
				row[b] = input[col]
			}
			d.IFFT(row)
			rows[col] = row
		}
	})
	return rows, nil
}
