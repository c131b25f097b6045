// Package verifier implements the BACE verifier: it spot-checks a prover's
// proof at one random field element and, on acceptance, recovers the B
// outputs by forward-FFT-ing the proof and reading its embedded indices.
package verifier

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/bace"
	"github.com/nume-crypto/bace/bacelog"
	"github.com/nume-crypto/bace/circuit"
	"github.com/nume-crypto/bace/common"
	"github.com/nume-crypto/bace/domain"
)

// Verify checks proof against k and batch, returning the recovered output
// batch on acceptance or an empty, non-nil OutputBatch (with a nil error) on
// rejection. See SPEC_FULL.md §4.5 for the algorithm.
func Verify(k *circuit.Circuit, batch bace.InputBatch, proof bace.Proof) (bace.OutputBatch, error) {
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

	b := uint64(len(batch))
	c := domain.GetColumnSize(b)
	l := domain.GetLargeDegree(c, k.Degree())

	large, err := domain.GetEvaluationDomain(l)
	if err != nil {
		return nil, err
	}
	if uint64(len(proof)) != l {
		return nil, bace.ErrInputSizeMismatch
	}

	log := bacelog.L().With().Uint64("batchSize", b).Uint64("n", n).
		Uint64("columnSize", c).Uint64("largeDegree", l).Logger()
	log.Debug().Msg("verifier: starting")

	colLDE, err := common.ComputeColumnLDE(batch, c)
	if err != nil {
		return nil, err
	}

	var r fr.Element
	if _, err := r.SetRandom(); err != nil {
		return nil, err
	}

	u := make(bace.Input, n)
	for i, row := range colLDE {
		u[i] = domain.EvaluatePolynomial(int(c), row, r)
	}

	vMine, err := k.Evaluate(u)
	if err != nil {
		return nil, err
	}
	vProof := domain.EvaluatePolynomial(int(l), proof, r)

	if !vMine.Equal(&vProof) {
		log.Warn().Msg("verifier: rejected")
		return bace.OutputBatch{}, nil
	}

	output := make(bace.OutputBatch, l)
	copy(output, proof)
	large.FFT(output)
	for i := uint64(0); i < b; i++ {
		output[i] = output[domain.GetEmbeddedIndex(i, c, l)]
	}
	output = output[:b]

	log.Debug().Msg("verifier: accepted")
	return output, nil
}
