package serialize

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/bace"
	"github.com/nume-crypto/bace/circuit"
)

func elem(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func TestProofRoundTrip(t *testing.T) {
	assert := require.New(t)

	p := bace.Proof{elem(1), elem(2), elem(3)}

	var buf bytes.Buffer
	assert.NoError(EncodeProof(&buf, p))

	got, err := DecodeProof(&buf)
	assert.NoError(err)
	assert.Len(got, len(p))
	for i := range p {
		assert.True(got[i].Equal(&p[i]))
	}
}

func TestInputBatchRoundTrip(t *testing.T) {
	assert := require.New(t)

	batch := bace.InputBatch{
		{elem(1), elem(2)},
		{elem(3), elem(4)},
	}

	var buf bytes.Buffer
	assert.NoError(EncodeInputBatch(&buf, batch))

	got, err := DecodeInputBatch(&buf)
	assert.NoError(err)
	assert.Len(got, len(batch))
	for i := range batch {
		for j := range batch[i] {
			assert.True(got[i][j].Equal(&batch[i][j]))
		}
	}
}

func TestCircuitRoundTrip(t *testing.T) {
	assert := require.New(t)

	c := circuit.New(4)
	c.AddQuadraticInnerProductGates()

	var buf bytes.Buffer
	assert.NoError(EncodeCircuit(&buf, c))

	got, err := DecodeCircuit(&buf)
	assert.NoError(err)
	assert.Equal(c.NumInputs(), got.NumInputs())
	assert.Equal(c.Size(), got.Size())
	assert.Equal(c.Degree(), got.Degree())

	in := bace.Input{elem(2), elem(7), elem(6), elem(2)}
	want, err := c.Evaluate(in)
	assert.NoError(err)
	gotVal, err := got.Evaluate(in)
	assert.NoError(err)
	assert.True(want.Equal(&gotVal))
}

func TestCircuitRoundTripWithConstants(t *testing.T) {
	assert := require.New(t)

	c := circuit.New(2)
	five := elem(5)
	_, err := c.AddGate(circuit.Gate{
		Type:   circuit.GateSum,
		Inputs: []circuit.InputElement{circuit.Variable(1), circuit.Constant(five)},
	})
	assert.NoError(err)

	var buf bytes.Buffer
	assert.NoError(EncodeCircuit(&buf, c))

	got, err := DecodeCircuit(&buf)
	assert.NoError(err)

	in := bace.Input{elem(10), elem(0)}
	want, err := c.Evaluate(in)
	assert.NoError(err)
	gotVal, err := got.Evaluate(in)
	assert.NoError(err)
	assert.True(want.Equal(&gotVal))
}
