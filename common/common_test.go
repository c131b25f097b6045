package common

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/bace"
	"github.com/nume-crypto/bace/domain"
)

func elem(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func TestGetInputSize(t *testing.T) {
	assert := require.New(t)

	assert.EqualValues(0, GetInputSize(nil))

	batch := bace.InputBatch{{elem(1), elem(2)}, {elem(3), elem(4)}}
	assert.EqualValues(2, GetInputSize(batch))

	mismatched := bace.InputBatch{{elem(1), elem(2)}, {elem(3)}}
	assert.EqualValues(0, GetInputSize(mismatched))
}

// Property #7: forward-FFT-ing the rows of ComputeColumnLDE recovers each
// column of the batch, zero-padded to C.
func TestColumnLDERoundTrip(t *testing.T) {
	assert := require.New(t)

	batch := bace.InputBatch{
		{elem(2), elem(30)},
		{elem(7), elem(40)},
		{elem(6), elem(50)},
	}
	const columnSize = 4

	rows, err := ComputeColumnLDE(batch, columnSize)
	assert.NoError(err)
	assert.Len(rows, 2)

	d, err := domain.GetEvaluationDomain(columnSize)
	assert.NoError(err)

	for col, row := range rows {
		got := append([]fr.Element(nil), row...)
		d.FFT(got)
		for b := 0; b < len(batch); b++ {
			assert.True(got[b].Equal(&batch[b][col]), "col %d row %d", col, b)
		}
		for b := len(batch); b < columnSize; b++ {
			assert.True(got[b].IsZero(), "col %d row %d should be zero-padded", col, b)
		}
	}
}

func TestComputeColumnLDERejectsMismatchedRows(t *testing.T) {
	batch := bace.InputBatch{{elem(1), elem(2)}, {elem(3)}}
	_, err := ComputeColumnLDE(batch, 4)
	require.ErrorIs(t, err, bace.ErrInputSizeMismatch)
}

func TestComputeColumnLDERejectsEmptyBatch(t *testing.T) {
	_, err := ComputeColumnLDE(nil, 4)
	require.ErrorIs(t, err, bace.ErrEmptyBatch)
}
