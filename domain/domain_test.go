package domain

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/bace"
)

// S6 from the scenario table: column sizing and embedded-index arithmetic.
func TestScenarioS6(t *testing.T) {
	assert := require.New(t)

	assert.Equal(uint64(1), GetColumnSize(1))
	assert.Equal(uint64(8), GetColumnSize(5))
	assert.Equal(uint64(12), GetEmbeddedIndex(3, 4, 16))
}

func TestPrevPowerOfTwo(t *testing.T) {
	assert := require.New(t)

	assert.Equal(uint32(0), PrevPowerOfTwo(0))
	assert.Equal(uint32(1), PrevPowerOfTwo(1))
	assert.Equal(uint32(4), PrevPowerOfTwo(4))
	assert.Equal(uint32(4), PrevPowerOfTwo(7))
	assert.Equal(uint32(8), PrevPowerOfTwo(8))
}

func TestGetLargeDegree(t *testing.T) {
	assert := require.New(t)

	assert.Equal(uint64(1), GetLargeDegree(8, 0)) // nextPow2(0) == 1 by convention
	assert.Equal(uint64(16), GetLargeDegree(8, 2))
	assert.Equal(uint64(32), GetLargeDegree(8, 3))
}

// Property #6: the small domain's i-th sample equals the large domain's
// get_embedded_index(i, C, L)-th sample.
func TestEmbeddingIdentity(t *testing.T) {
	assert := require.New(t)

	const c, l = 4, 16
	small, err := GetEvaluationDomain(c)
	assert.NoError(err)
	large, err := GetEvaluationDomain(l)
	assert.NoError(err)

	for i := uint64(0); i < c; i++ {
		var si, li fr.Element
		si.Exp(small.inner.Generator, big.NewInt(int64(i)))
		li.Exp(large.inner.Generator, big.NewInt(int64(GetEmbeddedIndex(i, c, l))))
		assert.True(si.Equal(&li), "index %d", i)
	}
}

// Property #7: inverse-FFT then forward-FFT recovers the original samples —
// exercised here directly on Domain, and via common.ComputeColumnLDE's own
// round-trip test in package common.
func TestFFTRoundTrip(t *testing.T) {
	assert := require.New(t)

	const size = 8
	d, err := GetEvaluationDomain(size)
	assert.NoError(err)

	vec := make([]fr.Element, size)
	for i := range vec {
		vec[i].SetUint64(uint64(i) + 1)
	}
	original := append([]fr.Element(nil), vec...)

	d.IFFT(vec)
	d.FFT(vec)

	for i := range vec {
		assert.True(vec[i].Equal(&original[i]))
	}
}

func TestEvaluatePolynomial(t *testing.T) {
	assert := require.New(t)

	// p(x) = 1 + 2x + 3x^2
	coeffs := make([]fr.Element, 3)
	coeffs[0].SetUint64(1)
	coeffs[1].SetUint64(2)
	coeffs[2].SetUint64(3)

	var point fr.Element
	point.SetUint64(2)

	got := EvaluatePolynomial(3, coeffs, point)

	var want fr.Element
	want.SetUint64(1 + 2*2 + 3*4)
	assert.True(got.Equal(&want))
}

func TestDomainUnsupported(t *testing.T) {
	assert := require.New(t)

	_, err := GetEvaluationDomain(0)
	assert.ErrorIs(err, bace.ErrDomainUnsupported)

	_, err = GetEvaluationDomain(3)
	assert.ErrorIs(err, bace.ErrDomainUnsupported)
}
