// Package domain provides the radix-2 evaluation-domain sizing and
// small-in-large embedding arithmetic the prover and verifier share, plus a
// thin wrapper around gnark-crypto's fft.Domain that hides its
// decimation/bit-reversal bookkeeping behind plain coefficients-in,
// evaluations-out calls.
package domain

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/nume-crypto/bace"
)

// twoAdicity is the exponent of the largest power of two for which bn254's
// scalar field has a root of unity of that order (2^28).
const twoAdicity = 28

// Domain wraps a radix-2 evaluation domain of a fixed size.
type Domain struct {
	inner *fft.Domain
	size  uint64
}

// GetEvaluationDomain constructs a radix-2 domain of exactly size elements.
// size must be a power of two not exceeding the field's two-adicity.
func GetEvaluationDomain(size uint64) (*Domain, error) {
	if size == 0 || (size&(size-1)) != 0 {
		return nil, bace.ErrDomainUnsupported
	}
	if size > (1 << twoAdicity) {
		return nil, bace.ErrDomainUnsupported
	}
	return &Domain{inner: fft.NewDomain(size), size: size}, nil
}

// Size returns the domain's cardinality.
func (d *Domain) Size() uint64 {
	return d.size
}

// FFT evaluates, in place, the polynomial given by vec's coefficients
// (natural order, zero-padded to the domain size) over the domain, leaving
// vec holding the evaluations in natural order.
func (d *Domain) FFT(vec []fr.Element) {
	d.inner.FFT(vec, fft.DIF)
	fft.BitReverse(vec)
}

// IFFT interpolates, in place, the polynomial whose evaluations over the
// domain are given by vec (natural order), leaving vec holding the
// coefficients in natural order.
func (d *Domain) IFFT(vec []fr.Element) {
	d.inner.FFTInverse(vec, fft.DIF)
	fft.BitReverse(vec)
}

// EvaluatePolynomial evaluates coeffs[:degreeBound] (coefficient form, low
// degree first) at point, via Horner's method. degreeBound may be smaller
// than len(coeffs) to evaluate a truncated polynomial without reslicing.
func EvaluatePolynomial(degreeBound int, coeffs []fr.Element, point fr.Element) fr.Element {
	var result fr.Element
	for i := degreeBound - 1; i >= 0; i-- {
		result.Mul(&result, &point)
		result.Add(&result, &coeffs[i])
	}
	return result
}

// PrevPowerOfTwo returns the largest power of two less than or equal to n.
// It returns 0 for n == 0. Like the original implementation this is only
// meaningful for values representable in 32 bits.
func PrevPowerOfTwo(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	var p uint32 = 1
	for p<<1 <= n {
		p <<= 1
	}
	return p
}

// nextPowerOfTwo returns the smallest power of two greater than or equal to
// n, with nextPowerOfTwo(0) == 1 by convention.
func nextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// GetEmbeddedIndex maps index i of a size-small domain to its corresponding
// index in a size-large domain sharing the same subgroup structure (small
// divides large, both powers of two). The PrevPowerOfTwo call on an
// already-power-of-two quotient is redundant but kept for bit-for-bit
// fidelity with the reference implementation.
func GetEmbeddedIndex(i, small, large uint64) uint64 {
	stride := uint64(PrevPowerOfTwo(uint32(large / small)))
	return i * stride
}

// GetColumnSize returns the column domain size for a batch of b inputs: the
// smallest power of two at least b.
func GetColumnSize(b uint64) uint64 {
	return nextPowerOfTwo(b)
}

// GetLargeDegree returns the large evaluation domain size needed to evaluate
// a degree-`degree` circuit pointwise across a column domain of size c: the
// smallest power of two at least c*degree. degree == 0 yields 1, matching
// nextPowerOfTwo(0) == 1.
func GetLargeDegree(c, degree uint64) uint64 {
	return nextPowerOfTwo(c * degree)
}
