// Package poly represents the polynomial encoding of a blob in one of two
// bases: coefficient form, or evaluation form over the roots-of-unity domain
// of the BN254 scalar field. Basis conversion goes through the radix-2 NTT
// of gnark-crypto and is always explicit.
package poly

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// Basis tags the representation a Polynomial currently holds.
type Basis uint8

const (
	// Coefficient basis: values[i] is the coefficient of x^i.
	Coefficient Basis = iota
	// Evaluation basis: values[i] is the evaluation at the i-th root of
	// unity of the domain, in natural order.
	Evaluation
)

// MaxDomainSize bounds the evaluation domain, matching the largest trusted
// setup the scheme is run against.
const MaxDomainSize = 1 << 28

// ErrInvalidInputLength reports a polynomial construction whose element
// count is zero or beyond MaxDomainSize.
var ErrInvalidInputLength = errors.New("poly: invalid input length")

// Polynomial carries exactly one basis tag at a time. The values slice is
// zero padded to the domain size, the next power of two at or above the
// logical length.
type Polynomial struct {
	basis  Basis
	values []fr.Element
	length int
}

// NewPolynomial wraps field elements as a polynomial in the given basis.
// The logical length is len(values); the slice is copied and zero padded to
// the power-of-two domain size.
func NewPolynomial(values []fr.Element, basis Basis) (*Polynomial, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty element sequence", ErrInvalidInputLength)
	}

	domainSize := ecc.NextPowerOfTwo(uint64(len(values)))
	if domainSize > MaxDomainSize {
		return nil, fmt.Errorf("%w: %d elements need a domain of %d, max is %d",
			ErrInvalidInputLength, len(values), domainSize, MaxDomainSize)
	}

	padded := make([]fr.Element, domainSize)
	copy(padded, values)

	return &Polynomial{
		basis:  basis,
		values: padded,
		length: len(values),
	}, nil
}

// Basis returns the basis tag the polynomial currently holds.
func (p *Polynomial) Basis() Basis {
	return p.basis
}

// Len returns the logical element count, before domain zero padding.
func (p *Polynomial) Len() int {
	return p.length
}

// DomainSize returns the power-of-two evaluation domain cardinality.
func (p *Polynomial) DomainSize() int {
	return len(p.values)
}

// Values returns a copy of the domain-padded value sequence.
func (p *Polynomial) Values() []fr.Element {
	return append([]fr.Element(nil), p.values...)
}

// ToCoefficientForm returns the polynomial in coefficient basis. A
// polynomial already in coefficient form is returned unchanged; otherwise
// the inverse NTT over the domain is applied.
func (p *Polynomial) ToCoefficientForm() *Polynomial {
	if p.basis == Coefficient {
		return p
	}

	coeffs := append([]fr.Element(nil), p.values...)
	domain := fft.NewDomain(uint64(len(coeffs)))
	domain.FFTInverse(coeffs, fft.DIF)
	fft.BitReverse(coeffs)

	return &Polynomial{
		basis:  Coefficient,
		values: coeffs,
		length: p.length,
	}
}

// ToEvaluationForm returns the polynomial in evaluation basis over the
// natural-order roots-of-unity domain, the inverse of ToCoefficientForm.
func (p *Polynomial) ToEvaluationForm() *Polynomial {
	if p.basis == Evaluation {
		return p
	}

	evals := append([]fr.Element(nil), p.values...)
	domain := fft.NewDomain(uint64(len(evals)))
	domain.FFT(evals, fft.DIF)
	fft.BitReverse(evals)

	return &Polynomial{
		basis:  Evaluation,
		values: evals,
		length: p.length,
	}
}

// Evaluate computes p(point) at an arbitrary field point by Horner's rule on
// the coefficient form, converting first when needed.
func (p *Polynomial) Evaluate(point fr.Element) fr.Element {
	coeffs := p.ToCoefficientForm().values

	var result fr.Element
	for i := len(coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &point)
		result.Add(&result, &coeffs[i])
	}
	return result
}
