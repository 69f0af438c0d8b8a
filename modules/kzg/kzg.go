// Package kzg implements the commit / open / verify triad of the KZG
// polynomial commitment scheme over BN254. A commitment is one G1 element,
// an opening proof is one G1 element, and verification is a single pairing
// check, independent of the blob size.
package kzg

import (
	"errors"
	"fmt"
	"math/big"

	"KZGBlobCommitment/modules/poly"
	"KZGBlobCommitment/modules/srs"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	// ErrSRSTooSmall reports a polynomial with more meaningful coefficients
	// than the SRS holds G1 points.
	ErrSRSTooSmall = errors.New("kzg: srs too small")
	// ErrMalformedInput reports a structurally invalid verification input,
	// as opposed to a well-formed proof that simply does not verify.
	ErrMalformedInput = errors.New("kzg: malformed input")
)

// Commitment is a binding digest of a polynomial: one G1 element, opaque to
// callers beyond equality and serialization.
type Commitment = bn254.G1Affine

// Proof attests that the committed polynomial evaluates to a claimed value
// at one point. The point and value are supplied alongside the proof at
// verification time, not embedded in it.
type Proof struct {
	QuotientCommitment bn254.G1Affine
}

// Scheme binds the commit, open and verify operations to one SRS. The SRS
// is shared read-only, so a Scheme is safe for concurrent use.
type Scheme struct {
	srs *srs.SRS
}

// NewScheme wraps a loaded SRS.
func NewScheme(s *srs.SRS) *Scheme {
	return &Scheme{srs: s}
}

// Commit computes the multi-scalar multiplication of the polynomial's
// coefficients against the G1 powers of τ. The polynomial is converted to
// coefficient form first when needed. Identical polynomial and SRS always
// yield the identical commitment.
func (s *Scheme) Commit(p *poly.Polynomial) (Commitment, error) {
	coeffs := trimTrailingZeros(p.ToCoefficientForm().Values())
	return s.commitCoefficients(coeffs)
}

// Open evaluates the polynomial at point and proves the evaluation: it forms
// the quotient q(x) = (p(x) - value) / (x - point) by synthetic division and
// commits to it. Division is exact because point is a root of the numerator.
// The division always runs in coefficient form, so evaluation points lying
// on the domain need no special casing.
func (s *Scheme) Open(p *poly.Polynomial, point fr.Element) (fr.Element, Proof, error) {
	coeffs := trimTrailingZeros(p.ToCoefficientForm().Values())
	if len(coeffs) > s.srs.G1Size() {
		return fr.Element{}, Proof{}, fmt.Errorf("%w: %d coefficients, %d setup points",
			ErrSRSTooSmall, len(coeffs), s.srs.G1Size())
	}

	var value fr.Element
	for i := len(coeffs) - 1; i >= 0; i-- {
		value.Mul(&value, &point)
		value.Add(&value, &coeffs[i])
	}

	// Synthetic division of p(x) - value by (x - point), highest coefficient
	// first. The remainder is zero by construction and never materialized.
	quotient := make([]fr.Element, 1)
	if len(coeffs) > 1 {
		quotient = make([]fr.Element, len(coeffs)-1)
		var acc fr.Element
		for i := len(coeffs) - 1; i >= 1; i-- {
			acc.Mul(&acc, &point)
			acc.Add(&acc, &coeffs[i])
			quotient[i-1] = acc
		}
	}

	quotientComm, err := s.commitCoefficients(quotient)
	if err != nil {
		return fr.Element{}, Proof{}, err
	}

	return value, Proof{QuotientCommitment: quotientComm}, nil
}

// Verify checks the pairing equality
//
//	e(commitment - [value]·G1, H) == e(quotient, [τ]·H - [point]·H)
//
// which holds iff the committed polynomial evaluates to value at point. A
// well-formed proof that fails the check yields (false, nil); an error is
// returned only for structurally invalid inputs.
func (s *Scheme) Verify(commitment *Commitment, point, value fr.Element, proof *Proof) (bool, error) {
	if commitment == nil || proof == nil {
		return false, fmt.Errorf("%w: nil commitment or proof", ErrMalformedInput)
	}
	if !commitment.IsOnCurve() || !commitment.IsInSubGroup() {
		return false, fmt.Errorf("%w: commitment not in G1", ErrMalformedInput)
	}
	if !proof.QuotientCommitment.IsOnCurve() || !proof.QuotientCommitment.IsInSubGroup() {
		return false, fmt.Errorf("%w: quotient commitment not in G1", ErrMalformedInput)
	}

	g1Gen := s.srs.G1Gen()
	g2Gen := s.srs.G2Gen()
	g2Tau := s.srs.G2Tau()

	var negH bn254.G2Affine
	negH.Neg(&g2Gen)

	// [τ - point]·H
	var pointBig big.Int
	point.BigInt(&pointBig)
	var g2GenJac, pointHJac, tauMinusPointJac bn254.G2Jac
	g2GenJac.FromAffine(&g2Gen)
	pointHJac.ScalarMultiplication(&g2GenJac, &pointBig)
	tauMinusPointJac.FromAffine(&g2Tau)
	tauMinusPointJac.SubAssign(&pointHJac)
	var tauMinusPointH bn254.G2Affine
	tauMinusPointH.FromJacobian(&tauMinusPointJac)

	// commitment - [value]·G1
	var valueBig big.Int
	value.BigInt(&valueBig)
	var g1GenJac, valueG1Jac, commMinusValueJac bn254.G1Jac
	g1GenJac.FromAffine(&g1Gen)
	valueG1Jac.ScalarMultiplication(&g1GenJac, &valueBig)
	commMinusValueJac.FromAffine(commitment)
	commMinusValueJac.SubAssign(&valueG1Jac)
	var commMinusValue bn254.G1Affine
	commMinusValue.FromJacobian(&commMinusValueJac)

	return bn254.PairingCheck(
		[]bn254.G1Affine{commMinusValue, proof.QuotientCommitment},
		[]bn254.G2Affine{negH, tauMinusPointH},
	)
}

// commitCoefficients runs the MSM against the G1 setup points, enforcing the
// capacity bound.
func (s *Scheme) commitCoefficients(coeffs []fr.Element) (bn254.G1Affine, error) {
	if len(coeffs) > s.srs.G1Size() {
		return bn254.G1Affine{}, fmt.Errorf("%w: %d coefficients, %d setup points",
			ErrSRSTooSmall, len(coeffs), s.srs.G1Size())
	}

	var c bn254.G1Affine
	if _, err := c.MultiExp(s.srs.G1()[:len(coeffs)], coeffs, ecc.MultiExpConfig{}); err != nil {
		return bn254.G1Affine{}, err
	}
	return c, nil
}

// trimTrailingZeros drops zero high-order coefficients: they contribute
// nothing to an MSM but would inflate the capacity check, since the value
// slice is zero padded to the power-of-two domain size.
func trimTrailingZeros(coeffs []fr.Element) []fr.Element {
	last := len(coeffs) - 1
	for last > 0 && coeffs[last].IsZero() {
		last--
	}
	return coeffs[:last+1]
}
