package poly

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func randomElements(rnd *rand.Rand, n int) []fr.Element {
	elements := make([]fr.Element, n)
	for i := range elements {
		elements[i].SetUint64(rnd.Uint64())
	}
	return elements
}

func TestNewPolynomialDomainPadding(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	testcases := []struct {
		length     int
		domainSize int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{33, 64},
	}

	for _, tc := range testcases {
		t.Run(fmt.Sprintf("length %d", tc.length), func(t *testing.T) {
			p, err := NewPolynomial(randomElements(rnd, tc.length), Coefficient)
			require.NoError(t, err)
			require.Equal(t, tc.length, p.Len())
			require.Equal(t, tc.domainSize, p.DomainSize())

			for _, padded := range p.Values()[tc.length:] {
				require.True(t, padded.IsZero(), "domain padding must be zero")
			}
		})
	}
}

func TestNewPolynomialEmpty(t *testing.T) {
	_, err := NewPolynomial(nil, Coefficient)
	require.ErrorIs(t, err, ErrInvalidInputLength)
}

func TestTransformRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))

	for _, n := range []int{1, 2, 3, 8, 15, 33, 64} {
		p, err := NewPolynomial(randomElements(rnd, n), Coefficient)
		require.NoError(t, err)

		back := p.ToEvaluationForm().ToCoefficientForm()
		require.Equal(t, Coefficient, back.Basis())
		require.Equal(t, p.Len(), back.Len())
		require.Equal(t, p.Values(), back.Values())
	}
}

func TestConversionIsIdentityInSameBasis(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	p, err := NewPolynomial(randomElements(rnd, 8), Coefficient)
	require.NoError(t, err)
	require.Same(t, p, p.ToCoefficientForm())

	e, err := NewPolynomial(randomElements(rnd, 8), Evaluation)
	require.NoError(t, err)
	require.Same(t, e, e.ToEvaluationForm())
}

func TestEvaluateHorner(t *testing.T) {
	// f(x) = 5 + 2x + 3x^2, f(11) = 390
	coeffs := make([]fr.Element, 3)
	coeffs[0].SetUint64(5)
	coeffs[1].SetUint64(2)
	coeffs[2].SetUint64(3)

	p, err := NewPolynomial(coeffs, Coefficient)
	require.NoError(t, err)

	var point, expected fr.Element
	point.SetUint64(11)
	expected.SetUint64(390)
	require.Equal(t, expected, p.Evaluate(point))
}

func TestEvaluationFormMatchesDomainEvaluations(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))

	p, err := NewPolynomial(randomElements(rnd, 8), Coefficient)
	require.NoError(t, err)

	evals := p.ToEvaluationForm()
	domain := fft.NewDomain(uint64(p.DomainSize()))

	var root fr.Element
	root.SetOne()
	for i, eval := range evals.Values() {
		require.Equal(t, p.Evaluate(root), eval, "evaluation %d disagrees with the domain root", i)
		root.Mul(&root, &domain.Generator)
	}
}

func TestEvaluateFromEvaluationForm(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))

	coeffs := randomElements(rnd, 16)
	p, err := NewPolynomial(coeffs, Coefficient)
	require.NoError(t, err)

	var point fr.Element
	point.SetBigInt(big.NewInt(987654321))

	// Evaluating from either basis must agree.
	require.Equal(t, p.Evaluate(point), p.ToEvaluationForm().Evaluate(point))
}
