package srs

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// NewSRSInsecure derives an SRS from a caller-supplied secret τ. Knowing τ
// breaks the binding of every commitment made against the result, so this
// exists only for tests and local development setups, never for production
// parameters.
func NewSRSInsecure(pointsToLoad uint64, tau *big.Int) (*SRS, error) {
	if pointsToLoad == 0 {
		return nil, fmt.Errorf("%w: no G1 points requested", ErrSetupSize)
	}

	var tauElem fr.Element
	tauElem.SetBigInt(tau)
	if tauElem.IsZero() {
		return nil, fmt.Errorf("%w: secret must be nonzero", ErrInvalidPoint)
	}

	_, _, g1Gen, g2Gen := bn254.Generators()

	g1 := make([]bn254.G1Affine, pointsToLoad)
	g1[0] = g1Gen
	if pointsToLoad > 1 {
		// tau^1 .. tau^(n-1), then one batched base multiplication.
		tauPowers := make([]fr.Element, pointsToLoad-1)
		tauPowers[0] = tauElem
		for i := 1; i < len(tauPowers); i++ {
			tauPowers[i].Mul(&tauPowers[i-1], &tauElem)
		}
		copy(g1[1:], bn254.BatchScalarMultiplicationG1(&g1Gen, tauPowers))
	}

	g2 := make([]bn254.G2Affine, MinG2Points)
	g2[0] = g2Gen
	g2[1].ScalarMultiplication(&g2Gen, tau)

	return &SRS{g1: g1, g2: g2}, nil
}
