// Package srs models the structured reference string of the commitment
// scheme: the G1 powers of the setup secret τ and the short G2 sequence
// [H, τ·H]. The package only ever consumes pre-generated points (deriving τ
// is never in scope) and validates every point on load. An SRS is
// immutable after construction and safe for concurrent read access.
package srs

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

var (
	// ErrSetupSize reports a requested load size inconsistent with the
	// available setup points.
	ErrSetupSize = errors.New("srs: setup size")
	// ErrInvalidPoint reports a raw point failing deserialization or the
	// on-curve/subgroup checks.
	ErrInvalidPoint = errors.New("srs: invalid point")
)

// MinG2Points is the number of G2 points verification consumes: the
// generator H and τ·H.
const MinG2Points = 2

// Source supplies raw serialized setup points. Implementations own all file
// or network I/O; the SRS constructor only parses and validates.
type Source interface {
	// G1RawPoints returns the compressed G1 powers of τ, lowest power first.
	G1RawPoints() ([][]byte, error)
	// G2RawPoints returns the compressed G2 points, at least [H, τ·H].
	G2RawPoints() ([][]byte, error)
	// MaxDegree declares the size of the setup the points come from.
	MaxDegree() uint64
	// PointsToLoad declares how many G1 points to retain.
	PointsToLoad() uint64
}

// SRS holds the validated setup points. Committing supports polynomials with
// up to G1Size coefficients, so degrees strictly below PointsToLoad.
type SRS struct {
	g1 []bn254.G1Affine
	g2 []bn254.G2Affine
}

// NewSRS materializes the source's raw points into a validated SRS.
func NewSRS(src Source) (*SRS, error) {
	g1Raw, err := src.G1RawPoints()
	if err != nil {
		return nil, err
	}
	g2Raw, err := src.G2RawPoints()
	if err != nil {
		return nil, err
	}

	return NewSRSFromRawPoints(g1Raw, g2Raw, src.MaxDegree(), src.PointsToLoad())
}

// NewSRSFromRawPoints parses and validates raw setup points. The first
// pointsToLoad G1 points are retained; construction fails with ErrSetupSize
// when the request exceeds the declared or supplied points, and with
// ErrInvalidPoint when any point fails the curve or subgroup check.
func NewSRSFromRawPoints(g1Raw, g2Raw [][]byte, maxDegree, pointsToLoad uint64) (*SRS, error) {
	if pointsToLoad == 0 {
		return nil, fmt.Errorf("%w: no G1 points requested", ErrSetupSize)
	}
	if pointsToLoad > maxDegree {
		return nil, fmt.Errorf("%w: %d points requested from a setup of degree %d",
			ErrSetupSize, pointsToLoad, maxDegree)
	}
	if uint64(len(g1Raw)) < pointsToLoad {
		return nil, fmt.Errorf("%w: %d points requested, %d supplied",
			ErrSetupSize, pointsToLoad, len(g1Raw))
	}
	if len(g2Raw) < MinG2Points {
		return nil, fmt.Errorf("%w: %d G2 points supplied, need at least %d",
			ErrSetupSize, len(g2Raw), MinG2Points)
	}

	g1 := make([]bn254.G1Affine, pointsToLoad)
	for i := range g1 {
		if _, err := g1[i].SetBytes(g1Raw[i]); err != nil {
			return nil, fmt.Errorf("%w: G1 point %d: %v", ErrInvalidPoint, i, err)
		}
	}

	g2 := make([]bn254.G2Affine, len(g2Raw))
	for i := range g2 {
		if _, err := g2[i].SetBytes(g2Raw[i]); err != nil {
			return nil, fmt.Errorf("%w: G2 point %d: %v", ErrInvalidPoint, i, err)
		}
	}

	return &SRS{g1: g1, g2: g2}, nil
}

// G1 returns the loaded G1 powers of τ. The slice is shared and must be
// treated as read-only.
func (s *SRS) G1() []bn254.G1Affine {
	return s.g1
}

// G1Size returns the number of loaded G1 points, the maximum coefficient
// count Commit accepts.
func (s *SRS) G1Size() int {
	return len(s.g1)
}

// G1Gen returns the G1 generator, the zeroth power of τ.
func (s *SRS) G1Gen() bn254.G1Affine {
	return s.g1[0]
}

// G2Gen returns the G2 generator H.
func (s *SRS) G2Gen() bn254.G2Affine {
	return s.g2[0]
}

// G2Tau returns τ·H, the G2 point the pairing check evaluates against.
func (s *SRS) G2Tau() bn254.G2Affine {
	return s.g2[1]
}

// MarshalG1 serializes the loaded G1 points back to their compressed form.
func (s *SRS) MarshalG1() [][]byte {
	raw := make([][]byte, len(s.g1))
	for i := range s.g1 {
		b := s.g1[i].Bytes()
		raw[i] = b[:]
	}
	return raw
}

// MarshalG2 serializes the loaded G2 points back to their compressed form.
func (s *SRS) MarshalG2() [][]byte {
	raw := make([][]byte, len(s.g2))
	for i := range s.g2 {
		b := s.g2[i].Bytes()
		raw[i] = b[:]
	}
	return raw
}
