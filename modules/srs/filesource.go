package srs

import (
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/pkg/errors"
)

// FileSource reads setup points from flat files of concatenated compressed
// affine points: 32 bytes per G1 point, 64 bytes per G2 point, no framing.
// It implements Source; parsing and validation stay with the SRS
// constructor.
type FileSource struct {
	g1Path       string
	g2Path       string
	maxDegree    uint64
	pointsToLoad uint64
}

// NewFileSource describes a point-file pair to load an SRS from.
func NewFileSource(g1Path, g2Path string, maxDegree, pointsToLoad uint64) *FileSource {
	return &FileSource{
		g1Path:       g1Path,
		g2Path:       g2Path,
		maxDegree:    maxDegree,
		pointsToLoad: pointsToLoad,
	}
}

func (f *FileSource) MaxDegree() uint64 {
	return f.maxDegree
}

func (f *FileSource) PointsToLoad() uint64 {
	return f.pointsToLoad
}

// G1RawPoints reads the first PointsToLoad G1 points from the G1 file.
func (f *FileSource) G1RawPoints() ([][]byte, error) {
	return readPointFile(f.g1Path, bn254.SizeOfG1AffineCompressed, f.pointsToLoad)
}

// G2RawPoints reads every G2 point the G2 file holds.
func (f *FileSource) G2RawPoints() ([][]byte, error) {
	return readPointFile(f.g2Path, bn254.SizeOfG2AffineCompressed, 0)
}

// readPointFile splits a point file into pointWidth-sized records. limit
// bounds the number of records read, 0 meaning all of them.
func readPointFile(path string, pointWidth int, limit uint64) ([][]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading point file %s", path)
	}
	if len(data)%pointWidth != 0 {
		return nil, errors.Errorf(
			"point file %s holds %d bytes, not a multiple of the %d-byte point width",
			path, len(data), pointWidth)
	}

	numPoints := uint64(len(data) / pointWidth)
	if limit > 0 && limit < numPoints {
		numPoints = limit
	}

	points := make([][]byte, numPoints)
	for i := uint64(0); i < numPoints; i++ {
		points[i] = data[i*uint64(pointWidth) : (i+1)*uint64(pointWidth)]
	}
	return points, nil
}
