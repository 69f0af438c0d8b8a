// Package blob holds the byte buffer clients commit to. A blob is either raw
// or padded; only a padded blob converts to a polynomial, since the padding
// is what guarantees every 32-byte symbol parses as a field element.
package blob

import (
	"errors"

	"KZGBlobCommitment/modules/encoding"
	"KZGBlobCommitment/modules/poly"
)

var (
	// ErrAlreadyPadded reports a Pad call on a padded blob.
	ErrAlreadyPadded = errors.New("blob: already padded")
	// ErrNotPadded reports an Unpad or ToPolynomial call on an unpadded blob.
	ErrNotPadded = errors.New("blob: not padded")
)

// Blob is an exclusively owned byte buffer with a padding state. The zero
// value is an empty unpadded blob.
type Blob struct {
	data               []byte
	isPadded           bool
	lengthAfterPadding int
}

// New creates a Blob over raw, unpadded bytes. The bytes are copied.
func New(data []byte) *Blob {
	return &Blob{data: append([]byte(nil), data...)}
}

// FromBytesAndPad creates a Blob from raw bytes and pads it immediately.
func FromBytesAndPad(data []byte) *Blob {
	padded := encoding.PadBytes(data)
	return &Blob{
		data:               padded,
		isPadded:           true,
		lengthAfterPadding: len(padded),
	}
}

// Data returns a copy of the blob bytes in their current padding state.
func (b *Blob) Data() []byte {
	return append([]byte(nil), b.data...)
}

// Len returns the current byte length of the blob.
func (b *Blob) Len() int {
	return len(b.data)
}

// IsPadded reports whether the blob bytes carry the symbol padding.
func (b *Blob) IsPadded() bool {
	return b.isPadded
}

// LengthAfterPadding returns the padded byte length, or 0 while unpadded.
func (b *Blob) LengthAfterPadding() int {
	return b.lengthAfterPadding
}

// Pad applies the symbol padding in place.
func (b *Blob) Pad() error {
	if b.isPadded {
		return ErrAlreadyPadded
	}

	b.data = encoding.PadBytes(b.data)
	b.isPadded = true
	b.lengthAfterPadding = len(b.data)
	return nil
}

// Unpad removes the symbol padding in place, the inverse of Pad.
func (b *Blob) Unpad() error {
	if !b.isPadded {
		return ErrNotPadded
	}

	b.data = encoding.UnpadBytes(b.data)
	b.isPadded = false
	b.lengthAfterPadding = 0
	return nil
}

// ToPolynomial parses the padded blob bytes into field elements and wraps
// them as a polynomial in the requested basis. The polynomial's logical
// length is the element count before any power-of-two domain padding.
func (b *Blob) ToPolynomial(basis poly.Basis) (*poly.Polynomial, error) {
	if !b.isPadded {
		return nil, ErrNotPadded
	}

	elements := encoding.ToFieldElements(b.data)
	return poly.NewPolynomial(elements, basis)
}
