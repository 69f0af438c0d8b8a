// Package encoding maps raw byte streams to and from BN254 scalar field
// elements. Every 32-byte symbol carries 31 data bytes behind a leading zero
// byte, which keeps the symbol value strictly below the field modulus. The
// chunking is a wire contract: a peer decoding a committed blob must split
// the byte stream the exact same way.
package encoding

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const (
	// BytesPerSymbol is the serialized width of one field element.
	BytesPerSymbol = fr.Bytes
	// DataBytesPerSymbol is the number of payload bytes carried per symbol,
	// leaving one zero byte of headroom below the modulus.
	DataBytesPerSymbol = BytesPerSymbol - 1
)

// ErrDecodeLength reports a requested decode length beyond what the supplied
// field elements can carry.
var ErrDecodeLength = errors.New("encoding: decode length exceeds element capacity")

// PadBytes inserts a zero byte before every group of up to 31 data bytes, so
// that each resulting 32-byte group parses as a canonical field element.
func PadBytes(data []byte) []byte {
	groups := (len(data) + DataBytesPerSymbol - 1) / DataBytesPerSymbol

	padded := make([]byte, 0, len(data)+groups)
	for i := 0; i < len(data); i += DataBytesPerSymbol {
		end := i + DataBytesPerSymbol
		if end > len(data) {
			end = len(data)
		}
		padded = append(padded, 0x00)
		padded = append(padded, data[i:end]...)
	}

	return padded
}

// UnpadBytes strips the zero byte in front of every 31-byte group, the
// inverse of PadBytes.
func UnpadBytes(padded []byte) []byte {
	data := make([]byte, 0, len(padded))
	for i := 0; i < len(padded); i += BytesPerSymbol {
		end := i + BytesPerSymbol
		if end > len(padded) {
			end = len(padded)
		}
		data = append(data, padded[i+1:end]...)
	}

	return data
}

// ToFieldElements splits an already padded byte stream into 32-byte symbols
// and parses each as a field element. The final symbol is zero padded on the
// right when the stream length is not a multiple of 32.
func ToFieldElements(padded []byte) []fr.Element {
	numSymbols := (len(padded) + BytesPerSymbol - 1) / BytesPerSymbol

	elements := make([]fr.Element, numSymbols)
	var symbol [BytesPerSymbol]byte
	for i := 0; i < numSymbols; i++ {
		start := i * BytesPerSymbol
		end := start + BytesPerSymbol
		if end > len(padded) {
			end = len(padded)
		}

		symbol = [BytesPerSymbol]byte{}
		copy(symbol[:], padded[start:end])
		elements[i].SetBytes(symbol[:])
	}

	return elements
}

// ToBytes serializes field elements back into the padded byte stream,
// truncated to paddedLength bytes.
func ToBytes(elements []fr.Element, paddedLength int) []byte {
	padded := make([]byte, 0, len(elements)*BytesPerSymbol)
	for i := range elements {
		symbol := elements[i].Bytes()
		padded = append(padded, symbol[:]...)
	}

	if paddedLength < len(padded) {
		padded = padded[:paddedLength]
	}
	return padded
}

// Encode maps raw bytes to field elements: PadBytes followed by
// ToFieldElements. The mapping is invertible through Decode.
func Encode(data []byte) []fr.Element {
	return ToFieldElements(PadBytes(data))
}

// Decode recovers the original bytes from Encode output. originalLength is
// the raw byte length before padding; decoding fails when it exceeds the
// payload capacity of the supplied elements.
func Decode(elements []fr.Element, originalLength int) ([]byte, error) {
	capacity := len(elements) * DataBytesPerSymbol
	if originalLength > capacity {
		return nil, fmt.Errorf("%w: want %d bytes, %d elements carry at most %d",
			ErrDecodeLength, originalLength, len(elements), capacity)
	}

	data := UnpadBytes(ToBytes(elements, len(elements)*BytesPerSymbol))
	return data[:originalLength], nil
}
