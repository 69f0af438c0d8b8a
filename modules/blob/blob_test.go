package blob

import (
	"testing"

	"KZGBlobCommitment/modules/encoding"
	"KZGBlobCommitment/modules/poly"

	"github.com/stretchr/testify/require"
)

const gettysburgAddress = "Fourscore and seven years ago our fathers brought forth, on this continent, a new nation, conceived in liberty, and dedicated to the proposition that all men are created equal. Now we are engaged in a great civil war, testing whether that nation, or any nation so conceived, and so dedicated, can long endure. We are met on a great battle-field of that war. We have come to dedicate a portion of that field, as a final resting-place for those who here gave their lives, that that nation might live. It is altogether fitting and proper that we should do this. But, in a larger sense, we cannot dedicate, we cannot consecrate—we cannot hallow—this ground. The brave men, living and dead, who struggled here, have consecrated it far above our poor power to add or detract. The world will little note, nor long remember what we say here, but it can never forget what they did here. It is for us the living, rather, to be dedicated here to the unfinished work which they who fought here have thus far so nobly advanced. It is rather for us to be here dedicated to the great task remaining before us—that from these honored dead we take increased devotion to that cause for which they here gave the last full measure of devotion—that we here highly resolve that these dead shall not have died in vain—that this nation, under God, shall have a new birth of freedom, and that government of the people, by the people, for the people, shall not perish from the earth."

func TestBlobPaddingStateErrors(t *testing.T) {
	b := FromBytesAndPad([]byte("hi"))

	require.ErrorIs(t, b.Pad(), ErrAlreadyPadded)

	require.NoError(t, b.Unpad())
	require.ErrorIs(t, b.Unpad(), ErrNotPadded)

	_, err := b.ToPolynomial(poly.Coefficient)
	require.ErrorIs(t, err, ErrNotPadded)
}

func TestBlobPaddingVector(t *testing.T) {
	b := FromBytesAndPad([]byte("hi"))
	require.Equal(t, []byte{0, 104, 105}, b.Data())
	require.True(t, b.IsPadded())
	require.Equal(t, 3, b.LengthAfterPadding())

	require.NoError(t, b.Unpad())
	require.Equal(t, []byte{104, 105}, b.Data())
	require.False(t, b.IsPadded())
	require.Equal(t, 0, b.LengthAfterPadding())
}

func TestBlobGettysburgRoundTrip(t *testing.T) {
	b := FromBytesAndPad([]byte(gettysburgAddress))
	require.True(t, b.IsPadded())
	require.Equal(t, 1515, b.LengthAfterPadding())

	require.NoError(t, b.Unpad())
	require.Equal(t, []byte(gettysburgAddress), b.Data())
}

func TestNewThenPadMatchesPaddingConstructor(t *testing.T) {
	padded := FromBytesAndPad([]byte(gettysburgAddress))

	raw := New([]byte(gettysburgAddress))
	require.False(t, raw.IsPadded())
	require.NoError(t, raw.Pad())

	require.Equal(t, padded.Data(), raw.Data())
	require.Equal(t, padded.LengthAfterPadding(), raw.LengthAfterPadding())
}

func TestBlobToPolynomial(t *testing.T) {
	b := FromBytesAndPad([]byte("hi"))

	p, err := b.ToPolynomial(poly.Coefficient)
	require.NoError(t, err)
	require.Equal(t, poly.Coefficient, p.Basis())
	require.Equal(t, 1, p.Len())

	expected := encoding.ToFieldElements([]byte{0, 104, 105})
	require.Equal(t, expected[0], p.Values()[0])
}

func TestBlobDataIsCopied(t *testing.T) {
	input := []byte("hi")
	b := New(input)
	input[0] = 'x'

	require.Equal(t, []byte("hi"), b.Data())
}
