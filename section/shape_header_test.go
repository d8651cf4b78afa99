package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lineq/errs"
	"github.com/arloliu/lineq/format"
)

func TestShapeHeader_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		h := NewShapeHeader()
		if bigEndian {
			h.WithBigEndian()
		}
		h.Compression = format.CompressionLZ4
		h.ShapeCount = 3
		h.RawSize = 120
		h.StoredSize = 80
		h.Checksum = 0x0123456789abcdef

		b := h.Bytes()
		require.Len(t, b, HeaderSize)

		parsed, err := ParseShapeHeader(b)
		require.NoError(t, err)
		require.Equal(t, *h, parsed)
		require.Equal(t, bigEndian, parsed.IsBigEndian())
	}
}

func TestShapeHeader_Endianness(t *testing.T) {
	h := NewShapeHeader()
	h.ShapeCount = 1

	require.False(t, h.IsBigEndian())
	require.Equal(t, []byte{1, 0, 0, 0}, h.Bytes()[4:8])

	h.WithBigEndian()
	require.True(t, h.IsBigEndian())
	require.Equal(t, []byte{0, 0, 0, 1}, h.Bytes()[4:8])

	h.WithLittleEndian()
	require.False(t, h.IsBigEndian())
}

func TestParseShapeHeader_Errors(t *testing.T) {
	_, err := ParseShapeHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	var h ShapeHeader
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)

	_, err = ParseShapeHeader(make([]byte, HeaderSize))
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)

	b := NewShapeHeader().Bytes()
	b[0] |= 0x01 // reserved bit
	_, err = ParseShapeHeader(b)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)

	b = NewShapeHeader().Bytes()
	b[3] = 1
	_, err = ParseShapeHeader(b)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)

	b = NewShapeHeader().Bytes()
	b[2] = 0x9
	_, err = ParseShapeHeader(b)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}
