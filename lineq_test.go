package lineq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lineq/blob"
	"github.com/arloliu/lineq/errs"
	"github.com/arloliu/lineq/format"
	"github.com/arloliu/lineq/shape"
)

func TestNewLine(t *testing.T) {
	line, err := NewLine(2, -4, 8)
	require.NoError(t, err)
	require.Equal(t, "2x - 4y + 8 = 0", line.PrintEquation())

	_, err = NewLine(0, 0, 1)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestNewHyperPlane(t *testing.T) {
	plane, err := NewHyperPlane(1, 1, 1, 1, -4)
	require.NoError(t, err)
	require.Equal(t, 4, plane.Dimension())

	ok, err := plane.BelongsToShape(1, 1, 1, 1)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = NewHyperPlane(5)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestShapeID(t *testing.T) {
	a, _ := NewLine(1, 2, 3)
	b, _ := NewLine(1, 2, 3)
	c, _ := NewLine(1, 2, 4)

	require.Equal(t, ShapeID(a), ShapeID(b))
	require.NotEqual(t, ShapeID(a), ShapeID(c))
	require.Equal(t, shape.ID(a), ShapeID(a))
}

func TestNewDefaultEncoder(t *testing.T) {
	encoder, err := NewDefaultEncoder()
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, encoder.Compression())
	require.False(t, encoder.IsBigEndian())
}

func TestNewCompressedEncoder(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		encoder, err := NewCompressedEncoder(ct)
		require.NoError(t, err)
		require.Equal(t, ct, encoder.Compression())
	}

	_, err := NewCompressedEncoder(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestNewShapeEncoder(t *testing.T) {
	encoder, err := NewShapeEncoder(blob.WithBigEndian())
	require.NoError(t, err)
	require.True(t, encoder.IsBigEndian())
}

func TestEncodeDecode(t *testing.T) {
	line, _ := NewLine(3, 4, -5)
	plane, _ := NewHyperPlane(0.5, -0.25, 2, 1)

	encoder, err := NewCompressedEncoder(format.CompressionZstd)
	require.NoError(t, err)
	require.NoError(t, encoder.AddAll(line, plane))

	data, err := encoder.Finish()
	require.NoError(t, err)

	decoder, err := NewShapeDecoder(data)
	require.NoError(t, err)
	require.Equal(t, uint32(2), decoder.Header().ShapeCount)

	shapes, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, 2, shapes.Len())

	got, ok := shapes.At(0)
	require.True(t, ok)
	require.Equal(t, line.PrintEquation(), got.PrintEquation())

	got, ok = shapes.At(1)
	require.True(t, ok)
	require.Equal(t, plane.Coefficients(), got.Coefficients())
	require.Equal(t, 1, shapes.Find(ShapeID(plane)))
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(nil)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	_, err = Decode(make([]byte, 24))
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}
