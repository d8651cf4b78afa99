// Package lineq provides linear equations as first-class values: 2D lines, N-dimensional
// hyperplanes, and a compact binary format for storing collections of them.
//
// Every equation is kept in implicit form c1*x1 + ... + cn*xn + c(n+1) = 0. Shapes
// validate their coefficients on construction, test point membership with an absolute
// tolerance of shape.Epsilon (1e-12), and print a canonical "<terms> = 0" form.
//
// # Basic Usage
//
// Creating shapes and testing points:
//
//	import "github.com/arloliu/lineq"
//
//	line, err := lineq.NewLine(2, -4, 8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(line.PrintEquation()) // 2x - 4y + 8 = 0
//
//	ok, _ := line.BelongsToShape(0, 2) // true
//
//	plane, _ := lineq.NewHyperPlane(1, 1, 1, 1, -4)
//	fmt.Println(plane) // HyperPlane (4D): x1 + x2 + x3 + x4 - 4 = 0
//
// Storing shapes in a blob:
//
//	encoder, _ := lineq.NewCompressedEncoder(format.CompressionZstd)
//	_ = encoder.AddAll(line, plane)
//	data, _ := encoder.Finish()
//
//	shapes, _ := lineq.Decode(data)
//	for i, s := range shapes.All() {
//	    fmt.Println(i, s)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the shape and blob
// packages. For fine-grained control, use them directly:
//
//   - shape: Line, HyperPlane and the Shape interface
//   - blob: ShapeEncoder, ShapeDecoder and ShapeBlob
//   - regression: least-squares fitting of lines and hyperplanes
package lineq

import (
	"github.com/arloliu/lineq/blob"
	"github.com/arloliu/lineq/format"
	"github.com/arloliu/lineq/shape"
)

var defaultEncoderOptions = []blob.ShapeEncoderOption{
	blob.WithLittleEndian(),
	blob.WithCompression(format.CompressionNone),
}

// NewLine creates the 2D line a*x + b*y + c = 0.
//
// Returns errs.ErrInvalidArgument if a and b are both within shape.Epsilon of zero.
func NewLine(a, b, c float64) (shape.Line, error) {
	return shape.NewLine(a, b, c)
}

// NewHyperPlane creates the hyperplane c1*x1 + ... + cn*xn + c(n+1) = 0.
//
// Returns errs.ErrInvalidArgument for fewer than two coefficients or invalid values.
func NewHyperPlane(coeffs ...float64) (shape.HyperPlane, error) {
	return shape.NewHyperPlane(coeffs...)
}

// ShapeID returns the 64-bit fingerprint of a shape's kind and coefficients.
func ShapeID(s shape.Shape) uint64 {
	return shape.ID(s)
}

// NewShapeEncoder creates a shape blob encoder with custom options.
//
// Parameters:
//   - opts: Optional configuration functions (see blob.ShapeEncoderOption)
//
// Returns:
//   - *blob.ShapeEncoder: The created encoder
//   - error: An error if the configuration is invalid
//
// Available options:
//   - blob.WithLittleEndian() / blob.WithBigEndian()
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
func NewShapeEncoder(opts ...blob.ShapeEncoderOption) (*blob.ShapeEncoder, error) {
	return blob.NewShapeEncoder(opts...)
}

// NewDefaultEncoder creates a shape encoder with little-endian byte order and no
// compression.
//
// Example:
//
//	encoder, err := lineq.NewDefaultEncoder()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewDefaultEncoder() (*blob.ShapeEncoder, error) {
	return blob.NewShapeEncoder(defaultEncoderOptions...)
}

// NewCompressedEncoder creates a little-endian shape encoder that compresses its
// payload with comp.
//
// Returns errs.ErrInvalidCompression for unknown compression types.
func NewCompressedEncoder(comp format.CompressionType) (*blob.ShapeEncoder, error) {
	opts := append(append([]blob.ShapeEncoderOption(nil), defaultEncoderOptions...), blob.WithCompression(comp))
	return blob.NewShapeEncoder(opts...)
}

// NewShapeDecoder creates a decoder for reading shape blobs.
//
// Parameters:
//   - data: The raw blob bytes (from encoder.Finish() or storage)
//
// Returns:
//   - *blob.ShapeDecoder: The created decoder
//   - error: An error if the header is invalid or the data is truncated
func NewShapeDecoder(data []byte) (*blob.ShapeDecoder, error) {
	return blob.NewShapeDecoder(data)
}

// Decode parses, verifies and decodes a complete shape blob in one call.
func Decode(data []byte) (blob.ShapeBlob, error) {
	decoder, err := blob.NewShapeDecoder(data)
	if err != nil {
		return blob.ShapeBlob{}, err
	}

	return decoder.Decode()
}
