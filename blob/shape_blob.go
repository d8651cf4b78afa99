package blob

import (
	"iter"
	"slices"

	"github.com/arloliu/lineq/format"
	"github.com/arloliu/lineq/shape"
)

// ShapeBlob is a decoded, read-only collection of shapes.
type ShapeBlob struct {
	shapes      []shape.Shape
	compression format.CompressionType
	bigEndian   bool
}

// Len returns the number of shapes in the blob.
func (b ShapeBlob) Len() int {
	return len(b.shapes)
}

// At returns the shape at index i, or false if i is out of range.
func (b ShapeBlob) At(i int) (shape.Shape, bool) {
	if i < 0 || i >= len(b.shapes) {
		return nil, false
	}

	return b.shapes[i], true
}

// All iterates over the shapes in encoding order.
func (b ShapeBlob) All() iter.Seq2[int, shape.Shape] {
	return func(yield func(int, shape.Shape) bool) {
		for i, s := range b.shapes {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Contains iterates over the shapes whose dimension matches the point and which
// contain it within shape.Epsilon. Shapes of another dimension are skipped.
func (b ShapeBlob) Contains(point ...float64) iter.Seq2[int, shape.Shape] {
	p := slices.Clone(point)

	return func(yield func(int, shape.Shape) bool) {
		for i, s := range b.shapes {
			if s.Dimension() != len(p) {
				continue
			}

			ok, err := s.BelongsToShape(p...)
			if err != nil || !ok {
				continue
			}

			if !yield(i, s) {
				return
			}
		}
	}
}

// Find returns the index of the first shape whose shape.ID equals id, or -1.
func (b ShapeBlob) Find(id uint64) int {
	return slices.IndexFunc(b.shapes, func(s shape.Shape) bool {
		return shape.ID(s) == id
	})
}

// Compression returns the compression the blob was stored with.
func (b ShapeBlob) Compression() format.CompressionType {
	return b.compression
}

// IsBigEndian reports whether the blob was stored in big-endian byte order.
func (b ShapeBlob) IsBigEndian() bool {
	return b.bigEndian
}
