package blob

import (
	"fmt"

	"github.com/arloliu/lineq/errs"
	"github.com/arloliu/lineq/format"
	"github.com/arloliu/lineq/internal/options"
	"github.com/arloliu/lineq/section"
)

// MaxShapeCount is the maximum number of shapes allowed in a single blob.
const MaxShapeCount = 1 << 20

// ShapeEncoderConfig holds the header settings chosen through options.
type ShapeEncoderConfig struct {
	header *section.ShapeHeader
}

// NewShapeEncoderConfig returns the default configuration: little-endian, uncompressed.
func NewShapeEncoderConfig() *ShapeEncoderConfig {
	return &ShapeEncoderConfig{
		header: section.NewShapeHeader(),
	}
}

// Compression returns the configured payload compression.
func (c *ShapeEncoderConfig) Compression() format.CompressionType {
	return c.header.Compression
}

// IsBigEndian returns whether the blob will use big-endian byte order.
func (c *ShapeEncoderConfig) IsBigEndian() bool {
	return c.header.IsBigEndian()
}

func (c *ShapeEncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(comp))
	}
	c.header.Compression = comp

	return nil
}

// ShapeEncoderOption represents a functional option for configuring the ShapeEncoderConfig.
type ShapeEncoderOption = options.Option[*ShapeEncoderConfig]

// WithLittleEndian stores numeric fields in little-endian order (default).
func WithLittleEndian() ShapeEncoderOption {
	return options.NoError(func(c *ShapeEncoderConfig) {
		c.header.WithLittleEndian()
	})
}

// WithBigEndian stores numeric fields in big-endian order.
func WithBigEndian() ShapeEncoderOption {
	return options.NoError(func(c *ShapeEncoderConfig) {
		c.header.WithBigEndian()
	})
}

// WithCompression sets the payload compression. Returns errs.ErrInvalidCompression for
// unknown types.
func WithCompression(comp format.CompressionType) ShapeEncoderOption {
	return options.New(func(c *ShapeEncoderConfig) error {
		return c.setCompression(comp)
	})
}
