package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/lineq/compress"
	"github.com/arloliu/lineq/endian"
	"github.com/arloliu/lineq/errs"
	"github.com/arloliu/lineq/internal/hash"
	"github.com/arloliu/lineq/internal/options"
	"github.com/arloliu/lineq/internal/pool"
	"github.com/arloliu/lineq/section"
	"github.com/arloliu/lineq/shape"
)

// ShapeEncoder encodes shapes into the binary shape blob format.
//
// Note: The ShapeEncoder is NOT thread-safe and NOT reusable. After calling Finish, a
// new encoder must be created for further encoding.
type ShapeEncoder struct {
	*ShapeEncoderConfig

	engine   endian.EndianEngine
	codec    compress.Codec
	payload  *pool.ByteBuffer
	count    int
	finished bool
}

// NewShapeEncoder creates a new shape encoder.
//
// Available options:
//   - WithLittleEndian() / WithBigEndian()
//   - WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//
// Returns an error if an option is invalid.
func NewShapeEncoder(opts ...ShapeEncoderOption) (*ShapeEncoder, error) {
	cfg := NewShapeEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.header.Compression, "payload")
	if err != nil {
		return nil, err
	}

	return &ShapeEncoder{
		ShapeEncoderConfig: cfg,
		engine:             cfg.header.GetEndianEngine(),
		codec:              codec,
		payload:            pool.GetPayloadBuffer(),
	}, nil
}

// Len returns the number of shapes added so far.
func (e *ShapeEncoder) Len() int {
	return e.count
}

// Add appends a shape to the blob.
//
// Returns:
//   - errs.ErrEncoderFinished if Finish was already called
//   - errs.ErrInvalidArgument for a nil shape
//   - errs.ErrInvalidShapeKind if the shape reports an unknown kind
//   - errs.ErrShapeCountExceeded if MaxShapeCount or the payload size limit is reached
func (e *ShapeEncoder) Add(s shape.Shape) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if s == nil {
		return fmt.Errorf("%w: nil shape", errs.ErrInvalidArgument)
	}
	if e.count >= MaxShapeCount {
		return fmt.Errorf("%w: max %d", errs.ErrShapeCountExceeded, MaxShapeCount)
	}

	kind := s.Kind()
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidShapeKind, uint8(kind))
	}

	coeffs := s.Coefficients()
	if len(coeffs) > section.MaxCoefficientLen {
		return fmt.Errorf("%w: %d coefficients exceed the per-shape limit of %d",
			errs.ErrInvalidArgument, len(coeffs), section.MaxCoefficientLen)
	}

	entrySize := section.EntryHeaderSize + len(coeffs)*section.CoefficientSize
	if uint64(e.payload.Len())+uint64(entrySize) > section.MaxPayloadSize {
		return fmt.Errorf("%w: payload would exceed %d bytes", errs.ErrShapeCountExceeded, uint64(section.MaxPayloadSize))
	}

	e.payload.Grow(entrySize)
	buf := e.payload.B
	buf = append(buf, uint8(kind))
	buf = e.engine.AppendUint32(buf, uint32(len(coeffs))) //nolint:gosec // bounded by MaxCoefficientLen
	for _, c := range coeffs {
		buf = e.engine.AppendUint64(buf, math.Float64bits(c))
	}
	e.payload.B = buf
	e.count++

	return nil
}

// AddAll appends shapes in order and stops at the first error.
func (e *ShapeEncoder) AddAll(shapes ...shape.Shape) error {
	for i, s := range shapes {
		if err := e.Add(s); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}

	return nil
}

// Finish compresses the payload and returns the complete blob bytes.
//
// The encoder releases its buffer and cannot be used afterwards.
func (e *ShapeEncoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	defer func() {
		pool.PutPayloadBuffer(e.payload)
		e.payload = nil
	}()

	raw := e.payload.Bytes()
	stored, err := e.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to compress shape payload: %w", err)
	}
	if uint64(len(stored)) > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: compressed payload exceeds %d bytes", errs.ErrShapeCountExceeded, uint64(section.MaxPayloadSize))
	}

	header := *e.header
	header.ShapeCount = uint32(e.count)     //nolint:gosec // bounded by MaxShapeCount
	header.RawSize = uint32(len(raw))       //nolint:gosec // bounded by MaxPayloadSize
	header.StoredSize = uint32(len(stored)) //nolint:gosec // checked above
	header.Checksum = hash.Bytes(raw)

	out := make([]byte, 0, section.HeaderSize+len(stored))
	out = append(out, header.Bytes()...)
	out = append(out, stored...)

	return out, nil
}
