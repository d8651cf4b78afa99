package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/lineq/compress"
	"github.com/arloliu/lineq/endian"
	"github.com/arloliu/lineq/errs"
	"github.com/arloliu/lineq/internal/hash"
	"github.com/arloliu/lineq/section"
	"github.com/arloliu/lineq/shape"
)

// ShapeDecoder decodes shape blobs produced by ShapeEncoder.
type ShapeDecoder struct {
	header section.ShapeHeader
	engine endian.EndianEngine
	data   []byte
}

// NewShapeDecoder parses and validates the blob header.
//
// Parameters:
//   - data: Complete blob bytes (header followed by the stored payload)
//
// Returns:
//   - *ShapeDecoder: Decoder ready to call Decode
//   - error: Header errors, or errs.ErrTruncatedPayload if data is shorter than the header claims
func NewShapeDecoder(data []byte) (*ShapeDecoder, error) {
	header, err := section.ParseShapeHeader(data)
	if err != nil {
		return nil, err
	}

	if uint64(len(data)-section.HeaderSize) != uint64(header.StoredSize) {
		return nil, fmt.Errorf("%w: header declares %d payload bytes, got %d",
			errs.ErrTruncatedPayload, header.StoredSize, len(data)-section.HeaderSize)
	}

	return &ShapeDecoder{
		header: header,
		engine: header.GetEndianEngine(),
		data:   data,
	}, nil
}

// Header returns a copy of the parsed header.
func (d *ShapeDecoder) Header() section.ShapeHeader {
	return d.header
}

// Decode decompresses the payload, verifies its checksum and rebuilds every shape.
func (d *ShapeDecoder) Decode() (ShapeBlob, error) {
	codec, err := compress.GetCodec(d.header.Compression)
	if err != nil {
		return ShapeBlob{}, err
	}

	raw, err := codec.Decompress(d.data[section.PayloadOffset:])
	if err != nil {
		return ShapeBlob{}, fmt.Errorf("failed to decompress shape payload: %w", err)
	}

	if uint64(len(raw)) != uint64(d.header.RawSize) {
		return ShapeBlob{}, fmt.Errorf("%w: header declares %d bytes, got %d",
			errs.ErrPayloadSizeMismatch, d.header.RawSize, len(raw))
	}

	if hash.Bytes(raw) != d.header.Checksum {
		return ShapeBlob{}, errs.ErrChecksumMismatch
	}

	shapes, err := d.decodeEntries(raw)
	if err != nil {
		return ShapeBlob{}, err
	}

	return ShapeBlob{
		shapes:      shapes,
		compression: d.header.Compression,
		bigEndian:   d.header.IsBigEndian(),
	}, nil
}

func (d *ShapeDecoder) decodeEntries(raw []byte) ([]shape.Shape, error) {
	if d.header.ShapeCount > MaxShapeCount {
		return nil, fmt.Errorf("%w: header declares %d shapes", errs.ErrShapeCountExceeded, d.header.ShapeCount)
	}
	count := int(d.header.ShapeCount)

	shapes := make([]shape.Shape, 0, entryCapacity(count, len(raw)))
	offset := 0
	for i := range count {
		if len(raw)-offset < section.EntryHeaderSize {
			return nil, fmt.Errorf("%w: entry %d header", errs.ErrTruncatedPayload, i)
		}

		kind := shape.Kind(raw[offset])
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: entry %d has kind %d", errs.ErrInvalidShapeKind, i, raw[offset])
		}

		n := uint64(d.engine.Uint32(raw[offset+1 : offset+section.EntryHeaderSize]))
		offset += section.EntryHeaderSize

		if n > section.MaxCoefficientLen || n*section.CoefficientSize > uint64(len(raw)-offset) {
			return nil, fmt.Errorf("%w: entry %d declares %d coefficients", errs.ErrTruncatedPayload, i, n)
		}

		coeffs := make([]float64, n)
		for j := range coeffs {
			coeffs[j] = math.Float64frombits(d.engine.Uint64(raw[offset : offset+section.CoefficientSize]))
			offset += section.CoefficientSize
		}

		s, err := shape.New(kind, coeffs)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		shapes = append(shapes, s)
	}

	if offset != len(raw) {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d shapes",
			errs.ErrShapeCountMismatch, len(raw)-offset, count)
	}

	return shapes, nil
}

// entryCapacity bounds the declared shape count by the entries rawLen bytes can hold.
func entryCapacity(count, rawLen int) int {
	return min(count, rawLen/section.EntryHeaderSize)
}
