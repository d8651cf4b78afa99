package section

import (
	"github.com/arloliu/lineq/endian"
	"github.com/arloliu/lineq/errs"
	"github.com/arloliu/lineq/format"
)

// ShapeHeader is the fixed-size header at the start of a shape blob.
//
// Layout:
//
//	[0:2]   options, always little-endian (bit 1 endianness, bits 4-15 magic number)
//	[2]     payload compression type
//	[3]     reserved, must be zero
//	[4:8]   shape count
//	[8:12]  raw (uncompressed) payload size
//	[12:16] stored (possibly compressed) payload size
//	[16:24] xxHash64 checksum of the raw payload
type ShapeHeader struct {
	// Options is a packed field holding the endianness flag and magic number.
	Options uint16
	// Compression is the compression applied to the payload.
	Compression format.CompressionType
	// ShapeCount is the number of shapes stored in the payload.
	ShapeCount uint32
	// RawSize is the payload size before compression.
	RawSize uint32
	// StoredSize is the payload size as stored after the header.
	StoredSize uint32
	// Checksum is the xxHash64 of the raw payload.
	Checksum uint64
}

// NewShapeHeader creates a little-endian header with no compression.
func NewShapeHeader() *ShapeHeader {
	return &ShapeHeader{
		Options:     MagicShapeV1,
		Compression: format.CompressionNone,
	}
}

// IsBigEndian returns whether numeric fields use big-endian byte order.
func (h *ShapeHeader) IsBigEndian() bool {
	return h.Options&EndiannessMask != 0
}

// WithLittleEndian sets little-endian byte order.
func (h *ShapeHeader) WithLittleEndian() {
	h.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (h *ShapeHeader) WithBigEndian() {
	h.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness flag.
func (h *ShapeHeader) GetEndianEngine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks the magic number, reserved bits and compression type.
func (h *ShapeHeader) Validate() error {
	if h.Options&MagicNumberMask != MagicShapeV1 {
		return errs.ErrInvalidMagicNumber
	}
	if h.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidMagicNumber
	}
	if !h.Compression.Valid() {
		return errs.ErrInvalidCompression
	}

	return nil
}

// Bytes serializes the header into a HeaderSize byte slice.
func (h *ShapeHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	endian.GetLittleEndianEngine().PutUint16(b[0:2], h.Options)
	b[2] = uint8(h.Compression)

	engine := h.GetEndianEngine()
	engine.PutUint32(b[4:8], h.ShapeCount)
	engine.PutUint32(b[8:12], h.RawSize)
	engine.PutUint32(b[12:16], h.StoredSize)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// Parse parses the header from exactly HeaderSize bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not HeaderSize bytes, or validation errors
func (h *ShapeHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Options = endian.GetLittleEndianEngine().Uint16(data[0:2])
	h.Compression = format.CompressionType(data[2])
	if data[3] != 0 {
		return errs.ErrInvalidMagicNumber
	}

	engine := h.GetEndianEngine()
	h.ShapeCount = engine.Uint32(data[4:8])
	h.RawSize = engine.Uint32(data[8:12])
	h.StoredSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h.Validate()
}

// ParseShapeHeader parses a ShapeHeader from the start of data.
//
// Returns:
//   - ShapeHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or validation errors
func ParseShapeHeader(data []byte) (ShapeHeader, error) {
	if len(data) < HeaderSize {
		return ShapeHeader{}, errs.ErrInvalidHeaderSize
	}

	h := ShapeHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return ShapeHeader{}, err
	}

	return h, nil
}
