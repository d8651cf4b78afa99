package section

const (
	// Bit masks of the packed options field
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1), 0=little, 1=big
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3), must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicShapeV1 is the version 1 magic number of the shape blob format.
	MagicShapeV1 = 0xEC10
)

// offsets and sizes in the shape blob
const (
	HeaderSize        = 24         // fixed header size in bytes
	EntryHeaderSize   = 5          // kind (1 byte) + coefficient count (4 bytes)
	CoefficientSize   = 8          // IEEE 754 float64
	PayloadOffset     = HeaderSize // byte offset where the payload starts
	MaxPayloadSize    = 1<<32 - 1  // payload size must fit in uint32
	MaxCoefficientLen = 1<<16 - 1  // maximum coefficients per shape entry
)
