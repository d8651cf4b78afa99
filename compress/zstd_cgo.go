//go:build cgo && gozstd

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/valyala/gozstd"
)

// zstdLevel matches the default level of the pure Go encoder.
const zstdLevel = 3

// Compress compresses the input data using the cgo zstd binding.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses Zstd data using the cgo zstd binding.
//
// Frames that declare a content size above maxDecompressedSize are rejected before
// decoding; output is capped at the same bound for frames that do not declare one.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var header zstd.Header
	if err := header.Decode(data); err == nil && header.HasFCS && header.FrameContentSize > maxDecompressedSize {
		return nil, fmt.Errorf("zstd decompression failed: frame declares %d bytes, limit is %d",
			header.FrameContentSize, maxDecompressedSize)
	}

	reader := gozstd.NewReader(bytes.NewReader(data))
	defer reader.Release()

	decompressed, err := io.ReadAll(io.LimitReader(reader, maxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(decompressed) > maxDecompressedSize {
		return nil, fmt.Errorf("zstd decompression failed: output exceeds limit of %d bytes", maxDecompressedSize)
	}

	return decompressed, nil
}
