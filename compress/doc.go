// Package compress provides the payload codecs used by the shape blob format.
//
// A shape blob payload is a run of fixed-size float64 coefficients, which compresses
// well when many shapes share values (unit normals, zero terms, repeated offsets). The
// package supports:
//   - None: no compression
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// Zstd uses the pure Go github.com/klauspost/compress/zstd implementation by default.
// Building with cgo enabled and the "gozstd" build tag switches to the cgo binding
// github.com/valyala/gozstd.
//
// All codecs are stateless values and safe for concurrent use. Use GetCodec to obtain a
// shared built-in codec or CreateCodec to construct a fresh one.
package compress
