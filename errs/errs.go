// Package errs defines the sentinel errors returned by lineq packages.
//
// Callers should match errors with errors.Is; most errors are wrapped with
// additional context describing the violated constraint.
package errs

import "errors"

// ErrInvalidArgument is the single error kind of the shape core. It is returned when
// a coefficient vector or a point violates an equation invariant.
var ErrInvalidArgument = errors.New("invalid argument")

// Shape blob errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid header size")
	ErrInvalidMagicNumber  = errors.New("invalid magic number")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrInvalidShapeKind    = errors.New("invalid shape kind")
	ErrTruncatedPayload    = errors.New("truncated payload")
	ErrChecksumMismatch    = errors.New("payload checksum mismatch")
	ErrShapeCountExceeded  = errors.New("shape count exceeded")
	ErrShapeCountMismatch  = errors.New("shape count mismatch")
	ErrEncoderFinished     = errors.New("encoder already finished")
	ErrPayloadSizeMismatch = errors.New("payload size mismatch")
)
