// Package blob provides a compact binary container for collections of shapes.
//
// A shape blob stores the kind and exact coefficient vector of every shape, so a
// decoded shape prints and tests points identically to the original. The payload can
// be compressed with any codec from the compress package and is protected by an
// xxHash64 checksum.
//
// # Encoding
//
//	encoder, err := blob.NewShapeEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//
//	line, _ := shape.NewLine(2, -4, 8)
//	plane, _ := shape.NewHyperPlane(1, 1, 1, 1, -4)
//	if err := encoder.AddAll(line, plane); err != nil {
//	    return err
//	}
//
//	data, err := encoder.Finish()
//
// # Decoding
//
//	decoder, err := blob.NewShapeDecoder(data)
//	if err != nil {
//	    return err
//	}
//
//	shapes, err := decoder.Decode()
//	if err != nil {
//	    return err
//	}
//
//	for i, s := range shapes.Contains(2, 3) {
//	    fmt.Println(i, s.PrintEquation())
//	}
//
// Every decoded entry is rebuilt through the validating shape constructors, so a blob
// holding an invalid coefficient vector fails with errs.ErrInvalidArgument rather than
// producing a broken shape.
//
// # Thread Safety
//
// ShapeEncoder is not safe for concurrent use and cannot be reused after Finish.
// ShapeDecoder and ShapeBlob are read-only and safe to share.
package blob
