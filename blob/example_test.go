package blob_test

import (
	"fmt"
	"log"

	"github.com/arloliu/lineq/blob"
	"github.com/arloliu/lineq/format"
	"github.com/arloliu/lineq/shape"
)

// ExampleNewShapeEncoder demonstrates encoding shapes and reading them back.
func ExampleNewShapeEncoder() {
	encoder, err := blob.NewShapeEncoder(blob.WithCompression(format.CompressionS2))
	if err != nil {
		log.Fatal(err)
	}

	line, _ := shape.NewLine(2, -4, 8)
	plane, _ := shape.NewHyperPlane(1, 1, 1, 1, -4)
	if err := encoder.AddAll(line, plane); err != nil {
		log.Fatal(err)
	}

	data, err := encoder.Finish()
	if err != nil {
		log.Fatal(err)
	}

	decoder, err := blob.NewShapeDecoder(data)
	if err != nil {
		log.Fatal(err)
	}

	shapes, err := decoder.Decode()
	if err != nil {
		log.Fatal(err)
	}

	for i, s := range shapes.All() {
		fmt.Println(i, s)
	}

	// Output:
	// 0 Line (2D): 2x - 4y + 8 = 0
	// 1 HyperPlane (4D): x1 + x2 + x3 + x4 - 4 = 0
}

// ExampleShapeBlob_Contains lists the shapes that pass through a point.
func ExampleShapeBlob_Contains() {
	encoder, _ := blob.NewShapeEncoder()

	diagonal, _ := shape.NewLine(1, -1, 0)
	horizontal, _ := shape.NewLine(0, 1, -2)
	vertical, _ := shape.NewLine(1, 0, -3)
	_ = encoder.AddAll(diagonal, horizontal, vertical)

	data, _ := encoder.Finish()
	decoder, _ := blob.NewShapeDecoder(data)
	shapes, _ := decoder.Decode()

	for _, s := range shapes.Contains(2, 2) {
		fmt.Println(s.PrintEquation())
	}

	// Output:
	// x - y = 0
	// y - 2 = 0
}
