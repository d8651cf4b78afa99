// Package shape models linear geometric objects defined by a coefficient vector.
//
// A coefficient vector [c1, ..., cn, cfree] describes the linear equation
//
//	c1*x1 + c2*x2 + ... + cn*xn + cfree = 0
//
// where n is the dimension of the shape. Two variants are provided:
//
//   - Line: a 2D line A*x + B*y + C = 0, with A and B not both zero
//   - HyperPlane: an N-dimensional hyperplane, N >= 1
//
// Both satisfy the Shape interface, which is all a caller needs to test points and
// print equations without knowing the concrete variant:
//
//	line, err := shape.NewLine(2, -4, 8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var s shape.Shape = line
//	ok, err := s.BelongsToShape(2, 3) // true: 2*2 - 4*3 + 8 = 0
//	fmt.Println(s.PrintEquation())    // 2x - 4y + 8 = 0
//
// # Tolerance
//
// Every zero and equality comparison uses the fixed tolerance Epsilon (1e-12). A point
// belongs to a shape iff the absolute value of the evaluated equation is below Epsilon.
//
// # Errors
//
// All validation failures wrap errs.ErrInvalidArgument and are reported eagerly, either
// at construction or when a point with the wrong number of coordinates is evaluated.
//
// # Thread Safety
//
// Shapes are immutable after construction. Coefficients are copied on the way in and on
// the way out, so values may be shared between goroutines without locking.
package shape
