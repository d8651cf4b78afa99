package shape

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/lineq/errs"
	"github.com/arloliu/lineq/internal/hash"
)

// Shape is the capability shared by every linear equation variant.
//
// Callers should read Dimension rather than switching on the concrete type to decide
// how many coordinates a point needs.
type Shape interface {
	// Kind returns the concrete variant.
	Kind() Kind
	// Dimension returns the number of coordinates a point must have.
	Dimension() int
	// Evaluate returns the value of the equation's left-hand side at point.
	Evaluate(point ...float64) (float64, error)
	// BelongsToShape reports whether point satisfies the equation within Epsilon.
	BelongsToShape(point ...float64) (bool, error)
	// PrintEquation returns the canonical "<terms> = 0" form of the equation.
	PrintEquation() string
	// Coefficients returns a copy of the coefficient vector, free term last.
	Coefficients() []float64
	// Variables returns the variable names used by PrintEquation.
	Variables() []string
}

// New creates a shape of the given kind from a coefficient vector.
//
// A KindLine requires exactly three coefficients; a KindHyperPlane requires at least two.
// Returns errs.ErrInvalidArgument for unknown kinds or invalid coefficients.
func New(kind Kind, coeffs []float64) (Shape, error) {
	switch kind {
	case KindLine:
		return lineFromCoefficients(coeffs)
	case KindHyperPlane:
		return NewHyperPlane(coeffs...)
	default:
		return nil, fmt.Errorf("%w: unknown shape kind %d", errs.ErrInvalidArgument, kind)
	}
}

// NewByName creates a shape from a case-insensitive kind name ("line" or "hyperplane").
//
// Example:
//
//	s, err := shape.NewByName("hyperplane", []float64{1, 1, 1, 1, -4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.PrintEquation()) // x1 + x2 + x3 + x4 - 4 = 0
func NewByName(name string, coeffs []float64) (Shape, error) {
	kind := KindFromString(name)
	if kind == KindUnknown {
		supported := make([]string, 0, len(kindNames))
		for _, n := range kindNames {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("%w: unknown shape kind %q, supported kinds: %s",
			errs.ErrInvalidArgument, name, strings.Join(supported, ", "))
	}

	return New(kind, coeffs)
}

// ID returns a 64-bit fingerprint of the shape's kind and exact coefficients.
//
// Shapes of the same kind with bit-identical coefficients share an ID. Equivalent but
// differently scaled equations do not; normalize first to compare geometry.
func ID(s Shape) uint64 {
	return hash.Coefficients(uint8(s.Kind()), s.Coefficients())
}
