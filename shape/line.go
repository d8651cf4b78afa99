package shape

import (
	"fmt"
	"math"

	"github.com/arloliu/lineq/errs"
)

// lineCoefficientCount is the number of coefficients (A, B, C) of a line.
const lineCoefficientCount = 3

// Line is the 2D line A*x + B*y + C = 0. A and B are never both zero.
type Line struct {
	equation
}

var _ Shape = Line{}

// NewLine creates the line a*x + b*y + c = 0.
//
// Returns errs.ErrInvalidArgument if all coefficients are zero or if a and b are both
// within Epsilon of zero.
func NewLine(a, b, c float64) (Line, error) {
	return lineFromCoefficients([]float64{a, b, c})
}

func lineFromCoefficients(coeffs []float64) (Line, error) {
	if len(coeffs) != lineCoefficientCount {
		return Line{}, fmt.Errorf("%w: a line requires exactly %d coefficients, got %d",
			errs.ErrInvalidArgument, lineCoefficientCount, len(coeffs))
	}

	eq, err := newEquation(coeffs)
	if err != nil {
		return Line{}, err
	}

	if math.Abs(coeffs[0]) < Epsilon && math.Abs(coeffs[1]) < Epsilon {
		return Line{}, fmt.Errorf("%w: coefficients A and B of a line cannot both be zero", errs.ErrInvalidArgument)
	}

	return Line{equation: eq}, nil
}

// Kind returns KindLine.
func (l Line) Kind() Kind {
	return KindLine
}

// Variables returns the variable names {"x", "y"}.
func (l Line) Variables() []string {
	return []string{"x", "y"}
}

// PrintEquation returns the canonical equation, e.g. "2x - 4y + 8 = 0".
func (l Line) PrintEquation() string {
	return l.formatEquation(l.Variables())
}

// String returns the equation prefixed with a type label.
func (l Line) String() string {
	return "Line (2D): " + l.PrintEquation()
}

// Normalize returns a new Line whose coefficients are divided by sqrt(A² + B²), so the
// normal vector (A, B) has unit length. The receiver is returned unchanged if that norm
// is within Epsilon of zero.
func (l Line) Normalize() Line {
	if len(l.coeffs) != lineCoefficientCount {
		return l
	}

	norm := math.Hypot(l.coeffs[0], l.coeffs[1])
	if norm < Epsilon {
		return l
	}

	return Line{equation: l.scaled(norm)}
}
