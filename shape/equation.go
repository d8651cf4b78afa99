package shape

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/lineq/errs"
)

// Epsilon is the tolerance used for every zero and equality comparison.
const Epsilon = 1e-12

// roundingLimit is the magnitude above which float64 carries no fractional digits,
// so rounding to three decimals is skipped.
const roundingLimit = 1 << 52

// equation holds the coefficient vector [c1..cn, cfree] shared by every shape variant.
// The slice is owned exclusively and never mutated after construction.
type equation struct {
	coeffs []float64
}

// newEquation validates coeffs and returns an equation owning a copy of them.
//
// Returns errs.ErrInvalidArgument if coeffs is empty, holds a non-finite value, or
// every entry is within Epsilon of zero.
func newEquation(coeffs []float64) (equation, error) {
	if len(coeffs) == 0 {
		return equation{}, fmt.Errorf("%w: at least one coefficient must be provided", errs.ErrInvalidArgument)
	}

	allZero := true
	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return equation{}, fmt.Errorf("%w: coefficient %d is not finite: %v", errs.ErrInvalidArgument, i, c)
		}
		if math.Abs(c) >= Epsilon {
			allZero = false
		}
	}
	if allZero {
		return equation{}, fmt.Errorf("%w: all coefficients cannot be zero", errs.ErrInvalidArgument)
	}

	return equation{coeffs: slices.Clone(coeffs)}, nil
}

// Dimension returns the number of variables, len(coefficients) - 1.
func (e equation) Dimension() int {
	return len(e.coeffs) - 1
}

// Coefficients returns a copy of the full coefficient vector, free term last.
func (e equation) Coefficients() []float64 {
	return slices.Clone(e.coeffs)
}

// Normal returns a copy of the leading (variable) coefficients.
func (e equation) Normal() []float64 {
	if len(e.coeffs) == 0 {
		return nil
	}

	return slices.Clone(e.coeffs[:len(e.coeffs)-1])
}

// FreeTerm returns the constant term of the equation.
func (e equation) FreeTerm() float64 {
	if len(e.coeffs) == 0 {
		return 0
	}

	return e.coeffs[len(e.coeffs)-1]
}

// Evaluate computes c1*p1 + ... + cn*pn + cfree for the given point.
//
// Returns errs.ErrInvalidArgument if len(point) differs from Dimension.
func (e equation) Evaluate(point ...float64) (float64, error) {
	n := e.Dimension()
	if n < 0 || len(point) != n {
		return 0, fmt.Errorf("%w: expected %d coordinates, got %d", errs.ErrInvalidArgument, n, len(point))
	}

	var sum float64
	for i, x := range point {
		sum += e.coeffs[i] * x
	}

	return sum + e.coeffs[n], nil
}

// BelongsToShape reports whether point satisfies the equation, i.e. whether the
// absolute value of Evaluate(point) is below Epsilon.
func (e equation) BelongsToShape(point ...float64) (bool, error) {
	v, err := e.Evaluate(point...)
	if err != nil {
		return false, err
	}

	return math.Abs(v) < Epsilon, nil
}

// scaled returns a new equation with every coefficient divided by div.
func (e equation) scaled(div float64) equation {
	out := make([]float64, len(e.coeffs))
	for i, c := range e.coeffs {
		out[i] = c / div
	}

	return equation{coeffs: out}
}

// formatEquation renders the canonical "<terms> = 0" form using names[i] for the
// i-th variable. len(names) must equal Dimension.
//
// Terms are kept or dropped by comparing against Epsilon before rounding, so a
// coefficient such as 0.0004 still prints as "0x" and 1.0004 prints as "1x".
func (e equation) formatEquation(names []string) string {
	var sb strings.Builder

	n := e.Dimension()
	for i := 0; i < n; i++ {
		c := e.coeffs[i]
		if math.Abs(c) < Epsilon {
			continue
		}

		writeSign(&sb, c)
		if math.Abs(math.Abs(c)-1) >= Epsilon {
			sb.WriteString(formatMagnitude(c))
		}
		sb.WriteString(names[i])
	}

	if free := e.FreeTerm(); math.Abs(free) >= Epsilon {
		writeSign(&sb, free)
		sb.WriteString(formatMagnitude(free))
	}

	if sb.Len() == 0 {
		sb.WriteString("0")
	}
	sb.WriteString(" = 0")

	return sb.String()
}

// writeSign writes the separator for a term with coefficient c. The first term only
// carries a "- " prefix when negative.
func writeSign(sb *strings.Builder, c float64) {
	switch {
	case sb.Len() == 0:
		if c < 0 {
			sb.WriteString("- ")
		}
	case c < 0:
		sb.WriteString(" - ")
	default:
		sb.WriteString(" + ")
	}
}

// formatMagnitude renders |c| rounded to three decimal places without trailing zeros.
func formatMagnitude(c float64) string {
	m := math.Abs(c)
	if m < roundingLimit {
		m = math.Round(m*1000) / 1000
	}

	return strconv.FormatFloat(m, 'f', -1, 64)
}

// euclideanNorm returns the Euclidean norm of v, scaled to avoid overflow for large
// components.
func euclideanNorm(v []float64) float64 {
	var scale float64
	for _, x := range v {
		scale = max(scale, math.Abs(x))
	}
	if scale == 0 || math.IsInf(scale, 0) {
		return scale
	}

	var sum float64
	for _, x := range v {
		r := x / scale
		sum += r * r
	}

	return scale * math.Sqrt(sum)
}
