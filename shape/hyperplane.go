package shape

import (
	"fmt"
	"strconv"

	"github.com/arloliu/lineq/errs"
)

// HyperPlane is the N-dimensional hyperplane c1*x1 + ... + cn*xn + cfree = 0, N >= 1.
type HyperPlane struct {
	equation
}

var _ Shape = HyperPlane{}

// NewHyperPlane creates a hyperplane from n+1 coefficients, free term last.
//
// Returns errs.ErrInvalidArgument if fewer than two coefficients are given or if every
// coefficient is within Epsilon of zero.
func NewHyperPlane(coeffs ...float64) (HyperPlane, error) {
	eq, err := newEquation(coeffs)
	if err != nil {
		return HyperPlane{}, err
	}

	if eq.Dimension() < 1 {
		return HyperPlane{}, fmt.Errorf("%w: a hyperplane requires dimension >= 1, got %d",
			errs.ErrInvalidArgument, eq.Dimension())
	}

	return HyperPlane{equation: eq}, nil
}

// Kind returns KindHyperPlane.
func (h HyperPlane) Kind() Kind {
	return KindHyperPlane
}

// Variables returns the generated variable names x1, x2, ..., xn.
func (h HyperPlane) Variables() []string {
	n := h.Dimension()
	if n < 1 {
		return nil
	}

	names := make([]string, n)
	for i := range names {
		names[i] = "x" + strconv.Itoa(i+1)
	}

	return names
}

// PrintEquation returns the canonical equation, e.g. "x1 + x2 + x3 + x4 - 4 = 0".
func (h HyperPlane) PrintEquation() string {
	return h.formatEquation(h.Variables())
}

// String returns the equation prefixed with a type label carrying the dimension.
func (h HyperPlane) String() string {
	return fmt.Sprintf("HyperPlane (%dD): %s", h.Dimension(), h.PrintEquation())
}

// Normalize returns a new HyperPlane whose coefficients are divided by the Euclidean
// norm of the normal vector (c1..cn). The receiver is returned unchanged if that norm
// is within Epsilon of zero.
func (h HyperPlane) Normalize() HyperPlane {
	n := h.Dimension()
	if n < 1 {
		return h
	}

	norm := euclideanNorm(h.coeffs[:n])
	if norm < Epsilon {
		return h
	}

	return HyperPlane{equation: h.scaled(norm)}
}
