package regression

import (
	"fmt"

	"github.com/arloliu/lineq/shape"
)

// Model is the outcome of a least-squares fit.
//
// Fields:
//   - Shape: The fitted equation (a shape.Line or shape.HyperPlane)
//   - RSquared: Coefficient of determination (at most 1, higher is better)
//   - RMSE: Root mean square error of the response coordinate (lower is better)
//   - Points: Number of samples the model was fitted on
type Model struct {
	// Shape is the fitted equation.
	Shape shape.Shape
	// RSquared is the coefficient of determination.
	RSquared float64
	// RMSE is the root mean square error.
	RMSE float64
	// Points is the number of samples used.
	Points int
}

// String returns a string representation of the model.
//
// Returns:
//   - string: Formatted model information
func (m *Model) String() string {
	eq := "<nil>"
	if m.Shape != nil {
		eq = m.Shape.PrintEquation()
	}

	return fmt.Sprintf("Model{Kind: %s, R²: %.4f, RMSE: %.4f, Points: %d, Equation: %s}",
		kindOf(m.Shape), m.RSquared, m.RMSE, m.Points, eq)
}

func kindOf(s shape.Shape) shape.Kind {
	if s == nil {
		return shape.KindUnknown
	}

	return s.Kind()
}
