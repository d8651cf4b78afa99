// Package regression fits linear shapes to observed points with least squares.
//
// It turns raw measurements into the equations of the shape package: a straight line
// through noisy 2D samples, or a hyperplane through N-D samples whose last coordinate
// depends linearly on the others.
//
// # Usage Patterns
//
// ## Fitting a Line
//
//	xs := []float64{0, 1, 2, 3}
//	ys := []float64{1, 3, 5, 7}
//	model, err := regression.FitLine(xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Shape.PrintEquation()) // 2x - y + 1 = 0
//
// ## Fitting a HyperPlane
//
// Each point carries N coordinates; the last one is treated as the response:
//
//	points := [][]float64{{0, 0, 1}, {1, 0, 3}, {0, 1, 4}, {1, 1, 6}}
//	model, err := regression.FitHyperPlane(points)
//
// ## Through Exact Points
//
// LineThroughPoints builds the unique line through two distinct points without any
// fitting:
//
//	line, err := regression.LineThroughPoints(1, 2, 3, 4)
//
// # Goodness of Fit
//
// Every Model reports R² (coefficient of determination) and RMSE (root mean square
// error) measured along the response coordinate. A vertical line fitted to samples that
// share a single x value has R² of 1 and RMSE of 0 when every sample lies on it.
//
// # Options
//
// WithNormalize(true) returns the fitted equation with a unit-length normal vector, the
// same form shape.Line.Normalize produces.
package regression
