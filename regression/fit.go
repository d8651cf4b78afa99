package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/lineq/errs"
	"github.com/arloliu/lineq/internal/options"
	"github.com/arloliu/lineq/shape"
)

// FitLine fits a straight line to the samples (xs[i], ys[i]) by ordinary least squares.
//
// The fitted model y = m*x + b is returned as the line m*x - y + b = 0. Samples that
// all share one x value produce the vertical line x - x0 = 0.
//
// Parameters:
//   - xs: Sample x coordinates
//   - ys: Sample y coordinates, same length as xs
//   - opts: Fit options such as WithNormalize
//
// Returns:
//   - *Model: Fitted line with R² and RMSE
//   - error: errs.ErrInvalidArgument for mismatched lengths, fewer than 2 samples,
//     non-finite values, or identical samples
//
// Example:
//
//	model, err := regression.FitLine([]float64{0, 1, 2}, []float64{1, 3, 5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Shape) // Line (2D): 2x - y + 1 = 0
func FitLine(xs, ys []float64, opts ...FitOption) (*Model, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: mismatched data lengths: %d x vs %d y", errs.ErrInvalidArgument, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: insufficient data points for regression: %d", errs.ErrInvalidArgument, len(xs))
	}
	if err := checkFinite(xs); err != nil {
		return nil, err
	}
	if err := checkFinite(ys); err != nil {
		return nil, err
	}

	n := len(xs)
	meanX := calculateMean(xs)
	meanY := calculateMean(ys)

	var sxx, sxy float64
	for i := range n {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}

	if sxx == 0 {
		return fitVertical(xs, ys, meanX, cfg)
	}

	m := sxy / sxx
	b := meanY - m*meanX

	line, err := shape.NewLine(m, -1, b)
	if err != nil {
		return nil, err
	}
	if cfg.Normalize {
		line = line.Normalize()
	}

	predicted := make([]float64, n)
	for i := range n {
		predicted[i] = m*xs[i] + b
	}

	return &Model{
		Shape:    line,
		RSquared: calculateRSquared(ys, predicted),
		RMSE:     calculateRMSE(ys, predicted),
		Points:   n,
	}, nil
}

// fitVertical handles samples with zero x variance. The response is measured along x.
func fitVertical(xs, ys []float64, x0 float64, cfg FitConfig) (*Model, error) {
	if allEqual(ys) {
		return nil, fmt.Errorf("%w: all samples are identical, a line is not determined", errs.ErrInvalidArgument)
	}

	line, err := shape.NewLine(1, 0, -x0)
	if err != nil {
		return nil, err
	}
	if cfg.Normalize {
		line = line.Normalize()
	}

	return &Model{
		Shape:    line,
		RSquared: 1,
		RMSE:     0,
		Points:   len(xs),
	}, nil
}

// FitHyperPlane fits a hyperplane to N-dimensional samples by ordinary least squares.
//
// The last coordinate of every point is the response; the model
// x_n = w_1*x_1 + ... + w_(n-1)*x_(n-1) + b is returned as the hyperplane
// w_1*x_1 + ... + w_(n-1)*x_(n-1) - x_n + b = 0.
//
// Parameters:
//   - points: Samples, each with the same number (>= 2) of coordinates
//   - opts: Fit options such as WithNormalize
//
// Returns:
//   - *Model: Fitted hyperplane with R² and RMSE
//   - error: errs.ErrInvalidArgument for ragged or non-finite input, too few samples,
//     or predictors that are linearly dependent
func FitHyperPlane(points [][]float64, opts ...FitOption) (*Model, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no data points provided", errs.ErrInvalidArgument)
	}

	dim := len(points[0])
	if dim < 2 {
		return nil, fmt.Errorf("%w: points need at least 2 coordinates, got %d", errs.ErrInvalidArgument, dim)
	}
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, expected %d", errs.ErrInvalidArgument, i, len(p), dim)
		}
		if err := checkFinite(p); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}

	// unknowns: one weight per predictor plus the intercept
	if len(points) < dim {
		return nil, fmt.Errorf("%w: insufficient data points for regression: %d, need at least %d",
			errs.ErrInvalidArgument, len(points), dim)
	}

	k := dim - 1
	means := columnMeans(points)
	system := normalEquations(points, means)
	weights, err := solve(system, k)
	if err != nil {
		return nil, err
	}

	intercept := means[k]
	for j, w := range weights {
		intercept -= w * means[j]
	}

	coeffs := make([]float64, dim+1)
	copy(coeffs, weights)
	coeffs[dim-1] = -1
	coeffs[dim] = intercept

	plane, err := shape.NewHyperPlane(coeffs...)
	if err != nil {
		return nil, err
	}
	if cfg.Normalize {
		plane = plane.Normalize()
	}

	observed := make([]float64, len(points))
	predicted := make([]float64, len(points))
	for i, p := range points {
		observed[i] = p[dim-1]
		v := intercept
		for j, w := range weights {
			v += w * p[j]
		}
		predicted[i] = v
	}

	return &Model{
		Shape:    plane,
		RSquared: calculateRSquared(observed, predicted),
		RMSE:     calculateRMSE(observed, predicted),
		Points:   len(points),
	}, nil
}

// LineThroughPoints returns the line through (x1, y1) and (x2, y2).
//
// The coefficients are A = y2 - y1, B = x1 - x2, C = x2*y1 - x1*y2, so the direction
// from the first point to the second keeps the normal on its left.
// Returns errs.ErrInvalidArgument if the points coincide or are not finite.
func LineThroughPoints(x1, y1, x2, y2 float64) (shape.Line, error) {
	if err := checkFinite([]float64{x1, y1, x2, y2}); err != nil {
		return shape.Line{}, err
	}
	if x1 == x2 && y1 == y2 {
		return shape.Line{}, fmt.Errorf("%w: a line needs two distinct points, got (%g, %g) twice",
			errs.ErrInvalidArgument, x1, y1)
	}

	return shape.NewLine(y2-y1, x1-x2, x2*y1-x1*y2)
}

// columnMeans returns the mean of every coordinate across points.
func columnMeans(points [][]float64) []float64 {
	means := make([]float64, len(points[0]))
	for _, p := range points {
		for j, v := range p {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(len(points))
	}

	return means
}

// normalEquations builds the augmented k x (k+1) matrix of the least-squares system
// on mean-centred data, where k is the number of predictors. Column k holds the
// right-hand side. The intercept is recovered from the means after solving.
func normalEquations(points [][]float64, means []float64) [][]float64 {
	k := len(means) - 1
	m := make([][]float64, k)
	for i := range m {
		m[i] = make([]float64, k+1)
	}

	row := make([]float64, k)
	for _, p := range points {
		for j := range k {
			row[j] = p[j] - means[j]
		}
		y := p[k] - means[k]

		for i := range k {
			for j := range k {
				m[i][j] += row[i] * row[j]
			}
			m[i][k] += row[i] * y
		}
	}

	return m
}

// solve runs Gaussian elimination with partial pivoting on an augmented matrix. A pivot
// within Epsilon of the largest diagonal entry means the predictors are dependent.
func solve(m [][]float64, k int) ([]float64, error) {
	var scale float64
	for i := range k {
		scale = math.Max(scale, math.Abs(m[i][i]))
	}

	for col := range k {
		pivot := col
		for r := col + 1; r < k; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) <= shape.Epsilon*scale {
			return nil, fmt.Errorf("%w: predictors are linearly dependent", errs.ErrInvalidArgument)
		}
		m[col], m[pivot] = m[pivot], m[col]

		for r := col + 1; r < k; r++ {
			f := m[r][col] / m[col][col]
			for c := col; c <= k; c++ {
				m[r][c] -= f * m[col][c]
			}
		}
	}

	x := make([]float64, k)
	for r := k - 1; r >= 0; r-- {
		v := m[r][k]
		for c := r + 1; c < k; c++ {
			v -= m[r][c] * x[c]
		}
		x[r] = v / m[r][r]
	}

	return x, nil
}
