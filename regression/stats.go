package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/lineq/errs"
)

// calculateRSquared calculates the coefficient of determination.
//
// Parameters:
//   - observed: Observed response values
//   - predicted: Predicted response values
//
// Returns:
//   - float64: 1 - SS_res/SS_tot, or 1 when the observations are constant and
//     perfectly predicted, 0 when they are constant but not
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	var ssTot, ssRes float64
	for i, y := range observed {
		ssTot += (y - mean) * (y - mean)
		r := y - predicted[i]
		ssRes += r * r
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}

		return 0
	}

	return 1 - ssRes/ssTot
}

// calculateRMSE calculates the root mean square error.
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	var sumSq float64
	for i, y := range observed {
		r := y - predicted[i]
		sumSq += r * r
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

// calculateMean calculates the arithmetic mean (0 for an empty slice).
func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func checkFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: value %d is not finite: %v", errs.ErrInvalidArgument, i, v)
		}
	}

	return nil
}

func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}

	return true
}
