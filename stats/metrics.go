// Package stats provides forecast accuracy metrics.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrLengthMismatch is returned when actual and predicted differ in length.
var ErrLengthMismatch = errors.New("stats: actual and predicted must have the same length")

func paired(actual, predicted []float64) error {
	if len(actual) != len(predicted) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return errors.New("stats: empty input")
	}
	return nil
}

// MSE returns the mean squared error between actual and predicted.
func MSE(actual, predicted []float64) (float64, error) {
	if err := paired(actual, predicted); err != nil {
		return 0, err
	}
	d := floats.Distance(actual, predicted, 2)
	return d * d / float64(len(actual)), nil
}

// RMSE returns the root mean squared error, in the units of the data. Zero
// means a perfect match.
func RMSE(actual, predicted []float64) (float64, error) {
	mse, err := MSE(actual, predicted)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE returns the mean absolute error.
func MAE(actual, predicted []float64) (float64, error) {
	if err := paired(actual, predicted); err != nil {
		return 0, err
	}
	return floats.Distance(actual, predicted, 1) / float64(len(actual)), nil
}

// Scores bundles the headline accuracy metrics for one evaluation.
type Scores struct {
	RMSE float64 `json:"rmse"`
	MAE  float64 `json:"mae"`
	MAPE float64 `json:"mape"`
}

// Score computes RMSE, MAE, and MAPE in one pass over a paired evaluation.
// A MAPE undefined for the data (all-zero actuals) is reported as zero rather
// than failing the other two metrics.
func Score(actual, predicted []float64) (Scores, error) {
	rmse, err := RMSE(actual, predicted)
	if err != nil {
		return Scores{}, err
	}
	mae, err := MAE(actual, predicted)
	if err != nil {
		return Scores{}, err
	}
	mape, err := MAPE(actual, predicted)
	if err != nil {
		mape = 0
	}
	return Scores{RMSE: rmse, MAE: mae, MAPE: mape}, nil
}

// MAPE returns the mean absolute percentage error. Zero actual values are
// skipped; if every actual value is zero the result is NaN-free zero with an
// error.
func MAPE(actual, predicted []float64) (float64, error) {
	if err := paired(actual, predicted); err != nil {
		return 0, err
	}

	sum := 0.0
	n := 0
	for i := range actual {
		if actual[i] == 0 {
			continue
		}
		sum += math.Abs((actual[i] - predicted[i]) / actual[i])
		n++
	}
	if n == 0 {
		return 0, errors.New("stats: MAPE undefined for all-zero actuals")
	}
	return 100 * sum / float64(n), nil
}
