// Package scale provides invertible value scaling for model training.
package scale

import (
	"errors"
	"fmt"
)

// ErrConstantSeries is returned when a scaler is fit on data whose minimum and
// maximum coincide, which would make the transform a division by zero.
var ErrConstantSeries = errors.New("scale: cannot fit on a constant series")

// ErrNotFitted is returned when Transform or Inverse is called before Fit.
var ErrNotFitted = errors.New("scale: scaler has not been fitted")

// MinMax maps values affinely into [0, 1] and remembers the observed extremes
// so the mapping can be inverted exactly.
type MinMax struct {
	Min    float64
	Max    float64
	fitted bool
}

// NewMinMax creates an unfitted min-max scaler.
func NewMinMax() *MinMax {
	return &MinMax{}
}

// Fit records the minimum and maximum of the given data.
func (m *MinMax) Fit(values []float64) error {
	if len(values) == 0 {
		return errors.New("scale: cannot fit on empty data")
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return fmt.Errorf("%w: all %d values equal %v", ErrConstantSeries, len(values), min)
	}

	m.Min = min
	m.Max = max
	m.fitted = true
	return nil
}

// Transform maps values into [0, 1] using the fitted range. Values outside the
// fitted range map outside [0, 1]; the transform stays exactly invertible.
func (m *MinMax) Transform(values []float64) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	span := m.Max - m.Min
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - m.Min) / span
	}
	return out, nil
}

// Inverse maps scaled values back into the original units.
func (m *MinMax) Inverse(scaled []float64) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	span := m.Max - m.Min
	out := make([]float64, len(scaled))
	for i, v := range scaled {
		out[i] = v*span + m.Min
	}
	return out, nil
}

// FitTransform fits on values and returns them scaled.
func (m *MinMax) FitTransform(values []float64) ([]float64, error) {
	if err := m.Fit(values); err != nil {
		return nil, err
	}
	return m.Transform(values)
}
