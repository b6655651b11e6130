// Package dataset turns flat ordered series into supervised learning samples
// and aligns model output back onto the original timeline.
package dataset

import "fmt"

// Windows converts a scaled series into paired (input-window, target) samples
// for one-step-ahead supervised learning.
//
// Given a series S of length n and a lookback k, it returns X of length n-k-1
// where X[i] = S[i:i+k], and Y of length n-k-1 where Y[i] = S[i+k]. The final
// observation is never used as a target, matching the n-k-1 bound. A target is
// never visible inside its own input window.
//
// If n <= k+1 there is not enough data for a single pair and both outputs are
// empty; callers decide whether that is a configuration error. Output order
// matches input order and the transformation is deterministic.
func Windows(series []float64, lookback int) (X [][]float64, Y []float64) {
	n := len(series)
	if lookback < 1 || n <= lookback+1 {
		return [][]float64{}, []float64{}
	}

	count := n - lookback - 1
	X = make([][]float64, count)
	Y = make([]float64, count)
	for i := 0; i < count; i++ {
		w := make([]float64, lookback)
		copy(w, series[i:i+lookback])
		X[i] = w
		Y[i] = series[i+lookback]
	}
	return X, Y
}

// Split partitions values into a contiguous prefix and suffix by ratio,
// preserving temporal order. A shuffled split would leak future observations
// into training.
func Split(values []float64, ratio float64) (train, test []float64) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	cut := int(ratio * float64(len(values)))

	train = make([]float64, cut)
	copy(train, values[:cut])
	test = make([]float64, len(values)-cut)
	copy(test, values[cut:])
	return train, test
}

// WindowCount reports how many supervised pairs Windows will produce for a
// series of length n, clamped at zero.
func WindowCount(n, lookback int) int {
	if lookback < 1 || n <= lookback+1 {
		return 0
	}
	return n - lookback - 1
}

// Validate checks that a lookback leaves at least one supervised pair in both
// partitions of a series of length n split at ratio. Training on an empty set
// is a configuration error, not something to proceed with silently.
func Validate(n, lookback int, ratio float64) error {
	cut := int(ratio * float64(n))
	if WindowCount(cut, lookback) == 0 {
		return fmt.Errorf("dataset: lookback %d leaves no training pairs (train length %d)", lookback, cut)
	}
	if WindowCount(n-cut, lookback) == 0 {
		return fmt.Errorf("dataset: lookback %d leaves no test pairs (test length %d)", lookback, n-cut)
	}
	return nil
}
