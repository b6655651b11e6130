package dataset

import (
	"fmt"
	"math"
)

// Align places a prediction slice at offset within a buffer of length n.
// Every other position holds NaN, the explicit "no value here" marker, so the
// result can be overlaid on the original series and plotting layers simply
// skip the gaps.
func Align(n, offset int, preds []float64) ([]float64, error) {
	if offset < 0 || offset+len(preds) > n {
		return nil, fmt.Errorf("dataset: predictions [%d, %d) do not fit in buffer of length %d",
			offset, offset+len(preds), n)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	copy(out[offset:offset+len(preds)], preds)
	return out, nil
}

// TrainPredictionOffset is where train-set predictions start on the original
// timeline: the first prediction targets the observation right after the
// first full window.
func TrainPredictionOffset(lookback int) int {
	return lookback
}

// TestPredictionOffset is where test-set predictions start on the original
// timeline. The test partition begins at trainLen, and its first prediction
// targets the observation after the first full test window, so the offset
// carries the window size past the split point. Train predictions end at
// trainLen-1, leaving a lookback+1 gap that keeps the overlays from
// overlapping.
func TestPredictionOffset(trainLen, lookback int) int {
	return trainLen + lookback
}
