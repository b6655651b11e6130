package plot

import (
	"encoding/json"
	"math"
	"os"

	"github.com/seqfit/golstm/stats"
)

// Export is the JSON document written next to the chart so external tooling
// can re-plot or diff runs. Scores are in original units.
type Export struct {
	Name        string       `json:"name"`
	NObs        int          `json:"n_obs"`
	Lookback    int          `json:"lookback"`
	TrainScores stats.Scores `json:"train_scores"`
	TestScores  stats.Scores `json:"test_scores"`
	Original    []float64  `json:"original"`
	TrainPred   []*float64 `json:"train_predictions"`
	TestPred    []*float64 `json:"test_predictions"`
	LossHistory []float64  `json:"loss_history,omitempty"`
}

// Nullable converts an alignment buffer into a pointer slice where NaN
// becomes null, since encoding/json refuses NaN outright.
func Nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if math.IsNaN(values[i]) {
			continue
		}
		v := values[i]
		out[i] = &v
	}
	return out
}

// WriteJSON marshals the export with indentation and writes it to path.
func WriteJSON(e *Export, path string) error {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
