package pipeline

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqfit/golstm/config"
	"github.com/seqfit/golstm/dataset"
)

// writeSyntheticCSV writes a smooth trending series, easy for a small model
// to fit in few epochs.
func writeSyntheticCSV(t *testing.T, n int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "series.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	fmt.Fprintln(f, "Month,Value")
	for i := 0; i < n; i++ {
		v := 100 + float64(i)*2 + 20*math.Sin(float64(i)/6)
		fmt.Fprintf(f, "%d,%.4f\n", i+1, v)
	}
	return path
}

func testConfig(path string) *config.Config {
	cfg := config.Default()
	cfg.Data.Path = path
	cfg.Model.Epochs = 15
	cfg.Model.Lookback = 2
	cfg.Model.HiddenSize = 3
	return cfg
}

func TestRunEndToEnd(t *testing.T) {
	path := writeSyntheticCSV(t, 80)
	cfg := testConfig(path)

	res, err := Run(cfg, zerolog.Nop())
	require.NoError(t, err)

	n := res.Series.Len()
	assert.Equal(t, 80, n)
	assert.Len(t, res.TrainAligned, n)
	assert.Len(t, res.TestAligned, n)

	assert.False(t, math.IsNaN(res.TrainScores.RMSE))
	assert.Greater(t, res.TrainScores.RMSE, 0.0)
	assert.Greater(t, res.TestScores.RMSE, 0.0)

	// The overlays hold exactly one value per prediction, at the right spots.
	trainCount := dataset.WindowCount(res.TrainLen, res.Lookback)
	testCount := dataset.WindowCount(n-res.TrainLen, res.Lookback)

	countValues := func(buf []float64) int {
		c := 0
		for _, v := range buf {
			if !math.IsNaN(v) {
				c++
			}
		}
		return c
	}
	assert.Equal(t, trainCount, countValues(res.TrainAligned))
	assert.Equal(t, testCount, countValues(res.TestAligned))

	// Overlays never overlap: no position carries both a train and a test
	// prediction.
	for i := 0; i < n; i++ {
		both := !math.IsNaN(res.TrainAligned[i]) && !math.IsNaN(res.TestAligned[i])
		assert.False(t, both, "overlap at position %d", i)
	}
}

func TestRunPredictionsInOriginalUnits(t *testing.T) {
	path := writeSyntheticCSV(t, 80)
	cfg := testConfig(path)
	cfg.Model.Epochs = 30

	res, err := Run(cfg, zerolog.Nop())
	require.NoError(t, err)

	// Scaled-space predictions live near [0,1]; original units here are in
	// the hundreds. A value above 50 proves the inverse transform ran.
	found := false
	for _, v := range res.TrainAligned {
		if !math.IsNaN(v) {
			assert.Greater(t, v, 50.0)
			found = true
		}
	}
	assert.True(t, found, "expected at least one train prediction")
}

func TestRunFitOnFullMatchesNotebookBehavior(t *testing.T) {
	path := writeSyntheticCSV(t, 80)

	cfg := testConfig(path)
	cfg.Scaler.FitOnFull = true

	res, err := Run(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Greater(t, res.TestScores.RMSE, 0.0)
}

func TestRunMissingFile(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.csv"))
	_, err := Run(cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestRunConstantSeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	fmt.Fprintln(f, "Month,Value")
	for i := 0; i < 40; i++ {
		fmt.Fprintf(f, "%d,7\n", i+1)
	}
	f.Close()

	cfg := testConfig(path)
	_, err = Run(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constant")
}

func TestRunLookbackTooLarge(t *testing.T) {
	path := writeSyntheticCSV(t, 30)
	cfg := testConfig(path)
	cfg.Model.Lookback = 25

	_, err := Run(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookback")
}
