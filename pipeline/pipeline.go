// Package pipeline orchestrates the full fit-and-evaluate flow: load, scale,
// window, train, predict, score, and align for display.
package pipeline

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/seqfit/golstm/config"
	"github.com/seqfit/golstm/dataset"
	"github.com/seqfit/golstm/lstm"
	"github.com/seqfit/golstm/scale"
	"github.com/seqfit/golstm/stats"
	"github.com/seqfit/golstm/timeseries"
)

// Result holds everything a caller needs to report on a run: scores in
// original units, full-length prediction overlays for the chart, and the
// fitted model.
type Result struct {
	Series      *timeseries.Series
	TrainLen    int
	Lookback    int
	TrainScores stats.Scores
	TestScores  stats.Scores

	// TrainAligned and TestAligned are alignment buffers the length of the
	// original series; positions without a prediction hold NaN.
	TrainAligned []float64
	TestAligned  []float64

	Model *lstm.Model
}

// Run executes the pipeline described by cfg.
func Run(cfg *config.Config, log zerolog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := timeseries.DefaultCSVOptions()
	opts.ColumnIndex = cfg.Data.Column
	opts.HasHeader = cfg.Data.HasHeader

	series, err := timeseries.LoadCSV(cfg.Data.Path, opts)
	if err != nil {
		return nil, errors.Wrap(err, "loading series")
	}
	n := series.Len()
	log.Info().Int("observations", n).
		Float64("min", series.Min()).Float64("max", series.Max()).
		Str("path", cfg.Data.Path).Msg("series loaded")

	lookback := cfg.Model.Lookback
	ratio := cfg.Split.TrainRatio
	if err := dataset.Validate(n, lookback, ratio); err != nil {
		return nil, err
	}

	// Scale, then split the scaled series at the same boundary a raw split
	// would use. By default the scaler sees only the training prefix, so
	// test-set extremes cannot inform training.
	rawTrain, _ := dataset.Split(series.Values, ratio)
	trainLen := len(rawTrain)

	scaler := scale.NewMinMax()
	fitData := rawTrain
	if cfg.Scaler.FitOnFull {
		fitData = series.Values
	}
	if err := scaler.Fit(fitData); err != nil {
		return nil, errors.Wrap(err, "fitting scaler")
	}
	scaled, err := scaler.Transform(series.Values)
	if err != nil {
		return nil, errors.Wrap(err, "scaling series")
	}
	scaledTrain, scaledTest := dataset.Split(scaled, ratio)
	log.Debug().Int("train", len(scaledTrain)).Int("test", len(scaledTest)).
		Bool("fit_on_full", cfg.Scaler.FitOnFull).Msg("series scaled and split")

	trainX, trainY := dataset.Windows(scaledTrain, lookback)
	testX, testY := dataset.Windows(scaledTest, lookback)

	model := lstm.New(lstm.Config{
		HiddenSize:   cfg.Model.HiddenSize,
		Epochs:       cfg.Model.Epochs,
		BatchSize:    cfg.Model.BatchSize,
		LearningRate: cfg.Model.LearningRate,
		Seed:         cfg.Model.Seed,
	})
	log.Info().Str("model", model.Summary()).
		Int("train_pairs", len(trainX)).Int("test_pairs", len(testX)).
		Msg("training")

	if err := model.Fit(trainX, trainY); err != nil {
		return nil, errors.Wrap(err, "training model")
	}
	hist := model.LossHistory
	log.Info().Float64("first_epoch_loss", hist[0]).
		Float64("last_epoch_loss", hist[len(hist)-1]).Msg("training finished")

	trainPred, err := model.Predict(trainX)
	if err != nil {
		return nil, errors.Wrap(err, "predicting train set")
	}
	testPred, err := model.Predict(testX)
	if err != nil {
		return nil, errors.Wrap(err, "predicting test set")
	}

	// Back to original units before scoring, so RMSE reads in passengers,
	// not scaler units.
	trainPredInv, err := scaler.Inverse(trainPred)
	if err != nil {
		return nil, err
	}
	testPredInv, err := scaler.Inverse(testPred)
	if err != nil {
		return nil, err
	}
	trainActual, err := scaler.Inverse(trainY)
	if err != nil {
		return nil, err
	}
	testActual, err := scaler.Inverse(testY)
	if err != nil {
		return nil, err
	}

	trainScores, err := stats.Score(trainActual, trainPredInv)
	if err != nil {
		return nil, errors.Wrap(err, "scoring train set")
	}
	testScores, err := stats.Score(testActual, testPredInv)
	if err != nil {
		return nil, errors.Wrap(err, "scoring test set")
	}

	trainAligned, err := dataset.Align(n, dataset.TrainPredictionOffset(lookback), trainPredInv)
	if err != nil {
		return nil, errors.Wrap(err, "aligning train predictions")
	}
	testAligned, err := dataset.Align(n, dataset.TestPredictionOffset(trainLen, lookback), testPredInv)
	if err != nil {
		return nil, errors.Wrap(err, "aligning test predictions")
	}

	return &Result{
		Series:       series,
		TrainLen:     trainLen,
		Lookback:     lookback,
		TrainScores:  trainScores,
		TestScores:   testScores,
		TrainAligned: trainAligned,
		TestAligned:  testAligned,
		Model:        model,
	}, nil
}
