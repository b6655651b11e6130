// Command golstm fits an LSTM regressor to a univariate time series and
// writes a prediction overlay chart plus a JSON results file.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/seqfit/golstm/config"
	"github.com/seqfit/golstm/logging"
	"github.com/seqfit/golstm/pipeline"
	"github.com/seqfit/golstm/plot"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration (default: search for golstm.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// No logger yet; write plainly and bail.
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	result, err := pipeline.Run(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline failed")
	}

	log.Info().
		Float64("train_rmse", result.TrainScores.RMSE).
		Float64("test_rmse", result.TestScores.RMSE).
		Msg("scores (original units)")

	title := strings.TrimSuffix(filepath.Base(cfg.Data.Path), filepath.Ext(cfg.Data.Path))
	if err := plot.Overlay(
		result.Series.Values,
		result.TrainAligned,
		result.TestAligned,
		title,
		cfg.Output.ChartPath,
	); err != nil {
		log.Fatal().Err(err).Msg("writing chart failed")
	}
	log.Info().Str("path", cfg.Output.ChartPath).Msg("chart written")

	export := &plot.Export{
		Name:        title,
		NObs:        result.Series.Len(),
		Lookback:    result.Lookback,
		TrainScores: result.TrainScores,
		TestScores:  result.TestScores,
		Original:    result.Series.Values,
		TrainPred:   plot.Nullable(result.TrainAligned),
		TestPred:    plot.Nullable(result.TestAligned),
		LossHistory: result.Model.LossHistory,
	}
	if err := plot.WriteJSON(export, cfg.Output.JSONPath); err != nil {
		log.Fatal().Err(err).Msg("writing results failed")
	}
	log.Info().Str("path", cfg.Output.JSONPath).Msg("results written")
}
