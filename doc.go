// Package golstm provides LSTM-based regression for univariate time series.
//
// GoLSTM fits a small recurrent model (an LSTM cell with a dense head) to a
// single numeric column of observations and evaluates its one-step-ahead
// predictions against a held-out suffix of the series. The canonical example
// is the Box-Jenkins airline passenger series shipped under data/.
//
// # Quick Start
//
// Drive the stages directly:
//
//	series, _ := timeseries.LoadCSVColumnIndex("data/airline-passengers.csv", 1, true)
//	scaler := scale.NewMinMax()
//	scaled, _ := scaler.FitTransform(series.Values)
//	X, Y := dataset.Windows(scaled, 1)
//	model := lstm.New(lstm.DefaultConfig())
//	model.Fit(X, Y)
//	preds, _ := model.Predict(X)
//
// Or run the whole pipeline from a configuration:
//
//	cfg, _ := config.Load("")
//	result, err := pipeline.Run(cfg, logger)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: series data structures and CSV loading
//   - scale: invertible min-max scaling
//   - dataset: supervised windowing, splitting, and display alignment
//   - lstm: the recurrent regressor (LSTM cell, dense head, Adam)
//   - stats: forecast accuracy metrics (RMSE, MAE, MAPE)
//   - pipeline: end-to-end load/scale/window/train/evaluate orchestration
//   - plot: prediction overlay charts and JSON result export
//   - config, logging: runtime configuration and structured logging
//
// # References
//
//   - Hochreiter, S., & Schmidhuber, J. (1997). Long Short-Term Memory
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
package golstm
