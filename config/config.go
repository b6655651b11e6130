// Package config loads and validates the pipeline configuration.
package config

import (
	"fmt"
)

// Config holds the full pipeline configuration.
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Model   ModelConfig   `mapstructure:"model"`
	Split   SplitConfig   `mapstructure:"split"`
	Scaler  ScalerConfig  `mapstructure:"scaler"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DataConfig describes the input file.
type DataConfig struct {
	Path      string `mapstructure:"path"`
	Column    int    `mapstructure:"column"` // zero-based value column position
	HasHeader bool   `mapstructure:"has_header"`
}

// ModelConfig holds the model hyperparameters.
type ModelConfig struct {
	Lookback     int     `mapstructure:"lookback"`
	HiddenSize   int     `mapstructure:"hidden_size"`
	Epochs       int     `mapstructure:"epochs"`
	BatchSize    int     `mapstructure:"batch_size"`
	LearningRate float64 `mapstructure:"learning_rate"`
	Seed         int64   `mapstructure:"seed"`
}

// SplitConfig controls the train/test partition.
type SplitConfig struct {
	TrainRatio float64 `mapstructure:"train_ratio"`
}

// ScalerConfig controls scaler fitting. FitOnFull reproduces the classic
// notebook behavior of fitting the scaler on the entire series before the
// split; the default fits on the training prefix only, avoiding leakage of
// test-set extremes into training.
type ScalerConfig struct {
	FitOnFull bool `mapstructure:"fit_on_full"`
}

// OutputConfig names the artifacts the pipeline writes.
type OutputConfig struct {
	ChartPath string `mapstructure:"chart_path"`
	JSONPath  string `mapstructure:"json_path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// Validate checks the configuration for errors that would otherwise surface
// deep inside the pipeline, or worse, not at all.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return fmt.Errorf("config: data.path is required")
	}
	if c.Data.Column < 0 {
		return fmt.Errorf("config: data.column must be non-negative, got %d", c.Data.Column)
	}
	if c.Model.Lookback < 1 {
		return fmt.Errorf("config: model.lookback must be at least 1, got %d", c.Model.Lookback)
	}
	if c.Model.HiddenSize < 1 {
		return fmt.Errorf("config: model.hidden_size must be at least 1, got %d", c.Model.HiddenSize)
	}
	if c.Model.Epochs < 1 {
		return fmt.Errorf("config: model.epochs must be at least 1, got %d", c.Model.Epochs)
	}
	if c.Model.BatchSize < 1 {
		return fmt.Errorf("config: model.batch_size must be at least 1, got %d", c.Model.BatchSize)
	}
	if c.Model.LearningRate <= 0 {
		return fmt.Errorf("config: model.learning_rate must be positive, got %g", c.Model.LearningRate)
	}
	if c.Split.TrainRatio <= 0 || c.Split.TrainRatio >= 1 {
		return fmt.Errorf("config: split.train_ratio must be in (0, 1), got %g", c.Split.TrainRatio)
	}
	return nil
}
