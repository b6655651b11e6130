package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load loads configuration from file. An empty configPath searches the usual
// locations and falls back to defaults when no file exists; a missing file
// named explicitly is an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("golstm")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	setDefaults(v)

	v.SetEnvPrefix("GOLSTM")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && configPath == "" {
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

// setDefaults sets default configuration values. The model defaults mirror
// the classic airline-passengers setup: lookback 1, 4 hidden units, 100
// epochs, two-thirds train split.
func setDefaults(v *viper.Viper) {
	v.SetDefault("data.path", "data/airline-passengers.csv")
	v.SetDefault("data.column", 1)
	v.SetDefault("data.has_header", true)

	v.SetDefault("model.lookback", 1)
	v.SetDefault("model.hidden_size", 4)
	v.SetDefault("model.epochs", 100)
	v.SetDefault("model.batch_size", 1)
	v.SetDefault("model.learning_rate", 0.01)
	v.SetDefault("model.seed", 1)

	v.SetDefault("split.train_ratio", 0.67)

	v.SetDefault("scaler.fit_on_full", false)

	v.SetDefault("output.chart_path", "predictions.png")
	v.SetDefault("output.json_path", "results.json")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// parseConfig unmarshals and validates the configuration.
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without touching the filesystem.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := parseConfig(v)
	if err != nil {
		// Defaults are static; failing to parse them is a programming error.
		panic(err)
	}
	return cfg
}
