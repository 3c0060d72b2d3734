// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// App captures process-wide runtime settings such as name, environment, metrics, and logging levels.
type App struct {
	Name        string
	Env         string
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Exchange describes the market data source the trader subscribes to.
type Exchange struct {
	Provider string
	Symbol   string
}

// Engine groups the candle aggregation knobs.
type Engine struct {
	CandleIntervalSecs int `yaml:"candle_interval_secs"`
	MaxCandleHistory   int `yaml:"max_candle_history"`
	LiveBufferSize     int `yaml:"live_buffer_size"`
}

// Strategy holds the moving-average crossover windows, in candles.
type Strategy struct {
	ShortWindow int `yaml:"short_window"`
	LongWindow  int `yaml:"long_window"`
}

// Paper captures paper-trading ledger settings.
type Paper struct {
	InitialCapital float64 `yaml:"initial_capital"`
	FeeRate        float64 `yaml:"fee_rate"`
	FillsPath      string  `yaml:"fills_path"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App      App      `yaml:"app"`
	Exchange Exchange `yaml:"exchange"`
	Engine   Engine   `yaml:"engine"`
	Strategy Strategy `yaml:"strategy"`
	Paper    Paper    `yaml:"paper"`
}

// Load reads a YAML file from disk and hydrates a Config struct.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
