package config

import (
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Name != "algo-trading-test" {
		t.Fatalf("unexpected App.Name: %s", cfg.App.Name)
	}
	if cfg.App.MetricsAddr != ":9102" {
		t.Fatalf("unexpected App.MetricsAddr: %s", cfg.App.MetricsAddr)
	}
	if cfg.Exchange.Provider != "binance" {
		t.Fatalf("unexpected Exchange.Provider: %s", cfg.Exchange.Provider)
	}
	if cfg.Exchange.Symbol != "BTCUSDT" {
		t.Fatalf("unexpected Exchange.Symbol: %s", cfg.Exchange.Symbol)
	}
	if cfg.Engine.CandleIntervalSecs != 60 {
		t.Fatalf("unexpected candle interval: %d", cfg.Engine.CandleIntervalSecs)
	}
	if cfg.Engine.MaxCandleHistory != 50 {
		t.Fatalf("unexpected max candle history: %d", cfg.Engine.MaxCandleHistory)
	}
	if cfg.Engine.LiveBufferSize != 300 {
		t.Fatalf("unexpected live buffer size: %d", cfg.Engine.LiveBufferSize)
	}
	if cfg.Strategy.ShortWindow != 3 || cfg.Strategy.LongWindow != 5 {
		t.Fatalf("unexpected strategy windows: %d/%d", cfg.Strategy.ShortWindow, cfg.Strategy.LongWindow)
	}
	if cfg.Paper.InitialCapital != 10000 {
		t.Fatalf("unexpected initial capital: %.2f", cfg.Paper.InitialCapital)
	}
	if cfg.Paper.FeeRate != 0.001 {
		t.Fatalf("unexpected fee rate: %.4f", cfg.Paper.FeeRate)
	}
	if cfg.Paper.FillsPath != "data/fills.jsonl" {
		t.Fatalf("unexpected fills path: %s", cfg.Paper.FillsPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{}
	cfg.App.Name = "roundtrip"
	cfg.Strategy.ShortWindow = 3
	cfg.Strategy.LongWindow = 5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.App.Name != "roundtrip" || loaded.Strategy.LongWindow != 5 {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}
