package main

import (
	"context"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ujjwal77771/Algo-trading-live/internal/config"
	"github.com/ujjwal77771/Algo-trading-live/internal/engine"
	"github.com/ujjwal77771/Algo-trading-live/internal/exchange"
	"github.com/ujjwal77771/Algo-trading-live/internal/metrics"
	"github.com/ujjwal77771/Algo-trading-live/internal/paper"
	"github.com/ujjwal77771/Algo-trading-live/internal/util"
)

const defaultConfigPath = "internal/config/config.yaml"

func main() {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		log := util.NewLogger("info", "")
		log.Fatal().Err(err).Str("path", path).Msg("load config")
	}
	log := util.NewLogger(cfg.App.LogLevel, cfg.App.Env)

	if cfg.App.MetricsAddr != "" {
		_ = metrics.Serve(cfg.App.MetricsAddr)
		log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")
	}

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var opts []engine.Option
	if cfg.Paper.FillsPath != "" {
		recorder, err := paper.NewJSONLRecorder(cfg.Paper.FillsPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Paper.FillsPath).Msg("open fill recorder")
		}
		defer recorder.Close()
		opts = append(opts, engine.WithFillRecorder(recorder))
	}

	eng, err := engine.New(engine.Config{
		Symbol:           cfg.Exchange.Symbol,
		CandleInterval:   time.Duration(cfg.Engine.CandleIntervalSecs) * time.Second,
		MaxCandleHistory: cfg.Engine.MaxCandleHistory,
		ShortWindow:      cfg.Strategy.ShortWindow,
		LongWindow:       cfg.Strategy.LongWindow,
		InitialCapital:   cfg.Paper.InitialCapital,
		FeeRate:          cfg.Paper.FeeRate,
		LiveBufferSize:   cfg.Engine.LiveBufferSize,
	}, log, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("build engine")
	}

	feed := exchange.NewFeed(cfg.Exchange.Provider, cfg.Exchange.Symbol, log)
	raws := make(chan []byte, 1024)

	go func() {
		if err := feed.Run(ctx, raws); err != nil {
			log.Error().Err(err).Msg("feed stopped")
			cancel()
		}
	}()

	display := time.NewTicker(2 * time.Second)
	defer display.Stop()

	log.Info().Str("symbol", cfg.Exchange.Symbol).Str("provider", cfg.Exchange.Provider).Msg("trading engine started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			return
		case raw := <-raws:
			// Single writer: only this loop calls into the pipeline.
			_ = eng.Ingest(raw)
		case ev := <-eng.Events():
			log.Warn().Str("kind", string(ev.Kind)).Err(ev.Err).Msg("stream event")
		case <-display.C:
			renderSummary(eng, log)
		}
	}
}

// renderSummary reads immutable snapshots only; it never mutates engine state.
func renderSummary(eng *engine.Engine, log zerolog.Logger) {
	last, ok := eng.LastTrade()
	if !ok {
		return
	}
	snap := eng.Portfolio()
	log.Info().
		Float64("price", last.Price).
		Float64("position", snap.PositionQty).
		Float64("cash", snap.Cash).
		Float64("equity", snap.Equity).
		Int("candles", len(eng.Candles())).
		Str("signal", string(eng.LastSignal())).
		Msg("dashboard")
}
