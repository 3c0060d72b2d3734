// Command replay runs the trading engine over a JSONL file of recorded raw
// trade messages instead of a live feed and prints the resulting performance.
package main

import (
	"bufio"
	"flag"
	"os"
	"time"

	"github.com/ujjwal77771/Algo-trading-live/internal/config"
	"github.com/ujjwal77771/Algo-trading-live/internal/engine"
	"github.com/ujjwal77771/Algo-trading-live/internal/util"
)

func main() {
	configPath := flag.String("config", "internal/config/config.yaml", "path to YAML config")
	tradesPath := flag.String("trades", "", "path to JSONL file of raw trade messages")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log := util.NewLogger("info", "")
		log.Fatal().Err(err).Str("path", *configPath).Msg("load config")
	}
	log := util.NewLogger(cfg.App.LogLevel, cfg.App.Env)

	if *tradesPath == "" {
		log.Fatal().Msg("-trades is required")
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
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build engine")
	}

	file, err := os.Open(*tradesPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *tradesPath).Msg("open trades file")
	}
	defer file.Close()

	var processed, dropped int
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := eng.Ingest(line); err != nil {
			dropped++
			continue
		}
		processed++
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("read trades file")
	}

	curve := eng.EquityCurve()
	final := cfg.Paper.InitialCapital
	if len(curve) > 0 {
		final = curve[len(curve)-1]
	}
	log.Info().
		Int("trades", processed).
		Int("dropped", dropped).
		Int("candles", len(eng.Candles())).
		Int("fills", len(eng.Fills())).
		Float64("final_equity", final).
		Float64("return_pct", (final/cfg.Paper.InitialCapital-1)*100).
		Msg("replay finished")

	for _, fill := range eng.Fills() {
		log.Info().
			Str("side", string(fill.Side)).
			Float64("qty", fill.Qty).
			Float64("px", fill.Price).
			Int("candle", fill.CandleIndex).
			Msg("fill")
	}
}
