// Package engine wires trade ingestion, candle aggregation, the crossover
// strategy, and the paper ledger into one sequential pipeline.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ujjwal77771/Algo-trading-live/internal/candle"
	"github.com/ujjwal77771/Algo-trading-live/internal/market"
	"github.com/ujjwal77771/Algo-trading-live/internal/metrics"
	"github.com/ujjwal77771/Algo-trading-live/internal/paper"
	"github.com/ujjwal77771/Algo-trading-live/internal/strategy"
)

// ErrConfig marks a configuration the engine refuses to start with.
var ErrConfig = errors.New("invalid engine config")

// ErrInvalidPrice marks a non-positive trade price reaching the pipeline.
var ErrInvalidPrice = errors.New("non-positive trade price")

const (
	defaultMaxCandleHistory = 50
	defaultLiveBufferSize   = 300
	eventBufferSize         = 64
)

// Config carries every knob the pipeline needs.
type Config struct {
	Symbol           string
	CandleInterval   time.Duration
	MaxCandleHistory int // 0 means the default of 50
	ShortWindow      int
	LongWindow       int
	InitialCapital   float64
	FeeRate          float64
	LiveBufferSize   int // 0 means the default of 300
}

func (c Config) validate() error {
	if c.CandleInterval <= 0 {
		return fmt.Errorf("%w: candle interval must be positive", ErrConfig)
	}
	if c.MaxCandleHistory < 0 {
		return fmt.Errorf("%w: max candle history must be positive", ErrConfig)
	}
	if c.ShortWindow <= 0 || c.LongWindow <= 0 {
		return fmt.Errorf("%w: SMA windows must be positive", ErrConfig)
	}
	if c.ShortWindow >= c.LongWindow {
		return fmt.Errorf("%w: short window %d must be below long window %d", ErrConfig, c.ShortWindow, c.LongWindow)
	}
	if c.InitialCapital <= 0 {
		return fmt.Errorf("%w: initial capital must be positive", ErrConfig)
	}
	if c.FeeRate < 0 || c.FeeRate >= 1 {
		return fmt.Errorf("%w: fee rate must be in [0,1)", ErrConfig)
	}
	if c.LiveBufferSize < 0 {
		return fmt.Errorf("%w: live buffer size must be positive", ErrConfig)
	}
	return nil
}

// Engine processes one trade at a time: normalize, aggregate, and on every
// candle close evaluate the strategy, settle the ledger, and sample equity.
//
// Exactly one goroutine may call Ingest/IngestTrade. Readers only ever get
// copies, so a presentation loop can poll snapshots concurrently.
type Engine struct {
	cfg   Config
	log   zerolog.Logger
	strat *strategy.SMACross

	mu         sync.Mutex
	agg        *candle.Aggregator
	series     *candle.Series
	portfolio  *paper.Portfolio
	fills      *paper.FillLog
	recorder   paper.FillRecorder
	liveTrades []market.Trade
	liveStart  int
	lastTrade  market.Trade
	hasTrade   bool
	lastSignal market.Signal

	events chan Event
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithFillRecorder streams every executed fill to the supplied recorder in
// addition to the in-memory fill log.
func WithFillRecorder(rec paper.FillRecorder) Option {
	return func(e *Engine) { e.recorder = rec }
}

// New validates the configuration and builds a ready pipeline. Configuration
// problems are fatal: the engine refuses to initialize.
func New(cfg Config, log zerolog.Logger, opts ...Option) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.MaxCandleHistory == 0 {
		cfg.MaxCandleHistory = defaultMaxCandleHistory
	}
	if cfg.LiveBufferSize == 0 {
		cfg.LiveBufferSize = defaultLiveBufferSize
	}

	e := &Engine{
		cfg:        cfg,
		log:        log,
		strat:      strategy.NewSMACross(cfg.ShortWindow, cfg.LongWindow),
		agg:        candle.NewAggregator(cfg.CandleInterval),
		series:     candle.NewSeries(cfg.MaxCandleHistory),
		portfolio:  paper.NewPortfolio(cfg.InitialCapital, cfg.FeeRate),
		fills:      paper.NewFillLog(0),
		lastSignal: market.Hold,
		events:     make(chan Event, eventBufferSize),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Ingest normalizes one raw feed payload and runs it through the pipeline.
// Malformed messages are dropped: logged, counted, surfaced as an event, and
// returned for callers that want to observe them. The stream never stops.
func (e *Engine) Ingest(raw []byte) error {
	trade, err := market.ParseTrade(raw)
	if err != nil {
		e.log.Warn().Err(err).Msg("dropping malformed trade message")
		metrics.StreamErrorsTotal.WithLabelValues(string(EventParseError)).Inc()
		e.publish(Event{Kind: EventParseError, Err: err, Ts: time.Now()})
		return err
	}
	return e.IngestTrade(trade)
}

// IngestTrade applies one normalized trade. Non-positive prices are rejected
// without touching aggregation or ledger state.
func (e *Engine) IngestTrade(t market.Trade) error {
	if t.Price <= 0 {
		err := fmt.Errorf("%w: %.8f", ErrInvalidPrice, t.Price)
		e.log.Warn().Float64("price", t.Price).Msg("rejecting trade with non-positive price")
		metrics.StreamErrorsTotal.WithLabelValues(string(EventInvalidPrice)).Inc()
		e.publish(Event{Kind: EventInvalidPrice, Err: err, Ts: time.Now()})
		return err
	}

	metrics.TradesTotal.WithLabelValues(e.cfg.Symbol).Inc()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastTrade = t
	e.hasTrade = true
	e.appendLive(t)

	closed, done := e.agg.Apply(t)
	if !done {
		return nil
	}
	e.onCandleClose(closed, t)
	return nil
}

// onCandleClose runs under e.mu.
func (e *Engine) onCandleClose(closed market.Candle, trigger market.Trade) {
	e.series.Append(closed)
	metrics.CandlesTotal.WithLabelValues(e.cfg.Symbol).Inc()

	sig := e.strat.Evaluate(e.series.Snapshot(), e.portfolio.Flat())
	e.lastSignal = sig

	fill, executed, err := e.portfolio.Execute(sig, closed.Close)
	if err != nil {
		e.log.Warn().Err(err).Str("signal", string(sig)).Msg("ledger rejected execution")
		metrics.StreamErrorsTotal.WithLabelValues(string(EventInvalidPrice)).Inc()
		e.publish(Event{Kind: EventInvalidPrice, Err: err, Ts: time.Now()})
	}
	if executed {
		fill.Ts = trigger.Ts
		e.fills.Record(fill)
		if e.recorder != nil {
			e.recorder.Record(fill)
		}
		metrics.FillsTotal.WithLabelValues(e.cfg.Symbol, string(fill.Side)).Inc()
		e.log.Info().
			Str("side", string(fill.Side)).
			Float64("qty", fill.Qty).
			Float64("px", fill.Price).
			Msg("paper fill")
	}

	equity := e.portfolio.MarkClose(closed.Close)
	e.log.Debug().
		Float64("close", closed.Close).
		Float64("equity", equity).
		Str("signal", string(sig)).
		Msg("candle closed")
}

func (e *Engine) appendLive(t market.Trade) {
	if len(e.liveTrades) < e.cfg.LiveBufferSize {
		e.liveTrades = append(e.liveTrades, t)
		return
	}
	e.liveTrades[e.liveStart] = t
	e.liveStart = (e.liveStart + 1) % len(e.liveTrades)
}

// Candles returns an ordered copy of the closed candle history.
func (e *Engine) Candles() []market.Candle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.series.Snapshot()
}

// CurrentCandle returns a copy of the in-progress candle, if one is open.
func (e *Engine) CurrentCandle() (market.Candle, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.agg.Current()
}

// Portfolio returns the ledger balances marked at the most recent trade price.
func (e *Engine) Portfolio() paper.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	mark := 0.0
	if e.hasTrade {
		mark = e.lastTrade.Price
	}
	return e.portfolio.Snapshot(mark)
}

// EquityCurve returns a copy of the per-candle equity samples.
func (e *Engine) EquityCurve() []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.portfolio.EquityCurve()
}

// Fills returns a copy of the executed paper fills.
func (e *Engine) Fills() []paper.Fill {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fills.Snapshot()
}

// LiveTrades returns the recent trade buffer, oldest first.
func (e *Engine) LiveTrades() []market.Trade {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]market.Trade, 0, len(e.liveTrades))
	for i := 0; i < len(e.liveTrades); i++ {
		out = append(out, e.liveTrades[(e.liveStart+i)%len(e.liveTrades)])
	}
	return out
}

// LastTrade returns the most recently ingested trade.
func (e *Engine) LastTrade() (market.Trade, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastTrade, e.hasTrade
}

// LastSignal returns the signal produced by the latest candle close.
func (e *Engine) LastSignal() market.Signal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastSignal
}

// Symbol returns the configured trading symbol.
func (e *Engine) Symbol() string { return e.cfg.Symbol }
