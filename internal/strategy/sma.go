// Package strategy contains trading signal generation logic evaluated on closed candles.
package strategy

import (
	"github.com/ujjwal77771/Algo-trading-live/internal/market"
)

// SMACross compares a short and a long simple moving average of candle closes
// and emits a directional signal for the most recent candle.
//
// The comparison is evaluated on levels, not on crossing edges: the signal
// fires on every candle the ordering holds. The ledger's flat/in-position
// guard makes repeated signals idempotent, so an edge detector is unnecessary.
type SMACross struct {
	short int
	long  int
}

// NewSMACross builds the crossover strategy from window lengths in candles.
func NewSMACross(short, long int) *SMACross {
	if short <= 0 {
		short = 3
	}
	if long <= short {
		long = short + 2
	}
	return &SMACross{short: short, long: long}
}

// Name returns the configured identifier for logging.
func (s *SMACross) Name() string { return "SMACross" }

// Windows reports the configured short and long lookbacks.
func (s *SMACross) Windows() (short, long int) { return s.short, s.long }

// Evaluate computes the signal for the latest candle given the current
// position state. It holds until at least the long window of candles exists.
func (s *SMACross) Evaluate(candles []market.Candle, flat bool) market.Signal {
	if len(candles) < s.long {
		return market.Hold
	}
	shortSMA := SMA(candles, s.short)
	longSMA := SMA(candles, s.long)
	switch {
	case shortSMA > longSMA && flat:
		return market.Buy
	case shortSMA < longSMA && !flat:
		return market.Sell
	default:
		return market.Hold
	}
}

// SMA returns the unweighted mean of the close prices of the last window
// candles, or 0 when fewer candles exist.
func SMA(candles []market.Candle, window int) float64 {
	if window <= 0 || len(candles) < window {
		return 0
	}
	var sum float64
	for _, c := range candles[len(candles)-window:] {
		sum += c.Close
	}
	return sum / float64(window)
}
