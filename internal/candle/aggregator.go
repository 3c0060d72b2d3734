// Package candle turns the trade stream into fixed-interval OHLCV candles and stores their history.
package candle

import (
	"time"

	"github.com/ujjwal77771/Algo-trading-live/internal/market"
)

// Aggregator buffers trades into the currently open candle and closes it once
// the configured interval has elapsed since the candle's own open time.
//
// Closing is measured from the candle open, not from the first buffered trade,
// so candle durations do not drift with trade arrival gaps. The trade that
// triggers a close is counted in the closing candle and also seeds the open of
// the next one, leaving no price gap between consecutive candles.
//
// The aggregator carries no lock: the ingestion contract is a single writer
// applying one trade at a time.
type Aggregator struct {
	interval time.Duration
	current  *market.Candle
}

// NewAggregator builds an aggregator for the given candle interval.
func NewAggregator(interval time.Duration) *Aggregator {
	return &Aggregator{interval: interval}
}

// Apply folds one trade into the open candle, returning the finished candle
// and true when this trade closed the window.
func (a *Aggregator) Apply(t market.Trade) (market.Candle, bool) {
	if a.current == nil {
		opened := newCandle(t)
		a.current = &opened
		return market.Candle{}, false
	}

	cur := a.current
	if t.Price > cur.High {
		cur.High = t.Price
	}
	if t.Price < cur.Low {
		cur.Low = t.Price
	}
	cur.Close = t.Price
	cur.Volume += t.Quantity

	elapsed := t.Ts.Sub(cur.OpenTime)
	if elapsed < 0 {
		// Out-of-order timestamp: never close early, never go negative.
		elapsed = 0
	}
	if elapsed < a.interval {
		return market.Candle{}, false
	}

	closed := *cur
	next := newCandle(t)
	next.Volume = 0 // the triggering trade's quantity belongs to the closed candle
	a.current = &next
	return closed, true
}

// Current returns a copy of the in-progress candle, if one is open.
func (a *Aggregator) Current() (market.Candle, bool) {
	if a.current == nil {
		return market.Candle{}, false
	}
	return *a.current, true
}

func newCandle(t market.Trade) market.Candle {
	return market.Candle{
		Open:     t.Price,
		High:     t.Price,
		Low:      t.Price,
		Close:    t.Price,
		Volume:   t.Quantity,
		OpenTime: t.Ts,
	}
}
