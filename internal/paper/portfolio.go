// Package paper tracks the virtual cash/position ledger and its trade history.
package paper

import (
	"errors"
	"sync"
	"time"

	"github.com/ujjwal77771/Algo-trading-live/internal/market"
)

// ErrInvalidPrice marks an execution attempt against a non-positive price.
var ErrInvalidPrice = errors.New("price must be positive")

// Fill records one executed paper trade.
type Fill struct {
	Side        market.Signal `json:"side"`
	Qty         float64       `json:"qty"`
	Price       float64       `json:"price"`
	CandleIndex int           `json:"candle_index"`
	Ts          time.Time     `json:"ts"`
}

// Portfolio owns the cash balance, position size, and equity curve of the
// fully-in/fully-out paper strategy. All mutation goes through Execute and
// MarkClose; readers get copies.
type Portfolio struct {
	mu             sync.Mutex
	initialCapital float64
	feeRate        float64
	cash           float64
	positionQty    float64
	equityCurve    []float64
}

// Snapshot is a read-only view of the ledger, marked at the supplied price.
type Snapshot struct {
	Cash        float64
	PositionQty float64
	Equity      float64
	Flat        bool
	Samples     int
}

// NewPortfolio builds a ledger starting fully in cash.
func NewPortfolio(initialCapital, feeRate float64) *Portfolio {
	return &Portfolio{
		initialCapital: initialCapital,
		feeRate:        feeRate,
		cash:           initialCapital,
	}
}

// Execute applies a signal as a full-notional market order at the given price.
// The fee is charged once against deployable cash on entry and once against
// proceeds on exit. Signals whose position guard fails are silent no-ops.
// The returned bool reports whether a trade actually executed.
func (p *Portfolio) Execute(sig market.Signal, price float64) (Fill, bool, error) {
	if sig == market.Hold {
		return Fill{}, false, nil
	}
	if price <= 0 {
		return Fill{}, false, ErrInvalidPrice
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch sig {
	case market.Buy:
		if p.positionQty > 0 {
			return Fill{}, false, nil
		}
		qty := (p.cash * (1 - p.feeRate)) / price
		p.positionQty = qty
		p.cash = 0
		return Fill{Side: market.Buy, Qty: qty, Price: price, CandleIndex: len(p.equityCurve)}, true, nil

	case market.Sell:
		if p.positionQty <= 0 {
			return Fill{}, false, nil
		}
		qty := p.positionQty
		p.cash = qty * price * (1 - p.feeRate)
		p.positionQty = 0
		return Fill{Side: market.Sell, Qty: qty, Price: price, CandleIndex: len(p.equityCurve)}, true, nil
	}
	return Fill{}, false, nil
}

// MarkClose appends one equity sample for a closed candle at the given close
// price and returns it. A non-positive price repeats the previous sample
// (initial capital when the curve is empty) so the curve keeps exactly one
// entry per closed candle.
func (p *Portfolio) MarkClose(price float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	var equity float64
	if price <= 0 {
		equity = p.initialCapital
		if n := len(p.equityCurve); n > 0 {
			equity = p.equityCurve[n-1]
		}
	} else {
		equity = p.cash + p.positionQty*price
	}
	p.equityCurve = append(p.equityCurve, equity)
	return equity
}

// Flat reports whether the ledger currently holds no position.
func (p *Portfolio) Flat() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positionQty <= 0
}

// InitialCapital returns the starting bankroll.
func (p *Portfolio) InitialCapital() float64 { return p.initialCapital }

// Snapshot returns a copy of the balances marked at the supplied price.
func (p *Portfolio) Snapshot(mark float64) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Cash:        p.cash,
		PositionQty: p.positionQty,
		Equity:      p.cash + p.positionQty*mark,
		Flat:        p.positionQty <= 0,
		Samples:     len(p.equityCurve),
	}
}

// EquityCurve returns a copy of the recorded equity samples, oldest first.
func (p *Portfolio) EquityCurve() []float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]float64, len(p.equityCurve))
	copy(out, p.equityCurve)
	return out
}
