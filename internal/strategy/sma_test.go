package strategy

import (
	"math"
	"testing"

	"github.com/ujjwal77771/Algo-trading-live/internal/market"
)

func candlesWithCloses(closes ...float64) []market.Candle {
	out := make([]market.Candle, len(closes))
	for i, c := range closes {
		out[i] = market.Candle{Close: c}
	}
	return out
}

func TestEvaluateHoldsUntilLongWindow(t *testing.T) {
	strat := NewSMACross(3, 5)
	candles := candlesWithCloses(100, 101, 102, 103)
	if sig := strat.Evaluate(candles, true); sig != market.Hold {
		t.Fatalf("expected HOLD with insufficient history, got %s", sig)
	}
}

func TestEvaluateBuyWhenFlat(t *testing.T) {
	strat := NewSMACross(3, 5)
	candles := candlesWithCloses(100, 101, 102, 103, 110)
	if sig := strat.Evaluate(candles, true); sig != market.Buy {
		t.Fatalf("expected BUY, got %s", sig)
	}
	// Same tape while already in position must not re-buy.
	if sig := strat.Evaluate(candles, false); sig != market.Hold {
		t.Fatalf("expected HOLD while in position, got %s", sig)
	}
}

func TestEvaluateSellWhenInPosition(t *testing.T) {
	strat := NewSMACross(3, 5)
	candles := candlesWithCloses(110, 109, 108, 107, 100)
	if sig := strat.Evaluate(candles, false); sig != market.Sell {
		t.Fatalf("expected SELL, got %s", sig)
	}
	if sig := strat.Evaluate(candles, true); sig != market.Hold {
		t.Fatalf("expected HOLD while flat, got %s", sig)
	}
}

func TestEvaluateHoldOnEqualAverages(t *testing.T) {
	strat := NewSMACross(3, 5)
	candles := candlesWithCloses(100, 100, 100, 100, 100)
	if sig := strat.Evaluate(candles, true); sig != market.Hold {
		t.Fatalf("expected HOLD on equal SMAs, got %s", sig)
	}
	if sig := strat.Evaluate(candles, false); sig != market.Hold {
		t.Fatalf("expected HOLD on equal SMAs in position, got %s", sig)
	}
}

func TestSMAUsesLastWindowCloses(t *testing.T) {
	candles := candlesWithCloses(1, 2, 3, 4, 5)
	if got := SMA(candles, 3); math.Abs(got-4) > 1e-9 {
		t.Fatalf("expected SMA(3)=4, got %.4f", got)
	}
	if got := SMA(candles, 5); math.Abs(got-3) > 1e-9 {
		t.Fatalf("expected SMA(5)=3, got %.4f", got)
	}
	if got := SMA(candles, 6); got != 0 {
		t.Fatalf("expected 0 for oversized window, got %.4f", got)
	}
}

func TestNewSMACrossDefaults(t *testing.T) {
	strat := NewSMACross(0, 0)
	short, long := strat.Windows()
	if short <= 0 || long <= short {
		t.Fatalf("expected sane default windows, got %d/%d", short, long)
	}
}
