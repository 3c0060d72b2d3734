package candle

import (
	"testing"

	"github.com/ujjwal77771/Algo-trading-live/internal/market"
)

func TestSeriesAppendSnapshot(t *testing.T) {
	series := NewSeries(3)
	series.Append(market.Candle{Close: 1})
	series.Append(market.Candle{Close: 2})

	snap := series.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 candles, got %d", len(snap))
	}
	if snap[0].Close != 1 || snap[1].Close != 2 {
		t.Fatalf("snapshot out of order: %+v", snap)
	}

	// Mutating the snapshot must not touch the series.
	snap[0].Close = 99
	if fresh := series.Snapshot(); fresh[0].Close != 1 {
		t.Fatalf("snapshot aliases series storage")
	}
}

func TestSeriesEvictsOldestFirst(t *testing.T) {
	series := NewSeries(3)
	for i := 1; i <= 5; i++ {
		series.Append(market.Candle{Close: float64(i)})
	}
	if series.Len() != 3 {
		t.Fatalf("series exceeded capacity: %d", series.Len())
	}
	snap := series.Snapshot()
	if snap[0].Close != 3 || snap[1].Close != 4 || snap[2].Close != 5 {
		t.Fatalf("expected closes [3 4 5], got %+v", snap)
	}
}

func TestSeriesLast(t *testing.T) {
	series := NewSeries(2)
	if _, ok := series.Last(); ok {
		t.Fatalf("empty series must report no last candle")
	}
	series.Append(market.Candle{Close: 7})
	series.Append(market.Candle{Close: 8})
	series.Append(market.Candle{Close: 9})
	last, ok := series.Last()
	if !ok || last.Close != 9 {
		t.Fatalf("expected last close 9, got %+v ok=%v", last, ok)
	}
}
