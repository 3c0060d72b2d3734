package candle

import "github.com/ujjwal77771/Algo-trading-live/internal/market"

// Series is a bounded, chronologically ordered log of closed candles. Once
// capacity is reached the oldest candle is evicted on every append.
type Series struct {
	buf   []market.Candle
	head  int
	count int
}

// NewSeries builds an empty series holding at most capacity candles.
func NewSeries(capacity int) *Series {
	if capacity < 1 {
		capacity = 1
	}
	return &Series{buf: make([]market.Candle, capacity)}
}

// Append adds a closed candle, evicting the oldest entry when full.
func (s *Series) Append(c market.Candle) {
	if s.count < len(s.buf) {
		s.buf[(s.head+s.count)%len(s.buf)] = c
		s.count++
		return
	}
	s.buf[s.head] = c
	s.head = (s.head + 1) % len(s.buf)
}

// Len reports how many candles are currently stored.
func (s *Series) Len() int { return s.count }

// Last returns the most recently appended candle.
func (s *Series) Last() (market.Candle, bool) {
	if s.count == 0 {
		return market.Candle{}, false
	}
	return s.buf[(s.head+s.count-1)%len(s.buf)], true
}

// Snapshot returns an ordered copy of the stored candles, oldest first.
// Callers may compute on it freely without affecting the series.
func (s *Series) Snapshot() []market.Candle {
	out := make([]market.Candle, s.count)
	for i := 0; i < s.count; i++ {
		out[i] = s.buf[(s.head+i)%len(s.buf)]
	}
	return out
}
