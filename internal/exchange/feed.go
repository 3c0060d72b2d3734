// Package exchange hosts the market data connectors that produce raw trade messages.
package exchange

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// ProviderStub emits synthetic random-walk trades (useful for tests/offline work).
	ProviderStub = "stub"
	// ProviderBinance streams live trades from Binance public websockets.
	ProviderBinance = "binance"
)

const (
	defaultStubInterval  = 50 * time.Millisecond
	defaultStubStartPx   = 65000.0
	defaultBinanceWSBase = "wss://stream.binance.com:9443"
)

// Feed is a pluggable source of raw trade payloads. It pushes one message at
// a time onto the out channel; the consumer owns normalization and sequencing.
type Feed struct {
	provider     string
	symbol       string
	log          zerolog.Logger
	wsBaseURL    string
	stubInterval time.Duration
	stubStartPx  float64
}

// Option configures Feed construction parameters.
type Option func(*Feed)

// WithWSBaseURL overrides the websocket endpoint (testnet, local mock).
func WithWSBaseURL(base string) Option {
	return func(f *Feed) {
		if base != "" {
			f.wsBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithStubInterval overrides the synthetic trade cadence.
func WithStubInterval(d time.Duration) Option {
	return func(f *Feed) {
		if d > 0 {
			f.stubInterval = d
		}
	}
}

// WithStubStartPrice overrides the synthetic random walk's starting price.
func WithStubStartPrice(px float64) Option {
	return func(f *Feed) {
		if px > 0 {
			f.stubStartPx = px
		}
	}
}

// NewFeed constructs a feed backed by the requested provider.
func NewFeed(provider, symbol string, log zerolog.Logger, opts ...Option) *Feed {
	if provider == "" {
		provider = ProviderStub
	}
	f := &Feed{
		provider:     strings.ToLower(strings.TrimSpace(provider)),
		symbol:       strings.TrimSpace(symbol),
		log:          log,
		wsBaseURL:    defaultBinanceWSBase,
		stubInterval: defaultStubInterval,
		stubStartPx:  defaultStubStartPx,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run pushes raw trade messages onto the provided channel until the context
// is canceled.
func (f *Feed) Run(ctx context.Context, out chan<- []byte) error {
	switch f.provider {
	case ProviderBinance:
		return f.runBinance(ctx, out)
	default:
		return f.runStub(ctx, out)
	}
}

func (f *Feed) runStub(ctx context.Context, out chan<- []byte) error {
	ticker := time.NewTicker(f.stubInterval)
	defer ticker.Stop()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	px := f.stubStartPx
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ts := <-ticker.C:
			px += rng.Float64()*60 - 30
			if px <= 1 {
				px = 1
			}
			qty := rng.Float64() * 0.5
			msg := fmt.Sprintf(`{"p":"%.2f","q":"%.5f","T":%d}`, px, qty, ts.UnixMilli())
			select {
			case out <- []byte(msg):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
