// Package market standardizes payloads shared between data ingestion, aggregation, and strategy layers.
package market

import "time"

// Trade models a single executed trade as delivered by the feed.
type Trade struct {
	Price    float64
	Quantity float64
	Ts       time.Time
}

// Candle summarizes the trades that occurred inside one fixed-duration window.
type Candle struct {
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   float64
	OpenTime time.Time
}

// Signal expresses the decision produced by a strategy evaluation.
type Signal string

const (
	// Buy instructs the ledger to deploy all cash into a position.
	Buy Signal = "BUY"
	// Sell instructs the ledger to liquidate the position back to cash.
	Sell Signal = "SELL"
	// Hold leaves the ledger untouched.
	Hold Signal = "HOLD"
)
