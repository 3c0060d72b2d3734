package market

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrMalformedMessage marks a raw feed message whose trade fields are missing or non-numeric.
var ErrMalformedMessage = errors.New("malformed trade message")

// RawTrade mirrors the wire shape of a Binance trade event: string-encoded
// price and quantity plus an epoch-millisecond trade time.
type RawTrade struct {
	Price     string `json:"p"`
	Quantity  string `json:"q"`
	TradeTime int64  `json:"T"`
}

// ParseTrade decodes a raw feed payload and normalizes it into a Trade.
func ParseTrade(data []byte) (Trade, error) {
	var raw RawTrade
	if err := json.Unmarshal(data, &raw); err != nil {
		return Trade{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return Normalize(raw)
}

// Normalize converts one raw trade message into the canonical Trade record.
func Normalize(raw RawTrade) (Trade, error) {
	if raw.Price == "" {
		return Trade{}, fmt.Errorf("%w: missing price", ErrMalformedMessage)
	}
	if raw.Quantity == "" {
		return Trade{}, fmt.Errorf("%w: missing quantity", ErrMalformedMessage)
	}
	price, err := strconv.ParseFloat(raw.Price, 64)
	if err != nil {
		return Trade{}, fmt.Errorf("%w: price %q", ErrMalformedMessage, raw.Price)
	}
	qty, err := strconv.ParseFloat(raw.Quantity, 64)
	if err != nil {
		return Trade{}, fmt.Errorf("%w: quantity %q", ErrMalformedMessage, raw.Quantity)
	}
	if qty < 0 {
		return Trade{}, fmt.Errorf("%w: negative quantity %.8f", ErrMalformedMessage, qty)
	}
	if raw.TradeTime <= 0 {
		return Trade{}, fmt.Errorf("%w: missing trade time", ErrMalformedMessage)
	}
	return Trade{
		Price:    price,
		Quantity: qty,
		Ts:       time.UnixMilli(raw.TradeTime),
	}, nil
}
