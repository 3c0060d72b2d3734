package market

import (
	"errors"
	"testing"
	"time"
)

func TestParseTrade(t *testing.T) {
	trade, err := ParseTrade([]byte(`{"p":"65000.5","q":"0.25","T":1700000000000}`))
	if err != nil {
		t.Fatalf("ParseTrade returned error: %v", err)
	}
	if trade.Price != 65000.5 {
		t.Fatalf("unexpected price %.2f", trade.Price)
	}
	if trade.Quantity != 0.25 {
		t.Fatalf("unexpected quantity %.2f", trade.Quantity)
	}
	if !trade.Ts.Equal(time.UnixMilli(1700000000000)) {
		t.Fatalf("unexpected trade time %v", trade.Ts)
	}
}

func TestParseTradeMissingQuantity(t *testing.T) {
	_, err := ParseTrade([]byte(`{"p":"65000.5","T":1700000000000}`))
	if !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage, got %v", err)
	}
}

func TestParseTradeNonNumericPrice(t *testing.T) {
	_, err := ParseTrade([]byte(`{"p":"abc","q":"1","T":1700000000000}`))
	if !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage, got %v", err)
	}
}

func TestParseTradeInvalidJSON(t *testing.T) {
	_, err := ParseTrade([]byte(`not json`))
	if !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage, got %v", err)
	}
}

func TestNormalizeNegativeQuantity(t *testing.T) {
	_, err := Normalize(RawTrade{Price: "100", Quantity: "-1", TradeTime: 1700000000000})
	if !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage, got %v", err)
	}
}

func TestNormalizeMissingTradeTime(t *testing.T) {
	_, err := Normalize(RawTrade{Price: "100", Quantity: "1"})
	if !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage, got %v", err)
	}
}
