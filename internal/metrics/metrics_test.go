package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestServeRegistersMetrics(t *testing.T) {
	srv := Serve(":0")
	defer srv.Close()

	TradesTotal.WithLabelValues("BTCUSDT").Inc()
	CandlesTotal.WithLabelValues("BTCUSDT").Inc()

	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	found := map[string]bool{}
	for _, mf := range mfs {
		found[mf.GetName()] = true
	}
	if !found["trades_total"] {
		t.Fatalf("trades_total metric not found")
	}
	if !found["candles_total"] {
		t.Fatalf("candles_total metric not found")
	}
}
