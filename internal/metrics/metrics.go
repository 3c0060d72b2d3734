package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TradesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "trades_total", Help: "Count of trades ingested"},
		[]string{"symbol"},
	)
	CandlesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "candles_total", Help: "Count of candles closed"},
		[]string{"symbol"},
	)
	FillsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fills_total", Help: "Paper fills executed"},
		[]string{"symbol", "side"},
	)
	StreamErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "stream_errors_total", Help: "Non-fatal ingestion errors"},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(TradesTotal, CandlesTotal, FillsTotal, StreamErrorsTotal)
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{ Addr: addr, Handler: mux }
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
