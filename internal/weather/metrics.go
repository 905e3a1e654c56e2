package weather

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// fetchDuration tracks upstream weather fetch latency by outcome.
	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "weather_fetch_duration_seconds",
		Help:    "Time taken to fetch a weather report by outcome",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"outcome"}) // outcome: ok, error

	// fetchErrors counts failed weather fetches.
	fetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weather_fetch_errors_total",
		Help: "Total failed weather report fetches",
	})
)

func observeFetch(d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		fetchErrors.Inc()
	}
	fetchDuration.WithLabelValues(outcome).Observe(d.Seconds())
}
