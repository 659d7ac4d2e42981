package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const ComponentName = "ethio_calendar_bot"

var (
	// CommandUsageCounter counts how many times each command is used
	CommandUsageCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "command_usage_total",
			Help: "Total number of times each command is used",
		},
		[]string{"command"},
	)

	// ConversionCounter counts conversion attempts by direction and outcome
	ConversionCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conversions_total",
			Help: "Total number of date conversions by direction and outcome",
		},
		[]string{"direction", "outcome"},
	)
)

// startMetricsServer exposes /metrics on addr. No-op when addr is empty.
func startMetricsServer(addr string) {
	if addr == "" {
		return
	}
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		logger.Infof("metrics listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Errorf("metrics server stopped: %v", err)
		}
	}()
}
