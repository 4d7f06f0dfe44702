// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pressbox/go-newsletter/newsletter"
)

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "pressbox",
		Subsystem: "newsletter",
		Name:      "http_requests_total",
		Help:      "Count of HTTP requests served",
	},
	[]string{
		"method",
		"status",
	},
)

var requestDuration = prometheus.NewSummaryVec(
	prometheus.SummaryOpts{
		Namespace: "pressbox",
		Subsystem: "newsletter",
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests served",
	},
	[]string{
		"method",
	},
)

var newsletterCount = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "pressbox",
		Subsystem: "newsletter",
		Name:      "records",
		Help:      "Number of newsletter records in storage",
	},
)

func init() {
	prometheus.MustRegister(requestCount)
	prometheus.MustRegister(requestDuration)
	prometheus.MustRegister(newsletterCount)
}

func observeRequest(method string, status int, duration time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"status": strconv.Itoa(status),
	}
	requestCount.With(labels).Inc()
	requestDuration.With(prometheus.Labels{
		"method": method,
	}).Observe(duration.Seconds())
}

// observe periodically publishes the newsletter record count until
// stop is closed.
func observe(storage newsletter.Storage, stop <-chan struct{}) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			observeRecordCount(storage)
		case <-stop:
			return
		}
	}
}

func observeRecordCount(storage newsletter.Storage) {
	newsletters, err := storage.Newsletters()
	if err != nil {
		return
	}
	newsletterCount.Set(float64(len(newsletters)))
}
