// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"time"

	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// loggingMiddleware logs every request on completion, tagging each
// with a fresh UUID so concurrent requests can be told apart.
func loggingMiddleware(logger *logrus.Logger) negroni.Handler {
	return negroni.HandlerFunc(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		requestID := uuid.NewV4().String()
		start := time.Now()
		next(w, r)
		duration := time.Since(start)
		status := http.StatusOK
		if nw, ok := w.(negroni.ResponseWriter); ok {
			status = nw.Status()
		}
		logger.WithFields(logrus.Fields{
			"request":  requestID,
			"method":   r.Method,
			"url":      r.URL.String(),
			"status":   status,
			"duration": duration,
		}).Debug("Request served")
	})
}

// metricsMiddleware counts requests and observes their latency.
func metricsMiddleware() negroni.Handler {
	return negroni.HandlerFunc(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		start := time.Now()
		next(w, r)
		status := http.StatusOK
		if nw, ok := w.(negroni.ResponseWriter); ok {
			status = nw.Status()
		}
		observeRequest(r.Method, status, time.Since(start))
	})
}
