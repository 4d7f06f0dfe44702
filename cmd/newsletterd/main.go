// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

// Package main provides the newsletter REST daemon.  It serves the
// hypermedia newsletter API over HTTP, backed by either an in-memory
// store or PostgreSQL, with Prometheus metrics on /metrics.
package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"

	"github.com/pressbox/go-newsletter/backend"
	"github.com/pressbox/go-newsletter/cache"
	"github.com/pressbox/go-newsletter/restserver"
)

func main() {
	httpBind := flag.String("http", ":5980",
		"[ip]:port for the HTTP REST interface")
	storageBackend := backend.Backend{Implementation: "memory"}
	flag.Var(&storageBackend, "backend", "impl[:address] of the storage backend")
	configFile := flag.String("config", "", "global configuration YAML file")
	logRequests := flag.Bool("log-requests", false, "log all requests")
	flag.Parse()

	if *configFile != "" {
		config, err := loadConfigYaml(*configFile)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err": err,
			}).Fatal("Could not load YAML configuration")
			return
		}
		applyConfig(config, httpBind, &storageBackend, logRequests)
	}

	storage, err := storageBackend.Storage()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":     err,
			"backend": storageBackend.String(),
		}).Fatal("Could not create storage backend")
		return
	}
	storage = cache.New(storage)

	router := mux.NewRouter()
	if err = restserver.PopulateRouter(router, storage); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Could not set up serialization schemas")
		return
	}
	router.Handle("/metrics", promhttp.Handler())

	n := negroni.New(negroni.NewRecovery())
	n.Use(metricsMiddleware())
	if *logRequests {
		n.Use(loggingMiddleware(logrus.StandardLogger()))
	}
	n.UseHandler(router)

	go observe(storage, nil)

	logrus.WithFields(logrus.Fields{
		"bind":    *httpBind,
		"backend": storageBackend.String(),
	}).Info("Serving newsletter API")
	err = http.ListenAndServe(*httpBind, n)
	logrus.WithFields(logrus.Fields{
		"err": err,
	}).Fatal("HTTP server stopped")
}
