// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"fmt"
	"io/ioutil"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"

	"github.com/pressbox/go-newsletter/backend"
)

// config holds the daemon settings that can come from the YAML
// configuration file.  Every field is optional; command-line flags
// supply the defaults and the file overrides them.
type config struct {
	// HTTP gives the [ip]:port binding for the REST interface.
	HTTP string `mapstructure:"http"`

	// Backend names the storage backend, impl[:address].
	Backend string `mapstructure:"backend"`

	// LogRequests turns on per-request logging when true.
	LogRequests bool `mapstructure:"log_requests"`

	// LogLevel sets the logrus level name, e.g. "debug".
	LogLevel string `mapstructure:"log_level"`
}

// loadConfigYaml reads and decodes the daemon configuration file.
func loadConfigYaml(filename string) (config, error) {
	var c config
	bytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return c, fmt.Errorf("reading configuration: %v", err)
	}
	var raw map[string]interface{}
	if err = yaml.Unmarshal(bytes, &raw); err != nil {
		return c, fmt.Errorf("parsing configuration: %v", err)
	}
	if err = mapstructure.Decode(raw, &c); err != nil {
		return c, fmt.Errorf("decoding configuration: %v", err)
	}
	return c, nil
}

// applyConfig copies configuration file settings over the flag values.
func applyConfig(c config, httpBind *string, storageBackend *backend.Backend, logRequests *bool) {
	if c.HTTP != "" {
		*httpBind = c.HTTP
	}
	if c.Backend != "" {
		if err := storageBackend.Set(c.Backend); err != nil {
			logrus.WithFields(logrus.Fields{
				"err":     err,
				"backend": c.Backend,
			}).Fatal("Invalid backend in configuration")
		}
	}
	if c.LogRequests {
		*logRequests = true
	}
	if c.LogLevel != "" {
		level, err := logrus.ParseLevel(c.LogLevel)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err":   err,
				"level": c.LogLevel,
			}).Warn("Invalid log level in configuration")
		} else {
			logrus.SetLevel(level)
		}
	}
}
