// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Defaults applied by [GetClientConfig] when a source leaves a value empty.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "threadchat.db"
	DefaultPollInterval   = 5 * time.Second
)

// MinPollInterval is the shortest accepted poll interval.
const MinPollInterval = 500 * time.Millisecond

// ClientApp holds account settings and process-level switches.
type ClientApp struct {
	// Username is the login to use; empty means "prompt".
	Username string
	// Password is the password to use; empty means "prompt".
	Password string
	// ShowVersion requests the version banner only.
	ShowVersion bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base address.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PollInterval is how often the active chat thread is re-fetched.
	PollInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration, applying defaults for empty values.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Username:    strings.TrimSpace(cfg.App.Username),
			Password:    cfg.App.Password,
			ShowVersion: cfg.ShowVersion,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    strings.TrimSpace(cfg.Adapter.HTTPAddress),
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: strings.TrimSpace(cfg.Storage.DB.DSN)},
		},
		Workers: ClientWorkers{PollInterval: ParsePollInterval(cfg.Workers.PollInterval)},
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = DefaultDSN
	}

	return clientCfg
}

// ParsePollInterval converts a poll interval given in (possibly fractional)
// seconds into a duration. Empty, non-numeric, non-finite and non-positive
// values, and values below [MinPollInterval], yield [DefaultPollInterval]
// without an error.
func ParsePollInterval(raw string) time.Duration {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return DefaultPollInterval
	}

	interval := time.Duration(seconds * float64(time.Second))
	if interval < MinPollInterval {
		return DefaultPollInterval
	}
	return interval
}
