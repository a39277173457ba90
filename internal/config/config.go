// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from a JSON file, environment variables and command-line
// flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds account settings used by the login step.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background poller settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// ShowVersion asks the client to print build information and exit.
	// Only settable with the -v / -version flag.
	ShowVersion bool
}

// App holds account-level settings. Both fields are optional; missing values
// are prompted for interactively.
type App struct {
	// Username is the backend login.
	// Env: APP_USERNAME
	Username string `env:"USERNAME"`

	// Password is the backend password. Never persisted by the client.
	// Env: APP_PASSWORD
	Password string `env:"PASSWORD"`
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// DB holds the session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session database.
type DB struct {
	// DSN is the SQLite file path (e.g. "threadchat.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the backend HTTP adapter.
type Adapter struct {
	// HTTPAddress is the backend base address, with or without a scheme
	// (e.g. "localhost:8080", "https://chat.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// PollInterval is the chat refresh interval in seconds, kept as raw text
	// so that a malformed value falls back to the default instead of failing
	// startup. See [ParsePollInterval].
	// Env: WORKERS_POLL_INTERVAL
	PollInterval string `env:"POLL_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
