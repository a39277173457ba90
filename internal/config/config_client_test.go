// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePollInterval(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", DefaultPollInterval},
		{"5", 5 * time.Second},
		{"1", time.Second},
		{" 2 ", 2 * time.Second},
		{"0.5", 500 * time.Millisecond},
		{"0", DefaultPollInterval},
		{"-3", DefaultPollInterval},
		{"abc", DefaultPollInterval},
		{"NaN", DefaultPollInterval},
		{"+Inf", DefaultPollInterval},
		{"1e-12", DefaultPollInterval},
		{"0.000000001", DefaultPollInterval},
		{"0.499", DefaultPollInterval},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePollInterval(tt.raw))
		})
	}
}

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{})

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultPollInterval, cfg.Workers.PollInterval)
	assert.Empty(t, cfg.App.Username)
	require.NoError(t, cfg.validate())
}

func TestNewClientConfig_KeepsProvidedValues(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App:         App{Username: "  alice ", Password: " pw "},
		Adapter:     Adapter{HTTPAddress: "https://chat.example.com", RequestTimeout: time.Minute},
		Storage:     Storage{DB: DB{DSN: "x.db"}},
		Workers:     Workers{PollInterval: "1.5"},
		ShowVersion: true,
	})

	assert.Equal(t, "alice", cfg.App.Username)
	// пароль не обрезается
	assert.Equal(t, " pw ", cfg.App.Password)
	assert.True(t, cfg.App.ShowVersion)
	assert.Equal(t, "https://chat.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "x.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 1500*time.Millisecond, cfg.Workers.PollInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(&StructuredConfig{})
	}

	cfg := valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Workers.PollInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestGetClientConfig_FromFlags(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"-u", "carol", "-i", "2", "-d", "c.db"})
	require.NoError(t, err)

	assert.Equal(t, "carol", cfg.App.Username)
	assert.Equal(t, 2*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, "c.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
}
