// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

const usageNotes = `
Notes:
    In chat mode, exit the thread by entering '/end'.
    Refresh the thread immediately by entering '/refresh'.
`

// ParseFlags parses the client command-line flags from args (without the
// program name). Usage is written to output when -h is given or parsing fails.
//
// Flags:
//
//	-a                backend address (host:port or URL)
//	-u, -username     backend login [default: prompt]
//	-p, -password     backend password [default: prompt]
//	-i, -interval     chat polling interval in seconds [default: 5]
//	-d                session database DSN
//	-request-timeout  outbound request timeout (e.g. "15s")
//	-c, -config       JSON config file path
//	-v, -version      print version and exit
//
// Returns [flag.ErrHelp] (wrapped) when help was requested.
func ParseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	var (
		address        string
		username       string
		password       string
		interval       string
		dsn            string
		requestTimeout time.Duration
		jsonConfigPath string
		showVersion    bool
	)

	fs := flag.NewFlagSet("threadchat", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&address, "a", "", "Backend address host:port or URL")
	fs.StringVar(&username, "u", "", "Backend username")
	fs.StringVar(&username, "username", "", "Backend username (alias)")
	fs.StringVar(&password, "p", "", "Backend password")
	fs.StringVar(&password, "password", "", "Backend password (alias)")
	fs.StringVar(&interval, "i", "", "Polling interval in chat rooms, seconds")
	fs.StringVar(&interval, "interval", "", "Polling interval in chat rooms, seconds (alias)")
	fs.StringVar(&dsn, "d", "", "Session database DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&showVersion, "v", false, "Show version")
	fs.BoolVar(&showVersion, "version", false, "Show version (alias)")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n    threadchat [flags]\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprint(fs.Output(), usageNotes)
	}

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Username: username,
			Password: password,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{PollInterval: interval},
		JSONFilePath: jsonConfigPath,
		ShowVersion:  showVersion,
	}, nil
}
