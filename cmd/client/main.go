package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-thread-chat/internal/adapter"
	"github.com/MKhiriev/go-thread-chat/internal/client"
	"github.com/MKhiriev/go-thread-chat/internal/config"
	"github.com/MKhiriev/go-thread-chat/internal/logger"
	"github.com/MKhiriev/go-thread-chat/internal/service"
	"github.com/MKhiriev/go-thread-chat/internal/store"
	"github.com/MKhiriev/go-thread-chat/internal/tui"
	"github.com/MKhiriev/go-thread-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		return 1
	}
	if cfg.App.ShowVersion {
		return 0
	}

	log := logger.NewClientLogger("threadchat-client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fail(log, "create server adapter", err)
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fail(log, "create local storage", err)
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, log)

	ui, err := tui.New(services, cfg.Workers.PollInterval, log)
	if err != nil {
		return fail(log, "error creating ui", err)
	}

	app, err := client.NewApp(services.AuthService, ui, cfg.App, log)
	if err != nil {
		return fail(log, "init client app error", err)
	}

	err = app.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit), errors.Is(err, tui.ErrInterrupted):
		return 0
	default:
		return fail(log, "client run error", err)
	}
}

func fail(log *logger.Logger, msg string, err error) int {
	log.Error().Err(err).Msg(msg)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	return 1
}

func printBuildInfo() {
	fmt.Println(tui.RenderBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
}
