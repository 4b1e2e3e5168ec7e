// Package main is todoctl, the terminal client of the todo board API. It
// loads the shared configuration, logs to a file so the terminal stays with
// the UI, and runs the Bubble Tea program until the user quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jsamuelsen11/todo-board/internal/adapters/clients/todoapi"
	"github.com/jsamuelsen11/todo-board/internal/adapters/tui"
	"github.com/jsamuelsen11/todo-board/internal/platform/config"
	"github.com/jsamuelsen11/todo-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
)

const defaultProfile = "local"

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	profile := os.Getenv(config.ProfileEnv)
	if profile == "" {
		profile = defaultProfile
	}

	fs := flag.NewFlagSet("todoctl", flag.ContinueOnError)
	fs.StringVar(&profile, "profile", profile, "configuration profile")
	configDir := fs.String("config", "configs", "directory holding base.yaml and the profiles")
	api := fs.String("api", "", "todo board API base URL (overrides client.base_url)")
	logFile := fs.String("log", "", "log file (overrides ui.log_file)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(profile,
		config.WithConfigDir(*configDir),
		config.WithOverrides(map[string]any{
			"client.base_url": *api,
			"ui.log_file":     *logFile,
		}),
	)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out, err := openLogFile(cfg.UI.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, out).
		With(slog.String("component", "todoctl"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Client metrics stay off: the stdout exporter would draw over the UI.
	httpClient := httpclient.New(&cfg.Client, todoapi.ServiceName, nil, logger)
	client := todoapi.NewClient(httpClient, logger)

	logger.InfoContext(ctx, "starting todoctl",
		slog.String("profile", profile),
		slog.String("api", cfg.Client.BaseURL),
	)

	if err := tui.Run(ctx, tui.Deps{
		Client:           client,
		Health:           client,
		Logger:           logger,
		AutosaveInterval: cfg.UI.AutosaveInterval,
	}); err != nil {
		logger.ErrorContext(ctx, "todoctl exited with error", slog.Any("error", err))
		return err
	}
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return f, nil
}
