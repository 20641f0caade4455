// Package main is the entry point for the bzbridge CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/custodia-labs/bzbridge/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bzbridge/internal/adapters/driven/rpc"
	"github.com/custodia-labs/bzbridge/internal/adapters/driving/cli"
	"github.com/custodia-labs/bzbridge/internal/connectors/bugzilla"
	"github.com/custodia-labs/bzbridge/internal/core/domain"
	"github.com/custodia-labs/bzbridge/internal/core/ports/driven"
	"github.com/custodia-labs/bzbridge/internal/core/ports/driving"
	"github.com/custodia-labs/bzbridge/internal/core/services"
	"github.com/custodia-labs/bzbridge/internal/logger"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := file.LoadDotEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.Execute(ctx, version, cli.Factories{
		ConfigStore:  openConfigStore,
		IssueService: newIssueService,
	})
}

func openConfigStore(dir string) (driven.ConfigStore, error) {
	return file.NewConfigStore(dir)
}

// newIssueService connects the issue service to the configured tracker.
func newIssueService(store driven.ConfigStore) (driving.IssueService, error) {
	settings, err := file.LoadTrackerSettings(store, os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: run \"bzbridge config set %s <url>\" or set %s",
			domain.ErrTrackerNotConfigured, file.KeyURL, file.EnvURL)
	}

	if settings.Login != "" && settings.Password == "" && settings.APIKey == "" {
		password, err := cli.PromptPassword(fmt.Sprintf("Password for %s: ", settings.Login))
		switch {
		case err == nil:
			settings.Password = password
		case !errors.Is(err, cli.ErrNoTerminal):
			return nil, err
		}
	}

	invoker, err := rpc.New(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoker: %w", err)
	}

	baseURL, err := url.Parse(settings.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid tracker url %q", domain.ErrInvalidInput, settings.URL)
	}

	registry := bugzilla.NewFlagRegistry(settings.FlagAliases)
	logger.Debug("Acknowledgement flags: %s", strings.Join(registry.Names(), ", "))

	opts := []bugzilla.Option{bugzilla.WithFlagRegistry(registry)}
	if settings.APIKey != "" {
		opts = append(opts, bugzilla.WithAPIKey(settings.APIKey))
	}
	client := bugzilla.NewClient(baseURL, settings.Login, settings.Password, invoker, opts...)

	return services.NewIssueService(client), nil
}
