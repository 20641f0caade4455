package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bzbridge/internal/core/ports/driven"
	"github.com/custodia-labs/bzbridge/internal/core/ports/driving"
	"github.com/custodia-labs/bzbridge/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

// Services used by commands. They are built on first use from factories
// so that commands which do not talk to the tracker work unconfigured.
var (
	issueService driving.IssueService
	configStore  driven.ConfigStore
)

// Persistent flags.
var (
	verbose   bool
	configDir string
)

// Factories builds the services commands depend on.
type Factories struct {
	// ConfigStore opens the configuration store in dir. An empty dir
	// selects the default location.
	ConfigStore func(dir string) (driven.ConfigStore, error)

	// IssueService builds the issue service from the configuration.
	IssueService func(store driven.ConfigStore) (driving.IssueService, error)
}

var factories Factories

var rootCmd = &cobra.Command{
	Use:   "bzbridge",
	Short: "Work with Bugzilla issues from the command line",
	Long: `bzbridge reads and updates issues on a Bugzilla tracker over XML-RPC or JSON-RPC.

Configure the tracker with "bzbridge config set bugzilla.url <url>" or the
BZBRIDGE_URL environment variable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.bzbridge)")
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, v string, f Factories) error {
	if v != "" {
		version = v
	}
	factories = f
	return rootCmd.ExecuteContext(ctx)
}

// getConfigStore returns the configuration store, opening it on first use.
func getConfigStore() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}
	if factories.ConfigStore == nil {
		return nil, errors.New("config store not configured")
	}
	store, err := factories.ConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	configStore = store
	return configStore, nil
}

// getIssueService returns the issue service, building it on first use.
func getIssueService() (driving.IssueService, error) {
	if issueService != nil {
		return issueService, nil
	}
	if factories.IssueService == nil {
		return nil, errors.New("issue service not configured")
	}
	store, err := getConfigStore()
	if err != nil {
		return nil, err
	}
	service, err := factories.IssueService(store)
	if err != nil {
		return nil, err
	}
	issueService = service
	return issueService, nil
}
