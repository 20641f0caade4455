package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bzbridge/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tracker configuration",
	Long: `View and change the tracker connection settings.

Keys:
  bugzilla.url              tracker base URL
  bugzilla.login            login name
  bugzilla.password         password
  bugzilla.api_key          API key
  bugzilla.protocol         xmlrpc or jsonrpc
  bugzilla.timeout          per-call timeout in seconds
  bugzilla.rate_limit       maximum calls per second, 0 for no limit
  bugzilla.skip_tls_verify  true to skip certificate checks
  flags.<name>              map a remote ack flag to PM, DEV or QE`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets a configuration value. A value of "-" reads it from standard input,
without echo when a secret is entered on a terminal.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configShowOutput string

func init() {
	configCmd.PersistentFlags().StringVarP(&configShowOutput, "output", "o", formatText, "output format: text, json or yaml")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(configShowOutput); err != nil {
		return err
	}
	store, err := getConfigStore()
	if err != nil {
		return err
	}

	snapshot := file.Snapshot(store)
	if configShowOutput != formatText {
		return writeStructured(cmd, configShowOutput, snapshot)
	}

	cmd.Println(titleStyle.Render("Configuration"))
	cmd.Printf("  %s %s\n", labelStyle.Render("File:"), store.Path())
	cmd.Println()
	if len(snapshot) == 0 {
		cmd.Println("  (empty)")
		return nil
	}
	for _, key := range file.SortedKeys(snapshot) {
		cmd.Printf("  %-26s %v\n", key, snapshot[key])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	raw := args[1]
	if raw == "-" {
		var err error
		if raw, err = readValue(cmd, key); err != nil {
			return err
		}
	}
	value, err := file.ParseSetting(key, raw)
	if err != nil {
		return err
	}
	store, err := getConfigStore()
	if err != nil {
		return err
	}

	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	shown := value
	if file.IsSecret(key) {
		shown = "********"
	}
	cmd.Printf("%s set to %v\n", key, shown)
	return nil
}

// readValue reads the value for key from stdin, prompting without echo for
// secrets when stdin is a terminal.
func readValue(cmd *cobra.Command, key string) (string, error) {
	if file.IsSecret(key) {
		value, err := PromptPassword(key + ": ")
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, ErrNoTerminal) {
			return "", err
		}
	}
	value, err := readLine(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read value: %w", err)
	}
	return value, nil
}
