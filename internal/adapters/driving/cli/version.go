package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and supported tracker protocols",
	RunE:  runVersion,
}

var versionOutput string

func init() {
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", formatText, "output format: text, json or yaml")
	rootCmd.AddCommand(versionCmd)
}

type versionView struct {
	Version   string   `json:"version" yaml:"version"`
	Protocols []string `json:"protocols" yaml:"protocols"`
}

func runVersion(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(versionOutput); err != nil {
		return err
	}
	view := versionView{
		Version:   version,
		Protocols: []string{domain.ProtocolXMLRPC.String(), domain.ProtocolJSONRPC.String()},
	}
	if versionOutput != formatText {
		return writeStructured(cmd, versionOutput, view)
	}

	cmd.Printf("bzbridge version %s\n", view.Version)
	for _, p := range []domain.Protocol{domain.ProtocolXMLRPC, domain.ProtocolJSONRPC} {
		cmd.Printf("  %-8s %s\n", p, p.Description())
	}
	return nil
}
