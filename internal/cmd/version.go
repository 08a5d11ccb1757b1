package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/cptgen/internal/config"
	"github.com/opmodel/cptgen/internal/output"
	"github.com/opmodel/cptgen/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show cptgen version information.

Displays:
  - cptgen version, commit, and build date
  - WP-CLI binary used by --activate, if found`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	binary := config.DefaultWPBinary
	if rc, err := GetResolvedConfig(); err == nil {
		binary = rc.WPBinary.Value
	}

	output.Println(version.FullVersionString(version.Get(), version.DetectWPBinary(binary)))
	return nil
}
