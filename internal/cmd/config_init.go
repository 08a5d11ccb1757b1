package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opmodel/cptgen/internal/config"
	oerrors "github.com/opmodel/cptgen/internal/errors"
	"github.com/opmodel/cptgen/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the cptgen configuration.

Creates ~/.cptgen/config.yaml (or the file named by --config /
CPTGEN_CONFIG) with the default WordPress path, WP-CLI binary and
"Tested up to" version. Add author and authorUri to fill the plugin
header for every generated plugin.

Examples:
  # Initialize configuration
  cptgen config init

  # Overwrite existing configuration
  cptgen config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath, err := config.ExpandPath(GetConfigPath())
	if err != nil || configPath == "" {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return err
	}
	if exists && !configInitForce {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configPath,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return oerrors.Wrap(oerrors.ErrPermission, "could not create "+filepath.Dir(configPath))
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return oerrors.Wrap(oerrors.ErrPermission, "could not write "+configPath)
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + configPath))
	output.Println("Validate with: cptgen config vet")

	return nil
}
