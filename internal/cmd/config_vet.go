package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/cptgen/internal/config"
	oerrors "github.com/opmodel/cptgen/internal/errors"
	"github.com/opmodel/cptgen/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the cptgen configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Keys and values match the configuration schema

The config path is resolved using precedence:
  --config flag > CPTGEN_CONFIG env > ~/.cptgen/config.yaml

Examples:
  # Validate default configuration
  cptgen config vet

  # Validate custom config path
  cptgen config vet --config /path/to/config.yaml`,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	configPath := GetConfigPath()

	output.Debug("validating config", "path", configPath)

	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return err
	}
	if !exists {
		return oerrors.NewNotFoundError(
			"configuration file not found",
			configPath,
			"Run 'cptgen config init' to create default configuration",
		)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return err
	}

	if err := validator.ValidateFile(configPath); err != nil {
		var lines []string
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			for _, v := range verrs {
				lines = append(lines, fmt.Sprintf("%s: %s", v.Field, v.Message))
			}
		} else {
			lines = append(lines, err.Error())
		}
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration is invalid",
			Location: configPath,
			Context:  map[string]string{"errors": strings.Join(lines, "; ")},
			Hint:     "Fix the listed keys or regenerate with 'cptgen config init --force'.",
			Cause:    oerrors.ErrValidation,
		}
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + configPath))
	return nil
}
