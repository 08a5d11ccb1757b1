// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/cptgen/internal/config"
	"github.com/opmodel/cptgen/internal/output"
)

var (
	// Global flags
	configFlag     string
	pathFlag       string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded during PersistentPreRunE
	loadedConfig   *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the cptgen CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cptgen",
		Short: "WordPress Custom Post Type plugin generator",
		Long: `cptgen generates the skeleton of a WordPress plugin that registers a
Custom Post Type: the main plugin file, a readme and packaging ignore files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: CPTGEN_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&pathFlag, "path", "", "WordPress root directory (env: CPTGEN_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewPluginCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		// Commands such as `config vet` report broken files themselves.
		output.Debug("config load error", "error", err)
	}
	loadedConfig = cfg

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag: configFlag,
		PathFlag:   pathFlag,
		Config:     cfg,
	})
	if err != nil {
		return err
	}
	resolvedConfig = resolved

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg != nil && cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verboseFlag {
		config.LogResolvedValues(resolved.Values())
	}

	return nil
}

// GetResolvedConfig returns the resolved configuration. It resolves from
// flags and environment alone when the root hook has not run.
func GetResolvedConfig() (*config.ResolvedConfig, error) {
	if resolvedConfig != nil {
		return resolvedConfig, nil
	}
	return config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag: configFlag,
		PathFlag:   pathFlag,
		Config:     loadedConfig,
	})
}

// GetConfigPath returns the resolved config file path.
func GetConfigPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.ConfigPath.Value
	}
	if configFlag != "" {
		return configFlag
	}
	path, err := config.GetConfigFile()
	if err != nil {
		return ""
	}
	return path
}
