package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for cptgen configuration.
const envPrefix = "CPTGEN"

// envBindings maps config keys to their environment variables.
var envBindings = map[string]string{
	"path":           "CPTGEN_PATH",
	"contentDir":     "CPTGEN_CONTENT_DIR",
	"pluginsDir":     "CPTGEN_PLUGINS_DIR",
	"wpBinary":       "CPTGEN_WP_BINARY",
	"testedUpTo":     "CPTGEN_TESTED_UP_TO",
	"author":         "CPTGEN_AUTHOR",
	"authorUri":      "CPTGEN_AUTHOR_URI",
	"log.timestamps": "CPTGEN_LOG_TIMESTAMPS",
}

// Loader handles loading and merging configuration from the config file
// and the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values. A missing file
// is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

