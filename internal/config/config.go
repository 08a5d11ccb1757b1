// Package config provides configuration loading and management.
package config

// DefaultWPBinary is the WP-CLI executable used for plugin activation.
const DefaultWPBinary = "wp"

// DefaultTestedUpTo is written to the readme when no WordPress install
// version can be detected and none is configured.
const DefaultTestedUpTo = "6.7"

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the cptgen configuration file.
type Config struct {
	// Path is the WordPress installation root.
	// Env: CPTGEN_PATH, Default: current directory
	Path string `mapstructure:"path" yaml:"path,omitempty" json:"path,omitempty"`

	// ContentDir is the wp-content directory.
	// Env: CPTGEN_CONTENT_DIR, Default: <path>/wp-content
	ContentDir string `mapstructure:"contentDir" yaml:"contentDir,omitempty" json:"contentDir,omitempty"`

	// PluginsDir is the plugins root new plugins are generated under.
	// Env: CPTGEN_PLUGINS_DIR, Default: <contentDir>/plugins
	PluginsDir string `mapstructure:"pluginsDir" yaml:"pluginsDir,omitempty" json:"pluginsDir,omitempty"`

	// WPBinary is the WP-CLI executable used by --activate.
	// Env: CPTGEN_WP_BINARY, Default: wp
	WPBinary string `mapstructure:"wpBinary" yaml:"wpBinary,omitempty" json:"wpBinary,omitempty"`

	// TestedUpTo overrides the "Tested up to" readme header when the
	// installed WordPress version cannot be detected.
	TestedUpTo string `mapstructure:"testedUpTo" yaml:"testedUpTo,omitempty" json:"testedUpTo,omitempty"`

	// Author is the default for --plugin_author.
	Author string `mapstructure:"author" yaml:"author,omitempty" json:"author,omitempty"`

	// AuthorURI is the default for --plugin_author_uri.
	AuthorURI string `mapstructure:"authorUri" yaml:"authorUri,omitempty" json:"authorUri,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty" json:"log,omitempty"`
}

// DefaultConfig returns the Config written by `cptgen config init`.
func DefaultConfig() *Config {
	return &Config{
		Path:       ".",
		WPBinary:   DefaultWPBinary,
		TestedUpTo: DefaultTestedUpTo,
	}
}
