package config

import (
	"os"
	"path/filepath"

	"github.com/opmodel/cptgen/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value with its provenance.
type ResolvedValue struct {
	// Key is the config key (e.g. "pluginsDir").
	Key string
	// Value is the effective value.
	Value string
	// Source is where Value came from.
	Source ConfigSource
	// Shadowed holds lower-precedence values that were overridden.
	Shadowed map[ConfigSource]string
}

// resolve applies flag > env > config > default precedence.
// Config values loaded through viper already include env overrides, so a
// config value equal to the env value is attributed to env.
func resolve(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	envValue := ""
	if envVar != "" {
		envValue = os.Getenv(envVar)
	}
	if envValue != "" && configValue == envValue {
		configValue = ""
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, envValue},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}

	return rv
}

// ResolveAllOptions contains the inputs to ResolveAll.
type ResolveAllOptions struct {
	// ConfigFlag is the --config flag value.
	ConfigFlag string
	// PathFlag is the --path flag value (WordPress root).
	PathFlag string
	// Config is the loaded configuration (may be nil).
	Config *Config
}

// ResolvedConfig holds every effective setting with its provenance.
type ResolvedConfig struct {
	ConfigPath ResolvedValue
	Path       ResolvedValue
	ContentDir ResolvedValue
	PluginsDir ResolvedValue
	ThemesDir  ResolvedValue
	WPBinary   ResolvedValue
	TestedUpTo ResolvedValue
	Author     ResolvedValue
	AuthorURI  ResolvedValue
}

// Values returns all resolved values in a stable order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{
		r.ConfigPath, r.Path, r.ContentDir, r.PluginsDir, r.ThemesDir,
		r.WPBinary, r.TestedUpTo, r.Author, r.AuthorURI,
	}
}

// ResolveAll resolves every configuration value. Directory values are
// made absolute so later parent-directory comparisons are stable.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	defaultConfigPath := ""
	if paths, err := DefaultPaths(); err == nil {
		defaultConfigPath = paths.ConfigFile
	}

	r := &ResolvedConfig{
		ConfigPath: resolve("config", opts.ConfigFlag, "CPTGEN_CONFIG", "", defaultConfigPath),
		Path:       resolve("path", opts.PathFlag, envBindings["path"], cfg.Path, "."),
		WPBinary:   resolve("wpBinary", "", envBindings["wpBinary"], cfg.WPBinary, DefaultWPBinary),
		TestedUpTo: resolve("testedUpTo", "", envBindings["testedUpTo"], cfg.TestedUpTo, DefaultTestedUpTo),
		Author:     resolve("author", "", envBindings["author"], cfg.Author, ""),
		AuthorURI:  resolve("authorUri", "", envBindings["authorUri"], cfg.AuthorURI, ""),
	}

	root, err := absPath(r.Path.Value)
	if err != nil {
		return nil, err
	}
	r.Path.Value = root

	r.ContentDir = resolve("contentDir", "", envBindings["contentDir"], cfg.ContentDir, filepath.Join(root, "wp-content"))
	if r.ContentDir.Value, err = absPath(r.ContentDir.Value); err != nil {
		return nil, err
	}

	r.PluginsDir = resolve("pluginsDir", "", envBindings["pluginsDir"], cfg.PluginsDir, filepath.Join(r.ContentDir.Value, "plugins"))
	if r.PluginsDir.Value, err = absPath(r.PluginsDir.Value); err != nil {
		return nil, err
	}

	r.ThemesDir = ResolvedValue{
		Key:    "themesDir",
		Value:  filepath.Join(r.ContentDir.Value, "themes"),
		Source: r.ContentDir.Source,
	}

	return r, nil
}

func absPath(p string) (string, error) {
	expanded, err := ExpandPath(p)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
