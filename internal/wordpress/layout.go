// Package wordpress knows the on-disk layout of a WordPress install and
// how to hand a generated plugin to WP-CLI.
package wordpress

import (
	"github.com/opmodel/cptgen/internal/config"
)

// Layout holds the directories of one WordPress install.
type Layout struct {
	Root       string
	ContentDir string
	PluginsDir string
	ThemesDir  string
}

// LayoutFromConfig builds a Layout from resolved configuration.
func LayoutFromConfig(rc *config.ResolvedConfig) Layout {
	return Layout{
		Root:       rc.Path.Value,
		ContentDir: rc.ContentDir.Value,
		PluginsDir: rc.PluginsDir.Value,
		ThemesDir:  rc.ThemesDir.Value,
	}
}
