// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WordPressVersion is the core version written by NewWordPressRoot.
const WordPressVersion = "6.5.2"

// WordPressRoot is a minimal WordPress install on disk.
type WordPressRoot struct {
	// Dir is the install root.
	Dir string
}

// NewWordPressRoot creates an install skeleton in a temporary directory:
// wp-includes/version.php and an empty wp-content/plugins.
func NewWordPressRoot(t *testing.T) *WordPressRoot {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "wp-includes/version.php",
		"<?php\n$wp_version = '"+WordPressVersion+"';\n$wp_db_version = 57155;\n")
	if err := os.MkdirAll(filepath.Join(dir, "wp-content", "plugins"), 0o755); err != nil {
		t.Fatalf("failed to create plugins dir: %v", err)
	}
	return &WordPressRoot{Dir: dir}
}

// PluginsDir returns the plugins directory.
func (w *WordPressRoot) PluginsDir() string {
	return filepath.Join(w.Dir, "wp-content", "plugins")
}

// PluginFile returns the path of name inside the slug's plugin directory.
func (w *WordPressRoot) PluginFile(slug, name string) string {
	return filepath.Join(w.PluginsDir(), slug, name)
}

// IsolateHome points HOME at a fresh directory and clears CPTGEN_*
// overrides so the user's configuration cannot leak into a test.
func IsolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"CPTGEN_CONFIG", "CPTGEN_PATH", "CPTGEN_CONTENT_DIR", "CPTGEN_PLUGINS_DIR",
		"CPTGEN_WP_BINARY", "CPTGEN_TESTED_UP_TO", "CPTGEN_AUTHOR", "CPTGEN_AUTHOR_URI",
		"CPTGEN_LOG_TIMESTAMPS",
	} {
		t.Setenv(key, "")
	}
	return home
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test if it is missing.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
