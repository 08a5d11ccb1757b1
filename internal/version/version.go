// Package version provides version information for the cptgen CLI.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// PluginVersion is the version written into generated plugin headers.
const PluginVersion = "0.1.0"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`
}

// WPBinaryInfo describes the WP-CLI binary used for plugin activation.
type WPBinaryInfo struct {
	// Version is the WP-CLI version.
	Version string `json:"version"`

	// Path is the resolved binary path.
	Path string `json:"path"`

	// Found indicates if the binary was found.
	Found bool `json:"found"`

	// Message explains why detection failed.
	Message string `json:"message,omitempty"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("cptgen:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion)
}

// String returns a human-readable WP-CLI binary info string.
func (w WPBinaryInfo) String() string {
	if !w.Found {
		msg := "not found"
		if w.Message != "" {
			msg = w.Message
		}
		return fmt.Sprintf("  Binary Version: %s\n  Binary Path:    -", msg)
	}
	return fmt.Sprintf("  Binary Version: %s\n  Binary Path:    %s", w.Version, w.Path)
}

// FullVersionString returns complete version information including WP-CLI.
func FullVersionString(info Info, wp WPBinaryInfo) string {
	return fmt.Sprintf("%s\n\nWP-CLI:\n%s", info.String(), wp.String())
}
