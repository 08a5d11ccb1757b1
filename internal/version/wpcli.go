package version

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// wpVersionRegex matches WP-CLI version output like "WP-CLI 2.10.0".
var wpVersionRegex = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// DetectWPBinary finds the WP-CLI binary and reads its version.
func DetectWPBinary(binary string) WPBinaryInfo {
	if binary == "" {
		binary = "wp"
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return WPBinaryInfo{Message: binary + " not found in PATH"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return WPBinaryInfo{Path: path, Found: true, Message: "failed to get WP-CLI version: " + err.Error()}
	}

	v, err := extractVersion(out.String())
	if err != nil {
		return WPBinaryInfo{Path: path, Found: true, Message: err.Error()}
	}
	return WPBinaryInfo{Version: v, Path: path, Found: true}
}

// extractVersion extracts the version number from "wp --version" output.
func extractVersion(output string) (string, error) {
	firstLine, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	match := wpVersionRegex.FindString(firstLine)
	if match == "" {
		return "", &versionParseError{output: output}
	}
	return match, nil
}

// versionParseError indicates failure to parse WP-CLI version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse WP-CLI version from output: " + e.output
}
