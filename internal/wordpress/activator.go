package wordpress

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/opmodel/cptgen/internal/output"
)

// runner executes a command and returns its combined output.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// CLIActivator activates plugins by running WP-CLI against an install.
type CLIActivator struct {
	binary string
	root   string
	run    runner
}

// NewCLIActivator returns an activator that runs binary with --path=root.
func NewCLIActivator(binary, root string) *CLIActivator {
	return &CLIActivator{binary: binary, root: root, run: execRunner}
}

// Args returns the WP-CLI arguments used to activate slug.
func (a *CLIActivator) Args(slug string, network bool) []string {
	args := []string{"plugin", "activate", slug}
	if network {
		args = append(args, "--network")
	}
	return append(args, "--path="+a.root)
}

// Activate runs "plugin activate" and echoes WP-CLI's output.
func (a *CLIActivator) Activate(ctx context.Context, slug string, network bool) error {
	args := a.Args(slug, network)
	output.Debug("running WP-CLI", "binary", a.binary, "args", strings.Join(args, " "))

	var out []byte
	err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
		var runErr error
		out, runErr = a.run(ctx, a.binary, args...)
		return runErr
	}, output.WithTitle("Activating "+slug))

	text := strings.TrimSpace(string(out))
	if err != nil {
		if text != "" {
			return fmt.Errorf("%s %s: %w: %s", a.binary, strings.Join(args, " "), err, text)
		}
		return fmt.Errorf("%s %s: %w", a.binary, strings.Join(args, " "), err)
	}

	if text != "" {
		output.Println(text)
	}
	return nil
}
