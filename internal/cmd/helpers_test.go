package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/opmodel/cptgen/internal/app"
	"github.com/opmodel/cptgen/internal/output"
)

// execute runs the root command with args and returns what was written
// to stdout through both cobra and the output package.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resolvedConfig = nil
	loadedConfig = nil
	app.Reset()
	t.Cleanup(func() {
		resolvedConfig = nil
		loadedConfig = nil
		app.Reset()
	})

	var stdout bytes.Buffer
	output.SetOutput(&stdout)
	t.Cleanup(func() { output.SetOutput(os.Stdout) })

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	return stdout.String(), err
}
