package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/cptgen/internal/config"
	"github.com/opmodel/cptgen/internal/output"
	"github.com/opmodel/cptgen/internal/scaffold"
)

func resolved(t *testing.T) *config.ResolvedConfig {
	t.Helper()
	rc, err := config.ResolveAll(config.ResolveAllOptions{PathFlag: "/srv/wp"})
	require.NoError(t, err)
	return rc
}

func TestInitialize_Once(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first := Initialize(Options{Resolved: resolved(t), Fs: afero.NewMemMapFs(), Interactive: output.BoolPtr(false)})
	second := Initialize(Options{Resolved: resolved(t), Fs: afero.NewMemMapFs()})

	assert.Same(t, first, second)
	assert.Same(t, first, Instance())
}

func TestReset(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first := Initialize(Options{Resolved: resolved(t), Fs: afero.NewMemMapFs(), Interactive: output.BoolPtr(false)})
	Reset()
	assert.Nil(t, Instance())

	second := Initialize(Options{Resolved: resolved(t), Fs: afero.NewMemMapFs(), Interactive: output.BoolPtr(false)})
	assert.NotSame(t, first, second)
}

func TestInitialize_WiresGenerator(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/srv/wp/wp-includes/version.php", []byte("<?php\n$wp_version = '6.4.1';\n"), 0o644))

	var out bytes.Buffer
	a := Initialize(Options{
		Resolved:    resolved(t),
		Fs:          fs,
		In:          strings.NewReader(""),
		Out:         &out,
		Interactive: output.BoolPtr(false),
	})

	result, err := a.Generator.Generate(context.Background(), "book", scaffold.Options{})
	require.NoError(t, err)
	assert.Equal(t, "/srv/wp/wp-content/plugins/book", result.Request.TargetDirectory)
	assert.Equal(t, "6.4.1", result.Request.PluginTestedUpTo)
	assert.Contains(t, out.String(), scaffold.SuccessMessage)

	readme, err := afero.ReadFile(fs, "/srv/wp/wp-content/plugins/book/readme.txt")
	require.NoError(t, err)
	assert.Contains(t, string(readme), "Tested up to: 6.4.1")
}
