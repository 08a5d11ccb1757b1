package wordpress

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/cptgen/internal/config"
	oerrors "github.com/opmodel/cptgen/internal/errors"
	"github.com/opmodel/cptgen/internal/output"
)

func TestDetectVersion(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/wp/wp-includes/version.php", []byte(
		"<?php\n/**\n * WordPress Version\n */\n$wp_version = '6.5.2';\n$wp_db_version = 57155;\n"), 0o644))

	v, err := DetectVersion(fs, "/wp")
	require.NoError(t, err)
	assert.Equal(t, "6.5.2", v)
	assert.Equal(t, "6.5.2", TestedUpTo(fs, "/wp", "6.7"))
}

func TestDetectVersion_Missing(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := DetectVersion(fs, "/wp")
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
	assert.Equal(t, "6.7", TestedUpTo(fs, "/wp", "6.7"))
}

func TestDetectVersion_NoAssignment(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/wp/wp-includes/version.php", []byte("<?php\n"), 0o644))

	_, err := DetectVersion(fs, "/wp")
	assert.ErrorContains(t, err, "no $wp_version assignment")
}

func TestLayoutFromConfig(t *testing.T) {
	rc, err := config.ResolveAll(config.ResolveAllOptions{PathFlag: "/srv/wp"})
	require.NoError(t, err)

	l := LayoutFromConfig(rc)
	assert.Equal(t, "/srv/wp", l.Root)
	assert.Equal(t, "/srv/wp/wp-content/plugins", l.PluginsDir)
	assert.Equal(t, "/srv/wp/wp-content/themes", l.ThemesDir)
}

func TestCLIActivator_Args(t *testing.T) {
	a := NewCLIActivator("wp", "/srv/wp")

	assert.Equal(t, []string{"plugin", "activate", "book", "--path=/srv/wp"}, a.Args("book", false))
	assert.Equal(t, []string{"plugin", "activate", "book", "--network", "--path=/srv/wp"}, a.Args("book", true))
}

func TestCLIActivator_Activate(t *testing.T) {
	var stdout bytes.Buffer
	output.SetOutput(&stdout)
	t.Cleanup(func() { output.SetOutput(os.Stdout) })

	a := NewCLIActivator("wp", "/srv/wp")
	var gotName string
	var gotArgs []string
	a.run = func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return []byte("Plugin 'book' activated.\nSuccess: Activated 1 of 1 plugins.\n"), nil
	}

	require.NoError(t, a.Activate(context.Background(), "book", true))
	assert.Equal(t, "wp", gotName)
	assert.Equal(t, []string{"plugin", "activate", "book", "--network", "--path=/srv/wp"}, gotArgs)
	assert.Contains(t, stdout.String(), "Success: Activated 1 of 1 plugins.")
}

func TestCLIActivator_ActivateFailure(t *testing.T) {
	a := NewCLIActivator("wp", "/srv/wp")
	a.run = func(context.Context, string, ...string) ([]byte, error) {
		return []byte("Error: This does not seem to be a WordPress installation."), errors.New("exit status 1")
	}

	err := a.Activate(context.Background(), "book", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Contains(t, err.Error(), "does not seem to be a WordPress installation")
}
