package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/cptgen/internal/errors"
	"github.com/opmodel/cptgen/internal/testutil"
)

func TestNewConfigInitCmd(t *testing.T) {
	cmd := NewConfigInitCmd()

	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("force"))
}

func TestConfigInit_CreatesFile(t *testing.T) {
	home := testutil.IsolateHome(t)

	out, err := execute(t, "", "config", "init")
	require.NoError(t, err)

	configFile := filepath.Join(home, ".cptgen", "config.yaml")
	assert.FileExists(t, configFile)
	assert.Contains(t, testutil.ReadFile(t, configFile), "wpBinary: wp")
	assert.Contains(t, out, "Configuration initialized at "+configFile)
}

func TestConfigInit_ExistingRequiresForce(t *testing.T) {
	home := testutil.IsolateHome(t)
	configFile := testutil.WriteFile(t, home, ".cptgen/config.yaml", "author: Me\n")

	_, err := execute(t, "", "config", "init")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Equal(t, "author: Me\n", testutil.ReadFile(t, configFile))

	_, err = execute(t, "", "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, configFile), "wpBinary: wp")
}

func TestConfigInit_CustomPath(t *testing.T) {
	testutil.IsolateHome(t)
	configFile := filepath.Join(t.TempDir(), "nested", "cptgen.yaml")

	_, err := execute(t, "", "config", "init", "--config", configFile)
	require.NoError(t, err)
	assert.FileExists(t, configFile)
}
