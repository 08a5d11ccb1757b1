package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)
	assert.True(t, v.schema.Exists())
}

func TestValidator_ValidateBytes(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantField string
	}{
		{name: "empty file is valid", content: ""},
		{name: "full valid config", content: `
path: /var/www
contentDir: /var/www/wp-content
pluginsDir: /var/www/wp-content/plugins
wpBinary: wp
testedUpTo: "6.5.2"
author: Jane
authorUri: https://example.com
log:
  timestamps: true
`},
		{name: "unknown key rejected", content: "registry: ghcr.io\n", wantField: "registry"},
		{name: "bad tested version", content: "testedUpTo: latest\n", wantField: "testedUpTo"},
		{name: "binary with spaces", content: "wpBinary: php wp-cli.phar\n", wantField: "wpBinary"},
		{name: "empty path", content: "path: \"\"\n", wantField: "path"},
		{name: "timestamps must be bool", content: "log:\n  timestamps: sometimes\n", wantField: "log.timestamps"},
		{name: "invalid yaml", content: "path: [unclosed\n", wantField: "(file)"},
	}

	v, err := NewValidator()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.content))
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)

			found := false
			for _, e := range verrs {
				if strings.Contains(e.Field, tt.wantField) {
					found = true
				}
			}
			assert.True(t, found, "expected an error for field %q, got %v", tt.wantField, verrs)
		})
	}
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("author: Jane\n"), 0o644))
	assert.NoError(t, v.ValidateFile(file))

	assert.Error(t, v.ValidateFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{{Field: "wpBinary", Message: "invalid value"}}
	assert.Contains(t, errs.Error(), "config validation failed")
	assert.Contains(t, errs.Error(), "wpBinary: invalid value")
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
}

func TestDefaultConfig(t *testing.T) {
	def := DefaultConfig()
	assert.Equal(t, ".", def.Path)
	assert.Equal(t, DefaultWPBinary, def.WPBinary)
	assert.Equal(t, DefaultTestedUpTo, def.TestedUpTo)
}
