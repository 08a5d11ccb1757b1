package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const configHeader = `# cptgen configuration
# Environment variables (CPTGEN_*) and command-line flags take precedence.
`

// DefaultConfigYAML renders DefaultConfig as the YAML written by
// `cptgen config init`.
func DefaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("marshaling default config: %w", err)
	}
	return append([]byte(configHeader), data...), nil
}
