package wordpress

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/cptgen/internal/errors"
)

// versionFile is where core declares $wp_version.
const versionFile = "wp-includes/version.php"

var wpVersionAssignment = regexp.MustCompile(`\$wp_version\s*=\s*['"]([^'"]+)['"]`)

// DetectVersion reads the core version of the install at root.
func DetectVersion(fs afero.Fs, root string) (string, error) {
	path := filepath.Join(root, filepath.FromSlash(versionFile))

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if exists, _ := afero.Exists(fs, path); !exists {
			return "", oerrors.Wrap(oerrors.ErrNotFound, path)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	m := wpVersionAssignment.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("no $wp_version assignment in %s", path)
	}
	return string(m[1]), nil
}

// TestedUpTo returns the detected core version, or fallback when the
// install cannot be read.
func TestedUpTo(fs afero.Fs, root, fallback string) string {
	v, err := DetectVersion(fs, root)
	if err != nil {
		return fallback
	}
	return v
}
