// Package templates provides the embedded plugin templates and their
// rendering engine.
package templates

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed files/*.tmpl
var templateFS embed.FS

const (
	templateDir = "files"
	templateExt = ".tmpl"
)

// Template names understood by the engine.
const (
	PluginFile       = "plugin.php"
	PluginReadme     = "readme.txt"
	PluginGitignore  = "gitignore"
	PluginDistignore = "distignore"
)

// Names returns every embedded template name, sorted.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(templateFS, templateDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), templateExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), templateExt))
	}
	sort.Strings(names)
	return names, nil
}

// source returns the raw text of the named template.
func source(name string) ([]byte, error) {
	return fs.ReadFile(templateFS, path.Join(templateDir, name+templateExt))
}
