package templates

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// phpQuoter escapes text for a single-quoted PHP string literal.
var phpQuoter = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// PHPString escapes s so it can sit between single quotes in PHP source.
func PHPString(s string) string {
	return phpQuoter.Replace(s)
}

// funcMap is sprig's text function map plus the PHP helpers.
func funcMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["phpstr"] = PHPString
	return fm
}

// Engine renders embedded templates with the sprig function map.
// Parsed templates are cached, so an Engine should be reused.
type Engine struct {
	mu    sync.Mutex
	cache map[string]*template.Template
}

// NewEngine creates a template engine.
func NewEngine() *Engine {
	return &Engine{cache: make(map[string]*template.Template)}
}

// Render executes the named template against data.
func (e *Engine) Render(name string, data any) (string, error) {
	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

func (e *Engine) lookup(name string) (*template.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[name]; ok {
		return tmpl, nil
	}

	content, err := source(name)
	if err != nil {
		return nil, fmt.Errorf("unknown template %q: %w", name, err)
	}

	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(funcMap()).
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	e.cache[name] = tmpl
	return tmpl, nil
}
