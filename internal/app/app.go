// Package app holds the process-wide generator instance shared by the
// commands.
package app

import (
	"io"
	"os"
	"sync"

	"github.com/spf13/afero"

	"github.com/opmodel/cptgen/internal/config"
	"github.com/opmodel/cptgen/internal/interaction"
	"github.com/opmodel/cptgen/internal/output"
	"github.com/opmodel/cptgen/internal/scaffold"
	"github.com/opmodel/cptgen/internal/templates"
	"github.com/opmodel/cptgen/internal/wordpress"
)

// Options configure Initialize. Zero values select the real terminal and
// filesystem.
type Options struct {
	// Resolved is the resolved configuration. Required.
	Resolved *config.ResolvedConfig

	// Fs defaults to the OS filesystem.
	Fs afero.Fs

	// In and Out default to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer

	// Interactive selects the TUI prompter. Nil means detect from stdin.
	Interactive *bool

	// Activator replaces the WP-CLI activator.
	Activator scaffold.Activator
}

// App wires the generator to its collaborators.
type App struct {
	Resolved   *config.ResolvedConfig
	Layout     wordpress.Layout
	Fs         afero.Fs
	Sink       *scaffold.AferoSink
	Renderer   *templates.Engine
	Pluralizer scaffold.Pluralizer
	Prompter   interaction.Prompter
	Activator  scaffold.Activator
	Generator  *scaffold.Generator
}

var (
	once     sync.Once
	instance *App
)

// Initialize builds the App on first call. Later calls ignore opts and
// return the same instance.
func Initialize(opts Options) *App {
	once.Do(func() {
		instance = build(opts)
	})
	return instance
}

// Instance returns the App, or nil before Initialize.
func Instance() *App {
	return instance
}

// Reset discards the instance. Tests only.
func Reset() {
	once = sync.Once{}
	instance = nil
}

func build(opts Options) *App {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	interactive := output.IsInputTTY()
	if opts.Interactive != nil {
		interactive = *opts.Interactive
	}

	rc := opts.Resolved
	layout := wordpress.LayoutFromConfig(rc)

	activator := opts.Activator
	if activator == nil {
		activator = wordpress.NewCLIActivator(rc.WPBinary.Value, layout.Root)
	}

	a := &App{
		Resolved:   rc,
		Layout:     layout,
		Fs:         fs,
		Sink:       scaffold.NewAferoSink(fs),
		Renderer:   templates.NewEngine(),
		Pluralizer: scaffold.NewPluralizer(),
		Prompter:   interaction.New(in, out, interactive),
		Activator:  activator,
	}

	testedUpTo := wordpress.TestedUpTo(fs, layout.Root, rc.TestedUpTo.Value)
	output.Debug("wordpress layout",
		"root", layout.Root,
		"plugins", layout.PluginsDir,
		"tested_up_to", testedUpTo)

	a.Generator = scaffold.NewGenerator(
		scaffold.Config{
			PluginsRoot: layout.PluginsDir,
			Defaults: scaffold.Defaults{
				PluginAuthor:    rc.Author.Value,
				PluginAuthorURI: rc.AuthorURI.Value,
				TestedUpTo:      testedUpTo,
			},
		},
		scaffold.Deps{
			Sink:       a.Sink,
			Renderer:   a.Renderer,
			Pluralizer: a.Pluralizer,
			Prompter:   a.Prompter,
			Activator:  a.Activator,
			Out:        out,
		},
	)
	return a
}
