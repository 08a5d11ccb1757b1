package scaffold

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	oerrors "github.com/opmodel/cptgen/internal/errors"
	"github.com/opmodel/cptgen/internal/output"
	"github.com/opmodel/cptgen/internal/templates"
)

// Overwrite prompt text and the accepted answers.
const (
	overwriteQuestion = "Skip this file, or replace it?"
	overwriteMarker   = "[s/r]: "
	answerSkip        = "s"
	answerReplace     = "r"
)

// pluginFile pairs a template with the file it produces.
type pluginFile struct {
	template string
	name     string
}

// pluginFiles are the generated files, in write order.
var pluginFiles = []pluginFile{
	{template: templates.PluginFile},
	{template: templates.PluginReadme, name: "readme.txt"},
	{template: templates.PluginGitignore, name: ".gitignore"},
	{template: templates.PluginDistignore, name: ".distignore"},
}

// fileName returns the on-disk name. The main plugin file is named after
// the slug.
func (f pluginFile) fileName(slug string) string {
	if f.name == "" {
		return slug + ".php"
	}
	return f.name
}

// Config holds the environment a Generator writes into.
type Config struct {
	// PluginsRoot is the WordPress plugins directory.
	PluginsRoot string

	// Defaults supply author and compatibility values not given as options.
	Defaults Defaults
}

// Deps are the collaborators a Generator delegates to. Activator may be
// nil when activation is never requested.
type Deps struct {
	Sink       Sink
	Renderer   Renderer
	Pluralizer Pluralizer
	Prompter   Prompter
	Activator  Activator

	// Out receives the final outcome message.
	Out io.Writer
}

// Generator creates plugin skeletons.
type Generator struct {
	cfg  Config
	deps Deps
}

// NewGenerator creates a generator. A nil Pluralizer falls back to
// English rules and a nil Out discards messages.
func NewGenerator(cfg Config, deps Deps) *Generator {
	if deps.Pluralizer == nil {
		deps.Pluralizer = NewPluralizer()
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	return &Generator{cfg: cfg, deps: deps}
}

// renderedFile is a template rendered for a concrete path.
type renderedFile struct {
	name    string
	path    string
	content string
}

// Generate validates slug, derives the request, resolves the target
// directory and writes the plugin files. Files written before a failure
// are left in place and listed in the returned Result.
func (g *Generator) Generate(ctx context.Context, slug string, opts Options) (*Result, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}

	req := NewRequest(slug, opts, g.cfg.Defaults, g.deps.Pluralizer)

	target, err := ResolveTarget(g.deps.Sink, g.cfg.PluginsRoot, slug, opts.Dir)
	if err != nil {
		return nil, err
	}
	req.TargetDirectory = target

	logger := output.PluginLogger(slug)
	logger.Debug("generating plugin",
		"target", target,
		"label", req.Label,
		"dashicon", req.Dashicon,
		"force", opts.Force,
		"dry_run", opts.DryRun)

	files, err := g.render(req)
	if err != nil {
		return nil, err
	}

	result := &Result{Request: req, DryRun: opts.DryRun}
	if opts.DryRun {
		return result, g.plan(result, files)
	}

	if err := g.write(result, files, opts.Force, logger); err != nil {
		return result, err
	}

	g.report(result)

	if err := g.activate(ctx, result, opts); err != nil {
		return result, err
	}
	return result, nil
}

func (g *Generator) render(req *Request) ([]renderedFile, error) {
	files := make([]renderedFile, 0, len(pluginFiles))
	for _, f := range pluginFiles {
		content, err := g.deps.Renderer.Render(f.template, req)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", f.template, err)
		}
		name := f.fileName(req.Slug)
		files = append(files, renderedFile{
			name:    name,
			path:    filepath.Join(req.TargetDirectory, name),
			content: content,
		})
	}
	return files, nil
}

// plan records what a real run would do without touching the sink.
func (g *Generator) plan(result *Result, files []renderedFile) error {
	for _, f := range files {
		exists, err := g.deps.Sink.Exists(f.path)
		if err != nil {
			return fmt.Errorf("checking %s: %w", f.path, err)
		}
		action := ActionCreate
		if exists {
			action = ActionReplace
		}
		result.Files = append(result.Files, FileOutcome{Name: f.name, Path: f.path, Action: action})
	}
	return nil
}

func (g *Generator) write(result *Result, files []renderedFile, force bool, logger *log.Logger) error {
	for _, f := range files {
		action, err := g.decide(f.path, force, logger)
		if err != nil {
			return err
		}

		outcome := FileOutcome{Name: f.name, Path: f.path, Action: action}
		if action == ActionSkip {
			result.Files = append(result.Files, outcome)
			continue
		}

		if err := g.deps.Sink.MkdirAll(filepath.Dir(f.path)); err != nil {
			return oerrors.NewWriteError(f.path, err)
		}
		if err := g.deps.Sink.WriteFile(f.path, f.content); err != nil {
			return oerrors.NewWriteError(f.path, err)
		}

		logger.Debug("wrote file", "path", f.path, "action", action)
		result.Files = append(result.Files, outcome)
		result.Written = append(result.Written, f.path)
	}
	return nil
}

// decide returns the action for path: create when absent, replace when
// forced, otherwise whatever the user answers.
func (g *Generator) decide(path string, force bool, logger *log.Logger) (Action, error) {
	exists, err := g.deps.Sink.Exists(path)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	if !exists {
		return ActionCreate, nil
	}

	logger.Warn("File already exists.", "path", path)

	if force {
		logger.Info("Replacing", "path", path)
		return ActionReplace, nil
	}

	answer, err := g.askOverwrite()
	if err != nil {
		return "", err
	}

	if answer == answerReplace {
		logger.Info("Replacing", "path", path)
		return ActionReplace, nil
	}
	logger.Info("Skipping", "path", path)
	return ActionSkip, nil
}

// askOverwrite repeats the question until the answer is exactly "s" or "r".
func (g *Generator) askOverwrite() (string, error) {
	if g.deps.Prompter == nil {
		return "", fmt.Errorf("file exists and no prompter is available; use --force to replace")
	}
	for {
		answer, err := g.deps.Prompter.Prompt(overwriteQuestion, overwriteMarker)
		if err != nil {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		if answer == answerSkip || answer == answerReplace {
			return answer, nil
		}
	}
}

// report lists each file's outcome followed by the summary line.
func (g *Generator) report(result *Result) {
	for _, f := range result.Files {
		fmt.Fprintln(g.deps.Out, output.FormatFileLine(f.Name, string(f.Action)))
	}
	if result.AllSkipped() {
		fmt.Fprintln(g.deps.Out, SkipMessage)
		return
	}
	fmt.Fprintln(g.deps.Out, output.FormatSuccess(SuccessMessage))
}

// activate runs the activation command when requested. Activate takes
// precedence over ActivateNetwork.
func (g *Generator) activate(ctx context.Context, result *Result, opts Options) error {
	if !opts.Activate && !opts.ActivateNetwork {
		return nil
	}
	if g.deps.Activator == nil {
		return fmt.Errorf("activation requested but no activator is configured")
	}

	network := !opts.Activate && opts.ActivateNetwork
	if err := g.deps.Activator.Activate(ctx, result.Request.Slug, network); err != nil {
		return fmt.Errorf("activating %s: %w", result.Request.Slug, err)
	}
	result.Activated = true
	return nil
}
