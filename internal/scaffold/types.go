// Package scaffold generates the Custom Post Type plugin skeleton: it
// derives template data from a slug, resolves and guards the target
// directory, and writes the rendered files with per-file overwrite
// negotiation.
package scaffold

import "context"

// MaxSlugLength is the longest post type key WordPress accepts.
const MaxSlugLength = 20

// Placeholder defaults for plugin header fields.
const (
	DefaultDashicon          = "admin-post"
	DefaultPluginDescription = "PLUGIN DESCRIPTION HERE"
	DefaultPluginAuthor      = "YOUR NAME HERE"
	DefaultPluginAuthorURI   = "YOUR SITE HERE"
	DefaultPluginURI         = "PLUGIN SITE HERE"

	pluginNameSuffix = " CPT WP CLI"
)

// Outcome messages.
const (
	SkipMessage    = "All plugin files were skipped."
	SuccessMessage = "Created plugin files."
)

// Kind selects which content root a target directory must live under.
type Kind string

const (
	// KindPlugin targets the plugins root.
	KindPlugin Kind = "plugin"
	// KindTheme targets the themes root.
	KindTheme Kind = "theme"
)

// Options are the caller-supplied overrides. Empty strings mean "use the
// default".
type Options struct {
	// Label is the singular label used in the post type UI strings.
	Label string

	// Dashicon is the admin menu icon, with or without the dashicons- prefix.
	Dashicon string

	// Dir puts the plugin in <Dir>/<slug> instead of the plugins root.
	// The directory must already exist.
	Dir string

	PluginName        string
	PluginDescription string
	PluginAuthor      string
	PluginAuthorURI   string
	PluginURI         string

	// Activate activates the generated plugin.
	Activate bool

	// ActivateNetwork network-activates the generated plugin.
	// Ignored when Activate is set.
	ActivateNetwork bool

	// Force replaces existing files without prompting.
	Force bool

	// DryRun renders and reports without writing, prompting or activating.
	DryRun bool
}

// Request is the fully derived data for one generation. It is also the
// data passed to every template.
type Request struct {
	Slug               string
	Label              string
	LabelUcfirst       string
	LabelPlural        string
	LabelPluralUcfirst string
	MachineName        string
	TextDomain         string
	PluginName         string
	PluginPackage      string
	PluginDescription  string
	PluginAuthor       string
	PluginAuthorURI    string
	PluginURI          string
	PluginTestedUpTo   string
	Dashicon           string
	Version            string

	// TargetDirectory is the canonical plugin directory.
	TargetDirectory string
}

// Action is what happened (or would happen) to a single file.
type Action string

const (
	ActionCreate  Action = "create"
	ActionReplace Action = "replace"
	ActionSkip    Action = "skip"
)

// FileOutcome records the decision made for one generated file.
type FileOutcome struct {
	// Name is the file name relative to the target directory.
	Name string
	// Path is the full path.
	Path string
	// Action is the decision taken.
	Action Action
}

// Result describes a finished generation.
type Result struct {
	Request *Request
	Files   []FileOutcome

	// Written lists the paths actually written, in order.
	Written []string

	// Activated is set when the activation command ran successfully.
	Activated bool

	// DryRun is set when nothing was written.
	DryRun bool
}

// AllSkipped reports whether no file was written.
func (r *Result) AllSkipped() bool {
	return len(r.Written) == 0
}

// Sink is the filesystem the generator writes through.
type Sink interface {
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
	// WriteFile creates or truncates path with content.
	WriteFile(path, content string) error
	// Exists reports whether path exists.
	Exists(path string) (bool, error)
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)
}

// Renderer renders a named template against data.
type Renderer interface {
	Render(name string, data any) (string, error)
}

// Pluralizer returns the plural form of a word or phrase.
type Pluralizer interface {
	Plural(word string) string
}

// Prompter asks the user a question and returns the raw answer.
type Prompter interface {
	Prompt(question, marker string) (string, error)
}

// Activator activates a plugin by slug, optionally network-wide.
type Activator interface {
	Activate(ctx context.Context, slug string, network bool) error
}
