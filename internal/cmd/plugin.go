package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opmodel/cptgen/internal/app"
	oerrors "github.com/opmodel/cptgen/internal/errors"
	"github.com/opmodel/cptgen/internal/output"
	"github.com/opmodel/cptgen/internal/scaffold"
)

var pluginOpts scaffold.Options

// NewPluginCmd creates the plugin command.
func NewPluginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugin <slug>",
		Short: "Generate a Custom Post Type plugin",
		Long: `Generate a plugin that registers a Custom Post Type.

Creates the following files in <plugins-dir>/<slug>/ (or <dir>/<slug>/):
  <slug>.php     Plugin header and register_post_type() call
  readme.txt     wordpress.org readme
  .gitignore     Git ignore rules
  .distignore    Files excluded from distribution archives

The slug is the post type key and may be at most 20 characters long.
Existing files are left alone unless you answer "r" at the prompt or
pass --force.

Examples:
  # Generate into the plugins directory of the install in the current directory
  cptgen plugin book

  # Custom labels and icon, then activate
  cptgen plugin book --label novel --dashicon book --activate

  # Generate into an existing directory, replacing files without asking
  cptgen plugin book --dir ./build --force

  # Show what would be written
  cptgen plugin book --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: runPlugin,
	}

	f := cmd.Flags()
	f.StringVar(&pluginOpts.Label, "label", "", "Singular label of the post type (default: derived from slug)")
	f.StringVar(&pluginOpts.Dashicon, "dashicon", "", "Dashicon for the admin menu (default: admin-post)")
	f.StringVar(&pluginOpts.Dir, "dir", "", "Existing directory to create the plugin in (default: plugins directory)")
	f.StringVar(&pluginOpts.PluginName, "plugin_name", "", "Plugin header name")
	f.StringVar(&pluginOpts.PluginDescription, "plugin_description", "", "Plugin header description")
	f.StringVar(&pluginOpts.PluginAuthor, "plugin_author", "", "Plugin author (env: CPTGEN_AUTHOR)")
	f.StringVar(&pluginOpts.PluginAuthorURI, "plugin_author_uri", "", "Plugin author URI (env: CPTGEN_AUTHOR_URI)")
	f.StringVar(&pluginOpts.PluginURI, "plugin_uri", "", "Plugin URI")
	f.BoolVar(&pluginOpts.Activate, "activate", false, "Activate the plugin after creating it")
	f.BoolVar(&pluginOpts.ActivateNetwork, "activate-network", false, "Network activate the plugin after creating it")
	f.BoolVar(&pluginOpts.Force, "force", false, "Overwrite existing files without prompting")
	f.BoolVar(&pluginOpts.DryRun, "dry-run", false, "Show the files that would be written")

	return cmd
}

func runPlugin(cmd *cobra.Command, args []string) error {
	resolved, err := GetResolvedConfig()
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	in := cmd.InOrStdin()
	interactive := in == os.Stdin && output.IsInputTTY()

	a := app.Initialize(app.Options{
		Resolved:    resolved,
		In:          in,
		Out:         cmd.OutOrStdout(),
		Interactive: &interactive,
	})

	result, err := a.Generator.Generate(cmd.Context(), args[0], pluginOpts)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	if result.DryRun {
		printPlan(cmd, result)
		return nil
	}
	printWritten(cmd, result)
	return nil
}

// printWritten shows the files that landed on disk. Nothing is printed when
// every file was skipped.
func printWritten(cmd *cobra.Command, result *scaffold.Result) {
	var names []string
	for _, f := range result.Files {
		if f.Action != scaffold.ActionSkip {
			names = append(names, f.Name)
		}
	}
	if len(names) == 0 {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), output.RenderSimpleTree(result.Request.Slug, names))
}

// printPlan shows the dry-run outcome as a tree of file actions.
func printPlan(cmd *cobra.Command, result *scaffold.Result) {
	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		files[f.Name] = string(f.Action)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Dry run: no files written to %s\n\n", result.Request.TargetDirectory)
	fmt.Fprint(out, output.RenderFileTree(result.Request.Slug, files))
}
