package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/cptgen/internal/output"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show resolved configuration",
		Long: `Show every configuration value cptgen will use and where it came from.

Values are resolved with precedence:
  flag > CPTGEN_* env > config file > default

Examples:
  cptgen config show
  cptgen config show --path /srv/www/wordpress`,
		RunE: runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	resolved, err := GetResolvedConfig()
	if err != nil {
		return err
	}

	tbl := output.NewTable("KEY", "VALUE", "SOURCE", "SHADOWED")
	for _, v := range resolved.Values() {
		tbl.Row(v.Key, v.Value, string(v.Source), shadowedSummary(v.Shadowed))
	}

	fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
	return nil
}

// shadowedSummary lists lower-precedence values as "source=value".
func shadowedSummary[S ~string](shadowed map[S]string) string {
	parts := make([]string, 0, len(shadowed))
	for source, value := range shadowed {
		parts = append(parts, string(source)+"="+value)
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
