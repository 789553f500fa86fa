package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available assessment tools and their options",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, spec := range toolCatalog() {
			fmt.Fprintf(out, "%s\n", colorInfo(string(spec.ID)))
			fmt.Fprintf(out, "  %s\n", spec.Description)
			fmt.Fprintf(out, "  %s (required): %s\n", spec.TargetKey, spec.TargetDesc)
			for _, o := range spec.Options {
				line := fmt.Sprintf("  %s (%s): %s", o.Name, o.Type, o.Description)
				if len(o.Enum) > 0 {
					line += fmt.Sprintf(" [%s]", strings.Join(o.Enum, "|"))
				}
				if o.HasDefault {
					if o.Type == "boolean" {
						line += fmt.Sprintf(" (default %t)", o.BoolDef)
					} else {
						line += fmt.Sprintf(" (default %q)", o.StringDef)
					}
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out)
		}
	},
}
