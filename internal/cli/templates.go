package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/theme"
)

// newTemplatesCmd lists the built-in templates and the roles they can use.
func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List built-in templates and theme roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := theme.NewLoader()
			names, err := loader.ListEmbeddedTemplates()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Templates:")
			for _, name := range names {
				fmt.Fprintf(w, "  %s (override: %s)\n", name, loader.CustomPath(name))
			}
			fmt.Fprintln(w, "\nRoles:")
			for _, role := range theme.AllRoles() {
				fmt.Fprintf(w, "  {{ .%s }}\n", role)
			}
			return nil
		},
	}
}
