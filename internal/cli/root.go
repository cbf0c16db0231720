// Package cli provides the command-line interface for tincture.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/version"
)

// globalOptions holds flags shared by every command.
type globalOptions struct {
	verbose bool
	quiet   bool
}

// NewRootCmd builds the tincture command tree. The root command itself
// generates a themed configuration from an image.
func NewRootCmd() *cobra.Command {
	global := &globalOptions{}
	gen := newGenerateOptions()

	rootCmd := &cobra.Command{
		Use:   "tincture --image <path>",
		Short: "Derive a colour theme from an image",
		Long: `tincture extracts a small colour palette from an image using k-means
clustering in linear RGB, picks its darkest and lightest colours, and renders
a themed configuration file (GTK CSS by default) from them.

Examples:
  # Print the palette and the rendered GTK theme
  tincture --image wallpaper.png

  # Write the theme to a file, 8 colours, content-derived seed
  tincture -i wallpaper.jpg -c 8 --seed-mode content -o gtk.css

  # Use your own template
  tincture -i wallpaper.jpg --template ~/templates/kitty.conf.tmpl`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, global, gen)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&global.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	gen.registerFlags(rootCmd)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(global))
	rootCmd.AddCommand(newTemplatesCmd())

	return rootCmd
}

// newLogger returns an hclog logger writing to w at a level chosen by the
// global verbosity flags.
func newLogger(w io.Writer, global *globalOptions) hclog.Logger {
	level := hclog.Warn
	switch {
	case global.quiet:
		level = hclog.Off
	case global.verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "tincture",
		Output: w,
		Level:  level,
	})
}

// newVersionCmd represents the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
