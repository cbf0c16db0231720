package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/theme"
)

// generateOptions holds the flags of the root (generate) command.
type generateOptions struct {
	*extractOptions
	policy       theme.Policy
	templatePath string
	templateName string
	outputPath   string
}

func newGenerateOptions() *generateOptions {
	return &generateOptions{
		extractOptions: newExtractOptions(),
		policy:         theme.PolicyPalette,
		templateName:   theme.DefaultTemplate,
	}
}

func (o *generateOptions) registerFlags(cmd *cobra.Command) {
	o.extractOptions.registerFlags(cmd)
	flags := cmd.Flags()
	flags.Var(&o.policy, "policy", "how palette colours are assigned to theme roles: palette, reference")
	flags.StringVar(&o.templatePath, "template", "", "path to a template file (overrides --template-name)")
	flags.StringVar(&o.templateName, "template-name", o.templateName,
		fmt.Sprintf("named template, looked up in $%s or ~/.config/tincture/templates before the built-in set", theme.TemplateDirEnv))
	flags.StringVarP(&o.outputPath, "output", "o", "", "write the rendered template to this file (default: stdout)")
	cmd.MarkFlagsMutuallyExclusive("template", "template-name")
}

// runGenerate extracts the palette, prints it, and renders the template.
func runGenerate(cmd *cobra.Command, global *globalOptions, o *generateOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), global)
	out := cmd.OutOrStdout()

	result, err := o.extract(cmd.Context(), logger)
	if err != nil {
		return err
	}

	if !global.quiet {
		printReport(out, result, o.swatches(out))
	}

	loader := theme.NewLoader().WithLogger(logger)
	var (
		text []byte
		name string
	)
	if o.templatePath != "" {
		name = o.templatePath
		text, err = loader.LoadFile(o.templatePath)
	} else {
		name = o.templateName
		text, _, err = loader.Load(o.templateName)
	}
	if err != nil {
		return err
	}

	ctx, err := theme.BuildContext(result.Palette, result.Extremes, o.policy)
	if err != nil {
		return err
	}

	rendered, err := theme.Render(name, text, ctx)
	if err != nil {
		return err
	}

	if o.outputPath == "" {
		fmt.Fprintln(out, rendered)
		return nil
	}

	logger.Debug("writing rendered template", "path", o.outputPath)
	if err := os.WriteFile(o.outputPath, []byte(rendered), 0644); err != nil { // #nosec G306 - config files are world readable
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if !global.quiet {
		fmt.Fprintf(out, "Wrote theme to %s\n", o.outputPath)
	}

	return nil
}

// printReport writes the extremes, the palette swatches, and the hex list.
func printReport(w io.Writer, result *colour.Result, swatches bool) {
	fmt.Fprintf(w, "DARKEST COLOR %s\n", colour.FormatColourWithPreview(result.Extremes.Darkest.Colour, 0, swatches))
	fmt.Fprintf(w, "LIGHTEST COLOR %s\n", colour.FormatColourWithPreview(result.Extremes.Lightest.Colour, 0, swatches))
	fmt.Fprintln(w, colour.SwatchRow(result.Palette, 0, swatches))

	hexes := result.Palette.ToHex()
	quoted := make([]string, len(hexes))
	for i, h := range hexes {
		quoted[i] = fmt.Sprintf("%q", h)
	}
	fmt.Fprintf(w, "COLORS: [%s]\n", strings.Join(quoted, ", "))
}
