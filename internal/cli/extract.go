package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
)

// newExtractCmd represents the extract command, which prints the palette
// without rendering a template.
func newExtractCmd(global *globalOptions) *cobra.Command {
	o := newExtractOptions()
	var format, output string

	cmd := &cobra.Command{
		Use:   "extract --image <path>",
		Short: "Extract a colour palette from an image",
		Long: `Extract a colour palette from an image and print it.

Formats:
  hex    one "#rrggbb" per line, most populous first
  table  index, swatch, hex, rgb and share of every colour plus the extremes
  text   plain listing of hex, rgb and share
  json   machine readable palette with shares

Examples:
  tincture extract -i wallpaper.png
  tincture extract -i wallpaper.png -c 8 -f json -o palette.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), global)

			w := cmd.OutOrStdout()
			if output != "" {
				// Swatches never go to files.
				o.preview = previewNever
			}

			result, err := o.extract(cmd.Context(), logger)
			if err != nil {
				return err
			}

			text, err := formatPalette(result, format, o.swatches(w))
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprint(w, text)
				return nil
			}
			if err := os.WriteFile(output, []byte(text), 0644); err != nil { // #nosec G306 - palette output is not sensitive
				return fmt.Errorf("failed to write output file: %w", err)
			}
			logger.Debug("wrote palette", "path", output)
			return nil
		},
	}

	o.registerFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "output format (hex, table, text, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// formatPalette formats the extraction result according to format.
func formatPalette(result *colour.Result, format string, swatches bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(result.Palette), nil
	case "table":
		return formatTable(result, swatches), nil
	case "text":
		return result.Palette.String(), nil
	case "json":
		data, err := result.Palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, table, text, json)", format)
	}
}

func formatHex(p *colour.Palette) string {
	var sb strings.Builder
	for _, hex := range p.ToHex() {
		sb.WriteString(hex + "\n")
	}
	return sb.String()
}

func formatTable(result *colour.Result, swatches bool) string {
	table := NewTable([]string{"#", "HEX", "RGB", "SHARE"})
	for i, e := range result.Palette.All() {
		table.AddRow(colour.Swatch(e.Colour, 0, swatches), []string{
			fmt.Sprintf("%d", i+1),
			e.Hex(),
			colour.ToRGB(e.Colour).String(),
			fmt.Sprintf("%.1f%%", e.Share*100),
		})
	}

	var sb strings.Builder
	sb.WriteString(table.Render())
	fmt.Fprintf(&sb, "\ndarkest:  %s\n", colour.FormatColourWithPreview(result.Extremes.Darkest.Colour, 0, swatches))
	fmt.Fprintf(&sb, "lightest: %s\n", colour.FormatColourWithPreview(result.Extremes.Lightest.Colour, 0, swatches))
	return sb.String()
}
