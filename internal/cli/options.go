package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/image"
	"github.com/jmylchreest/tincture/internal/seed"
)

// Preview modes for terminal swatches.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// extractOptions holds the flags shared by every command that clusters an image.
type extractOptions struct {
	imagePath     string
	colours       int
	algorithm     string
	maxIterations int
	convergence   float64
	seedMode      seed.Mode
	seedValue     int64
	thumbnail     int
	preview       string
}

func newExtractOptions() *extractOptions {
	defaults := colour.DefaultExtractorConfig()
	return &extractOptions{
		colours:       defaults.ColourCount,
		algorithm:     string(defaults.Algorithm),
		maxIterations: defaults.MaxIterations,
		convergence:   defaults.Convergence,
		seedMode:      seed.DefaultConfig().Mode,
		seedValue:     seed.DefaultConfig().Value,
		thumbnail:     image.DefaultThumbnailSize,
		preview:       previewAuto,
	}
}

func (o *extractOptions) registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.imagePath, "image", "i", "", "path to the input image (required)")
	flags.IntVarP(&o.colours, "colours", "c", o.colours, fmt.Sprintf("number of colours to extract (1-%d)", colour.MaxClusterCount))
	flags.StringVarP(&o.algorithm, "algorithm", "a", o.algorithm, fmt.Sprintf("k-means assignment algorithm %v", colour.ValidAlgorithms()))
	flags.IntVar(&o.maxIterations, "max-iterations", o.maxIterations, "maximum k-means iterations")
	flags.Float64Var(&o.convergence, "convergence", o.convergence, "stop once total centroid movement falls below this")
	flags.Var(&o.seedMode, "seed-mode", "k-means seed mode: manual, content, filepath, random")
	flags.Int64Var(&o.seedValue, "seed", o.seedValue, "k-means seed value (used with --seed-mode=manual)")
	flags.IntVar(&o.thumbnail, "thumbnail", o.thumbnail, "downscale the image to fit this many pixels per side before sampling")
	flags.StringVar(&o.preview, "preview", o.preview, "show colour swatches: auto, always, never")
	_ = cmd.MarkFlagRequired("image")
}

// validate checks flag values that the extractor configuration does not cover.
func (o *extractOptions) validate() error {
	switch o.preview {
	case previewAuto, previewAlways, previewNever:
	default:
		return fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", o.preview)
	}
	if o.thumbnail < 1 {
		return fmt.Errorf("thumbnail size must be at least 1, got %d", o.thumbnail)
	}
	return nil
}

// swatches reports whether colour swatches should be written to out.
func (o *extractOptions) swatches(out io.Writer) bool {
	switch o.preview {
	case previewAlways:
		return true
	case previewNever:
		return false
	default:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
	}
}

// extract loads the image and runs the colour pipeline over it.
func (o *extractOptions) extract(ctx context.Context, logger hclog.Logger) (*colour.Result, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := image.ValidateImagePath(o.imagePath); err != nil {
		return nil, fmt.Errorf("invalid image path: %w", err)
	}
	if !image.IsImageFile(o.imagePath) {
		logger.Warn("unexpected image extension, decoding by content",
			"path", o.imagePath, "supported", image.SupportedImageExtensions())
	}

	logger.Debug("loading image", "path", o.imagePath)
	img, err := image.NewFileLoader().Load(o.imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	buf := image.Thumbnail(img, o.thumbnail, o.thumbnail)
	logger.Debug("image loaded",
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy(),
		"sample_width", buf.Rect.Dx(), "sample_height", buf.Rect.Dy())

	seedValue, err := seed.Calculate(buf, o.imagePath, seed.Config{Mode: o.seedMode, Value: o.seedValue})
	if err != nil {
		return nil, fmt.Errorf("failed to calculate seed: %w", err)
	}
	logger.Debug("using seed", "mode", o.seedMode, "seed", seedValue)

	extractor, err := colour.NewExtractor(colour.ExtractorConfig{
		Algorithm:     colour.Algorithm(o.algorithm),
		ColourCount:   o.colours,
		MaxIterations: o.maxIterations,
		Convergence:   o.convergence,
		Seed:          seedValue,
	}, logger)
	if err != nil {
		return nil, err
	}

	result, err := extractor.Extract(ctx, buf)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("extracted palette", "colours", result.Palette.Len(), "iterations", result.Clustering.Iterations)

	return result, nil
}
