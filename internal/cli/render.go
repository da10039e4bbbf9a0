package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blipradar/blipradar/pkg/host"
	"github.com/blipradar/blipradar/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path (or base path for multiple formats)
	formats    []string // output formats: "svg", "png", "json"
	width      float64  // viewport width in pixels
	height     float64  // viewport height in pixels
	padding    float64  // padding around the plot in pixels
	seed       uint64   // random seed for reproducible blip placement
	scale      float64  // raster scale factor for PNG
	noSidebars bool     // drop the sector and ring sidebars
	static     bool     // drop the embedded interaction script
	noCache    bool     // disable the artifact cache
	refresh    bool     // re-render even when cached
}

// renderCommand creates the render command for generating radar charts.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render a dataset to a radar chart",
		Long: `Render reads a TOML or CSV dataset and produces a radar chart.

The dataset needs name, sector, and ring columns; description and isNew
columns are optional. Rows with unknown rings are skipped with a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height in pixels")
	cmd.Flags().Float64Var(&opts.padding, "padding", 0, "padding around the plot")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for blip placement")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "raster scale factor for PNG output")
	cmd.Flags().BoolVar(&opts.noSidebars, "no-sidebars", false, "omit the sector and ring sidebars")
	cmd.Flags().BoolVar(&opts.static, "static", false, "omit the embedded interaction script")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when artifacts are cached")

	return cmd
}

// runRender loads the dataset and colour store, runs the pipeline, and
// writes every requested artifact.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	ds, err := loadDataset(input)
	if err != nil {
		return err
	}

	colours, err := openColourStore()
	if err != nil {
		c.Logger.Warn("colour store unavailable, using generated colours", "err", err)
		colours = host.MemoryStore{}
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, ds, colours, pipeline.Options{
		Width:      opts.width,
		Height:     opts.height,
		Padding:    opts.padding,
		Seed:       opts.seed,
		Formats:    opts.formats,
		NoSidebars: opts.noSidebars,
		Static:     opts.static,
		PNGScale:   opts.scale,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d blips", result.Stats.BlipCount))

	paths, err := writeArtifacts(result.Artifacts, opts.formats, opts.output, input)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", input)
	printStats(result.Stats.SectorCount, result.Stats.BlipCount, result.Stats.SkippedRows, result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifacts writes each rendered format to disk and returns the
// written paths in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	base := basePath(output, input)

	var paths []string
	for _, format := range formats {
		path := base + "." + format
		if output != "" && len(formats) == 1 {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output carries
// a known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// openColourStore opens the persistent colour store at its XDG path.
func openColourStore() (host.ColourStore, error) {
	path, err := coloursPath()
	if err != nil {
		return nil, err
	}
	return host.OpenFileStore(path)
}
