package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/blipradar/blipradar/pkg/cache"
	"github.com/blipradar/blipradar/pkg/errors"
	"github.com/blipradar/blipradar/pkg/export"
	"github.com/blipradar/blipradar/pkg/host"
	"github.com/blipradar/blipradar/pkg/layout"
	"github.com/blipradar/blipradar/pkg/radar"
	"github.com/blipradar/blipradar/pkg/render"
	"github.com/blipradar/blipradar/pkg/transform"
)

// Runner encapsulates pipeline execution with artifact caching.
// Both CLI and serve mode use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Radar is the built and laid-out model.
	Radar *radar.Radar

	// InputHash is the content hash of the built model before placement.
	// It covers the dataset rows and the resolved sector colours.
	InputHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks cache usage.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SectorCount   int
	BlipCount     int
	SkippedRows   int
	TransformTime time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// Execute runs the complete build → place → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, ds host.Dataset, colours host.ColourStore, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Build the model from the tabular rows.
	buildStart := time.Now()
	rad, err := transform.Build(ds, colours, opts.Logger)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "building radar")
	}
	result.Radar = rad
	result.Stats.TransformTime = time.Since(buildStart)
	result.Stats.SectorCount = len(rad.Sectors)
	result.Stats.BlipCount = rad.BlipCount()
	result.Stats.SkippedRows = len(ds.Rows) - rad.BlipCount()

	// The hash is taken before placement so it depends only on the rows
	// and colours, not on coordinates.
	if doc, err := export.Marshal(rad); err == nil {
		result.InputHash = cache.Hash(doc)
	}

	opts.Logger.Info("built radar",
		"sectors", result.Stats.SectorCount,
		"blips", result.Stats.BlipCount,
		"skipped", result.Stats.SkippedRows,
		"duration", result.Stats.TransformTime)

	// Stage 2: Place blips inside their wedges.
	placeStart := time.Now()
	frame := render.PlotFrame(opts.Width, opts.Height, opts.Padding, opts.Sidebars())
	layout.New(opts.Seed).Run(rad, frame)
	result.Stats.LayoutTime = time.Since(placeStart)

	opts.Logger.Info("placed blips",
		"radius", frame.Radius(),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render each requested format, consulting the cache.
	renderStart := time.Now()
	artifacts, renderHit, err := r.renderWithCache(ctx, rad, result.InputHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderWithCache produces every requested format, serving from the cache
// where possible. It reports whether all artifacts were cache hits.
func (r *Runner) renderWithCache(ctx context.Context, rad *radar.Radar, inputHash string, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(inputHash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh && inputHash != "" {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
				continue
			}
		}
		allHit = false

		data, err := r.renderFormat(rad, format, opts)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data

		if inputHash != "" {
			_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
		}
	}

	return artifacts, allHit && len(opts.Formats) > 0, nil
}

// renderFormat produces a single artifact.
func (r *Runner) renderFormat(rad *radar.Radar, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.RenderSVG(rad, opts.SVGOptions()...), nil
	case FormatJSON:
		data, err := export.Marshal(rad)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "exporting radar")
		}
		return data, nil
	case FormatPNG:
		data, err := render.RenderPNG(rad, opts.PNGScale, opts.SVGOptions()...)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "rasterizing radar")
		}
		return data, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
