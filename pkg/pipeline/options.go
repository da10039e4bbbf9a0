package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/blipradar/blipradar/pkg/cache"
	"github.com/blipradar/blipradar/pkg/errors"
	"github.com/blipradar/blipradar/pkg/render"
)

const (
	// DefaultSeed is the default random seed for blip placement.
	DefaultSeed = uint64(42)

	// DefaultPNGScale is the default raster scale factor.
	DefaultPNGScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Padding float64 `json:"padding,omitempty"`
	Seed    uint64  `json:"seed,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	NoSidebars bool     `json:"no_sidebars,omitempty"` // Drop the sector and ring sidebars
	Static     bool     `json:"static,omitempty"`      // Drop the embedded interaction script
	PNGScale   float64  `json:"png_scale,omitempty"`

	// Refresh bypasses cache reads so artifacts are always re-rendered.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "dimensions cannot be negative")
	}
	if o.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "padding cannot be negative")
	}
	if o.Width == 0 {
		o.Width = render.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = render.DefaultHeight
	}
	if o.Padding == 0 {
		o.Padding = render.DefaultPadding
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Sidebars reports whether the sector and ring sidebars are rendered.
func (o *Options) Sidebars() bool {
	return !o.NoSidebars
}

// Interactive reports whether the interaction script is embedded.
func (o *Options) Interactive() bool {
	return !o.Static
}

// SVGOptions converts pipeline options into renderer options.
func (o *Options) SVGOptions() []render.SVGOption {
	opts := []render.SVGOption{
		render.WithDimensions(o.Width, o.Height),
		render.WithPadding(o.Padding),
	}
	if o.NoSidebars {
		opts = append(opts, render.WithoutSidebars())
	}
	if o.Static {
		opts = append(opts, render.WithoutInteraction())
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Width:       o.Width,
		Height:      o.Height,
		Padding:     o.Padding,
		Seed:        o.Seed,
		Sidebars:    o.Sidebars(),
		Interaction: o.Interactive(),
		Scale:       o.PNGScale,
	}
}
