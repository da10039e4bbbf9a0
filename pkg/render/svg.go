// Package render draws a laid-out radar as an SVG document: the sector
// wedges and rings, the blip markers, the collapsible sector sidebar on the
// left, the ring legend on the right, and the embedded CSS/JS that drives
// focus highlighting and sidebar synchronization.
//
// Rendering is a pure function of the radar model: every call fully redraws
// the document, there is no incremental diffing and no retained state. The
// interactive behavior lives entirely in the emitted document, so the Go
// side of an update pass stays single-shot and stateless.
package render

import (
	"bytes"
	"fmt"
	"html"
	"math"

	"github.com/blipradar/blipradar/pkg/geom"
	"github.com/blipradar/blipradar/pkg/layout"
	"github.com/blipradar/blipradar/pkg/radar"
)

// Default surface dimensions, shared with the pipeline defaults.
const (
	DefaultWidth   = 960.0
	DefaultHeight  = 600.0
	DefaultPadding = 10.0
)

// Sidebar band widths. The plot area is what remains between them.
const (
	leftSidebarWidth  = 220.0
	rightSidebarWidth = 150.0
)

// focusScale is the marker enlargement factor while a blip is focused.
const focusScale = 1.5

// SVGOption configures the SVG renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width       float64
	height      float64
	padding     float64
	sidebars    bool
	interaction bool
}

// WithDimensions sets the overall surface size in user units.
func WithDimensions(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// WithPadding sets the padding between the plot edge and the outer ring.
func WithPadding(p float64) SVGOption {
	return func(r *svgRenderer) { r.padding = p }
}

// WithoutSidebars renders only the radar plot.
func WithoutSidebars() SVGOption {
	return func(r *svgRenderer) { r.sidebars = false }
}

// WithoutInteraction omits the embedded script so the output is a static
// image, for hosts that sanitize scripts out of SVG.
func WithoutInteraction() SVGOption {
	return func(r *svgRenderer) { r.interaction = false }
}

// PlotFrame returns the layout frame matching the plot area the renderer
// will use for the same dimensions. Lay the radar out with this frame so
// coordinates agree with the rendered surface.
func PlotFrame(width, height, padding float64, sidebars bool) layout.Frame {
	if sidebars {
		width -= leftSidebarWidth + rightSidebarWidth
	}
	return layout.Frame{Width: width, Height: height, Padding: padding}
}

// RenderSVG draws the radar as a complete SVG document.
func RenderSVG(r *radar.Radar, opts ...SVGOption) []byte {
	sr := svgRenderer{
		width:       DefaultWidth,
		height:      DefaultHeight,
		padding:     DefaultPadding,
		sidebars:    true,
		interaction: true,
	}
	for _, opt := range opts {
		opt(&sr)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="sans-serif">`+"\n",
		sr.width, sr.height, sr.width, sr.height)

	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", radarCSS)

	center := sr.center()
	radius := sr.frame().Radius()

	sr.renderSectors(&buf, r, center, radius)
	sr.renderBlips(&buf, r, center)

	if sr.sidebars {
		sr.renderLeftSidebar(&buf, r)
		sr.renderRightSidebar(&buf)
	}

	if sr.interaction {
		renderLabelOverlay(&buf)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", radarJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// frame returns the layout frame for the configured dimensions.
func (sr *svgRenderer) frame() layout.Frame {
	return PlotFrame(sr.width, sr.height, sr.padding, sr.sidebars)
}

// center returns the radar center in surface coordinates.
func (sr *svgRenderer) center() geom.Point {
	left := 0.0
	if sr.sidebars {
		left = leftSidebarWidth
	}
	return geom.Point{
		X: left + sr.frame().Width/2,
		Y: sr.height / 2,
	}
}

// renderSectors draws one annular wedge per (sector, ring) pair, filled
// with the ring colour. A single-sector radar spans the full circle, which
// an arc path cannot express, so it degenerates to concentric circles drawn
// outermost-first.
func (sr *svgRenderer) renderSectors(buf *bytes.Buffer, r *radar.Radar, center geom.Point, radius float64) {
	buf.WriteString("  <g class=\"sectors\">\n")
	defer buf.WriteString("  </g>\n")

	if len(r.Sectors) == 0 {
		return
	}

	if len(r.Sectors) == 1 {
		for k := radar.RingCount; k >= 1; k-- {
			_, outer := layout.RingRadii(radius, k, radar.RingCount)
			fmt.Fprintf(buf, "    <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"%s\"/>\n",
				center.X, center.Y, outer, radar.Rings[k-1].Colour)
		}
		return
	}

	for _, s := range r.Sectors {
		for _, ring := range radar.Rings {
			inner, outer := layout.RingRadii(radius, ring.Order, radar.RingCount)
			path := wedgePath(center, inner, outer, s.StartAngle, s.EndAngle)
			fmt.Fprintf(buf, "    <path d=\"%s\" fill=\"%s\" stroke=\"#ffffff\" stroke-width=\"1\"/>\n",
				path, ring.Colour)
		}
	}
}

// wedgePath builds an SVG path for the annular wedge between the two radii
// and angles. Angles follow the radar convention (clockwise from vertical),
// which maps to SVG sweep direction 1 in y-down surface coordinates. A zero
// inner radius produces a pie slice.
func wedgePath(center geom.Point, inner, outer, start, end float64) string {
	outerStart := geom.ToAbsolute(geom.PolarToCartesian(outer, start), center)
	outerEnd := geom.ToAbsolute(geom.PolarToCartesian(outer, end), center)

	largeArc := 0
	if end-start > math.Pi {
		largeArc = 1
	}

	if inner == 0 {
		return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z",
			center.X, center.Y,
			outerStart.X, outerStart.Y,
			outer, outer, largeArc,
			outerEnd.X, outerEnd.Y)
	}

	innerStart := geom.ToAbsolute(geom.PolarToCartesian(inner, start), center)
	innerEnd := geom.ToAbsolute(geom.PolarToCartesian(inner, end), center)

	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z",
		innerStart.X, innerStart.Y,
		outerStart.X, outerStart.Y,
		outer, outer, largeArc,
		outerEnd.X, outerEnd.Y,
		innerEnd.X, innerEnd.Y,
		inner, inner, largeArc,
		innerStart.X, innerStart.Y)
}

// renderBlips draws one marker per blip at its absolute coordinates, filled
// with its sector's colour. New blips get a triangle marker, the rest a
// circle; geometry is identical either way.
func (sr *svgRenderer) renderBlips(buf *bytes.Buffer, r *radar.Radar, center geom.Point) {
	buf.WriteString("  <g class=\"blips\">\n")
	for _, s := range r.Sectors {
		for _, b := range s.Blips {
			p := geom.ToAbsolute(b.Coordinates, center)
			attrs := blipAttrs(s, b, p)
			if b.IsNew {
				fmt.Fprintf(buf, "    <polygon %s points=\"%s\" fill=\"%s\"/>\n",
					attrs, trianglePoints(p, layout.BlipRadius), s.Colour)
			} else {
				fmt.Fprintf(buf, "    <circle %s cx=\"%.2f\" cy=\"%.2f\" r=\"%.1f\" fill=\"%s\"/>\n",
					attrs, p.X, p.Y, layout.BlipRadius, s.Colour)
			}
		}
	}
	buf.WriteString("  </g>\n")
}

// blipAttrs emits the shared identity and data attributes the interaction
// script reads. The marker center travels as data-cx/data-cy because a
// polygon has no cx attribute to read back.
func blipAttrs(s *radar.Sector, b *radar.Blip, p geom.Point) string {
	return fmt.Sprintf(`id="blip-%s-%s" class="blip" tabindex="0" data-name="%s" data-description="%s" data-sector-colour="%s" data-ring-colour="%s" data-item="item-%s-%s" data-cx="%.2f" data-cy="%.2f"`,
		s.ID, b.ID,
		html.EscapeString(b.Name), html.EscapeString(b.Description),
		s.Colour, b.Ring.Colour,
		s.ID, b.ID,
		p.X, p.Y)
}

// trianglePoints returns an upward equilateral triangle centered on p with
// circumradius r, as an SVG points list.
func trianglePoints(p geom.Point, r float64) string {
	h := r * math.Sqrt(3) / 2
	return fmt.Sprintf("%.2f,%.2f %.2f,%.2f %.2f,%.2f",
		p.X, p.Y-r,
		p.X-h, p.Y+r/2,
		p.X+h, p.Y+r/2)
}

// renderLabelOverlay emits the hidden floating label the script positions
// next to the focused blip.
func renderLabelOverlay(buf *bytes.Buffer) {
	buf.WriteString("  <g id=\"blip-label\" visibility=\"hidden\" pointer-events=\"none\">\n")
	buf.WriteString("    <rect id=\"blip-label-rect\" x=\"-6\" y=\"-16\" width=\"60\" height=\"22\" rx=\"4\" fill=\"#888888\"/>\n")
	buf.WriteString("    <text id=\"blip-label-text\" x=\"0\" y=\"0\" font-size=\"13\" fill=\"#ffffff\"></text>\n")
	buf.WriteString("  </g>\n")
}
