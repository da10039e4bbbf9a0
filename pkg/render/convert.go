package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/blipradar/blipradar/pkg/radar"
)

// RenderPNG renders the radar as a PNG by converting the SVG output with
// rsvg-convert. The interaction script is dropped since a raster image
// cannot execute it. Scale 2.0 produces a 2x resolution image.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(r *radar.Radar, scale float64, opts ...SVGOption) ([]byte, error) {
	svg := RenderSVG(r, append(opts, WithoutInteraction())...)
	return toPNG(svg, scale)
}

func toPNG(svg []byte, scale float64) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("png export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin")
	}

	cmd := exec.Command("rsvg-convert", "-f", "png", "-z", fmt.Sprintf("%.2f", scale))
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
