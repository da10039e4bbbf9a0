package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/blipradar/blipradar/pkg/radar"
)

// Left sidebar metrics. Buttons stack at the top; the open sector's blip
// list shares one region below them so toggling never reflows the buttons.
const (
	sidebarMargin   = 16.0
	buttonHeight    = 26.0
	buttonGap       = 6.0
	itemHeight      = 18.0
	descPanelHeight = 120.0
)

// renderLeftSidebar draws one collapsible group per sector: a colour-coded
// button and a list of the sector's blips. Only one list is visible at a
// time; the script opens the clicked one and collapses the rest. The first
// sector starts open. The description panel at the bottom is filled by the
// interaction script while a blip is focused.
func (sr *svgRenderer) renderLeftSidebar(buf *bytes.Buffer, r *radar.Radar) {
	buf.WriteString("  <g class=\"sidebar-left\">\n")

	listTop := sidebarMargin + float64(len(r.Sectors))*(buttonHeight+buttonGap) + 12

	for i, s := range r.Sectors {
		y := sidebarMargin + float64(i)*(buttonHeight+buttonGap)

		fmt.Fprintf(buf, "    <g class=\"sector-button\" id=\"button-%s\" data-list=\"list-%s\" tabindex=\"0\">\n", s.ID, s.ID)
		fmt.Fprintf(buf, "      <rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" rx=\"4\" fill=\"%s\"/>\n",
			sidebarMargin, y, leftSidebarWidth-2*sidebarMargin, buttonHeight, s.Colour)
		fmt.Fprintf(buf, "      <text x=\"%.1f\" y=\"%.1f\" font-size=\"13\" fill=\"#ffffff\">%s</text>\n",
			sidebarMargin+8, y+buttonHeight-8, html.EscapeString(s.Name))
		buf.WriteString("    </g>\n")

		open := ""
		if i == 0 {
			open = " open"
		}
		fmt.Fprintf(buf, "    <g class=\"sector-list%s\" id=\"list-%s\">\n", open, s.ID)
		for j, b := range s.Blips {
			itemY := listTop + float64(j)*itemHeight
			fmt.Fprintf(buf, "      <g class=\"sector-item\" id=\"item-%s-%s\">\n", s.ID, b.ID)
			fmt.Fprintf(buf, "        <rect class=\"item-bg\" x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"none\"/>\n",
				sidebarMargin, itemY, leftSidebarWidth-2*sidebarMargin, itemHeight)
			fmt.Fprintf(buf, "        <text x=\"%.1f\" y=\"%.1f\" font-size=\"12\" fill=\"#333333\">%s</text>\n",
				sidebarMargin+8, itemY+itemHeight-5, html.EscapeString(b.Name))
			buf.WriteString("      </g>\n")
		}
		buf.WriteString("    </g>\n")
	}

	sr.renderDescriptionPanel(buf)
	buf.WriteString("  </g>\n")
}

// renderDescriptionPanel emits the panel that shows the focused blip's
// description. A foreignObject is used so long descriptions wrap.
func (sr *svgRenderer) renderDescriptionPanel(buf *bytes.Buffer) {
	top := sr.height - descPanelHeight - sidebarMargin
	fmt.Fprintf(buf, "    <rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" rx=\"4\" fill=\"#f7f7f7\" stroke=\"#dddddd\"/>\n",
		sidebarMargin, top, leftSidebarWidth-2*sidebarMargin, descPanelHeight)
	fmt.Fprintf(buf, "    <foreignObject x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\">\n",
		sidebarMargin+6, top+6, leftSidebarWidth-2*sidebarMargin-12, descPanelHeight-12)
	buf.WriteString("      <div xmlns=\"http://www.w3.org/1999/xhtml\" id=\"blip-description\" style=\"font-size:12px;color:#333333;\"></div>\n")
	buf.WriteString("    </foreignObject>\n")
}

// renderRightSidebar draws the ring legend: all four rings in ring order,
// each with its colour swatch. The legend is rendered even for an empty
// radar, since the ring set is fixed rather than data-derived.
func (sr *svgRenderer) renderRightSidebar(buf *bytes.Buffer) {
	left := sr.width - rightSidebarWidth + sidebarMargin

	buf.WriteString("  <g class=\"sidebar-right\">\n")
	fmt.Fprintf(buf, "    <text x=\"%.1f\" y=\"%.1f\" font-size=\"13\" font-weight=\"bold\" fill=\"#333333\">Rings</text>\n",
		left, sidebarMargin+12)

	for i, ring := range radar.Rings {
		y := sidebarMargin + 28 + float64(i)*24
		fmt.Fprintf(buf, "    <g class=\"legend-ring\">\n")
		fmt.Fprintf(buf, "      <rect x=\"%.1f\" y=\"%.1f\" width=\"14\" height=\"14\" rx=\"2\" fill=\"%s\" stroke=\"#bbbbbb\"/>\n",
			left, y, ring.Colour)
		fmt.Fprintf(buf, "      <text x=\"%.1f\" y=\"%.1f\" font-size=\"12\" fill=\"#333333\">%s</text>\n",
			left+20, y+11, ring.Name)
		buf.WriteString("    </g>\n")
	}
	buf.WriteString("  </g>\n")
}
