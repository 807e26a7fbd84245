package sink

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/plasmidmap/plasmidmap/pkg/geometry"
	"github.com/plasmidmap/plasmidmap/pkg/render/circular/layout"
)

const defaultFontFamily = "Helvetica, Arial, sans-serif"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fontFamily string
	background string
}

// WithFontFamily overrides the font-family attribute on all text.
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// WithBackground overrides the background fill, white by default.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG serializes a computed layout as a standalone SVG document.
// Paint order is background, ring, ticks, feature shapes, leader lines,
// label text, then the center title, so labels always sit on top of the
// shapes they annotate.
func RenderSVG(l *layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{fontFamily: defaultFontFamily, background: "white"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.FrameWidth, l.FrameHeight, l.FrameWidth, l.FrameHeight)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		l.FrameWidth, l.FrameHeight, r.background)

	renderRing(&buf, l.Ring, l.Center)
	for _, t := range l.Ticks {
		renderLine(&buf, t.Line)
		r.renderText(&buf, t.Label)
	}
	for _, b := range l.Bands {
		renderBand(&buf, l.Center, b)
	}
	for _, p := range l.Arrowheads {
		renderPolygon(&buf, p)
	}
	for _, ln := range l.Leaders {
		renderLine(&buf, ln)
	}
	for _, t := range l.Labels {
		r.renderText(&buf, t)
	}
	for _, c := range l.Curved {
		r.renderCurved(&buf, c)
	}
	r.renderText(&buf, l.Title)
	r.renderText(&buf, l.Subtitle)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderRing(buf *bytes.Buffer, ring layout.Ring, center geometry.Point) {
	// The ring radius is its outer edge; the stroke is centered.
	fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%.2f" opacity="%.2f"/>`+"\n",
		center.X, center.Y, ring.Radius-ring.Width/2, ring.Color, ring.Width, ring.Opacity)
}

func renderBand(buf *bytes.Buffer, center geometry.Point, b layout.ArcBand) {
	o0 := geometry.PointAt(center, b.StartAngle, b.Outer)
	o1 := geometry.PointAt(center, b.EndAngle, b.Outer)
	i0 := geometry.PointAt(center, b.StartAngle, b.Inner)
	i1 := geometry.PointAt(center, b.EndAngle, b.Inner)

	large := 0
	if b.EndAngle-b.StartAngle > math.Pi {
		large = 1
	}

	// Outer arc clockwise, inner arc back counter-clockwise.
	fmt.Fprintf(buf, `  <path d="M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z" fill="%s"/>`+"\n",
		o0.X, o0.Y, b.Outer, b.Outer, large, o1.X, o1.Y,
		i1.X, i1.Y, b.Inner, b.Inner, large, i0.X, i0.Y, b.Color)
}

func renderPolygon(buf *bytes.Buffer, p layout.Polygon) {
	var points strings.Builder
	for i, pt := range p.Points {
		if i > 0 {
			points.WriteByte(' ')
		}
		fmt.Fprintf(&points, "%.2f,%.2f", pt.X, pt.Y)
	}
	fmt.Fprintf(buf, `  <polygon points="%s" fill="%s"/>`+"\n", points.String(), p.Color)
}

func renderLine(buf *bytes.Buffer, ln layout.Line) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" opacity="%.2f"/>`+"\n",
		ln.From.X, ln.From.Y, ln.To.X, ln.To.Y, ln.Color, ln.Width, ln.Opacity)
}

func (r *svgRenderer) renderText(buf *bytes.Buffer, t layout.TextRun) {
	if t.Text == "" {
		return
	}
	var extra strings.Builder
	if t.Bold {
		extra.WriteString(` font-weight="bold"`)
	}
	if t.Italic {
		extra.WriteString(` font-style="italic"`)
	}
	if t.Opacity > 0 && t.Opacity < 1 {
		fmt.Fprintf(&extra, ` opacity="%.2f"`, t.Opacity)
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="%s" dominant-baseline="central"%s>%s</text>`+"\n",
		t.At.X, t.At.Y, r.fontFamily, t.FontSize, t.Color, t.Anchor, extra.String(), xmlEscaper.Replace(t.Text))
}

func (r *svgRenderer) renderCurved(buf *bytes.Buffer, c layout.CurvedRun) {
	for _, g := range c.Glyphs {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central" transform="rotate(%.2f %.2f %.2f)">%s</text>`+"\n",
			g.At.X, g.At.Y, r.fontFamily, c.FontSize, c.Color,
			geometry.Degrees(g.Rotation), g.At.X, g.At.Y, xmlEscaper.Replace(g.Char))
	}
}
