package sink

import (
	"bytes"
	"image/color"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/plasmidmap/plasmidmap/pkg/errors"
	"github.com/plasmidmap/plasmidmap/pkg/render/circular/layout"
)

// DefaultPNGScale maps one layout unit to half a pixel, rendering the
// default 3200-unit frame as a 1600px image.
const DefaultPNGScale = 0.5

type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the pixels-per-layout-unit scale of the raster output.
func WithScale(scale float64) PNGOption {
	return func(r *pngRenderer) { r.scale = scale }
}

// Embedded Go fonts back all raster text; loaded once, shared across
// renders.
var fonts struct {
	once    sync.Once
	regular *ggtext.FontSource
	bold    *ggtext.FontSource
	italic  *ggtext.FontSource
	err     error
}

func loadFonts() error {
	fonts.once.Do(func() {
		load := func(data []byte) *ggtext.FontSource {
			if fonts.err != nil {
				return nil
			}
			src, err := ggtext.NewFontSource(data)
			if err != nil {
				fonts.err = errors.Wrap(errors.ErrCodeInternal, err, "loading embedded font")
				return nil
			}
			return src
		}
		fonts.regular = load(goregular.TTF)
		fonts.bold = load(gobold.TTF)
		fonts.italic = load(goitalic.TTF)
	})
	return fonts.err
}

// RenderPNG rasterizes a computed layout to a PNG image. The paint order
// matches the SVG sink so both formats draw the identical map.
func RenderPNG(l *layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultPNGScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"png scale must be positive, got %g", r.scale)
	}
	if err := loadFonts(); err != nil {
		return nil, err
	}

	s := r.scale
	dc := gg.NewContext(int(math.Ceil(l.FrameWidth*s)), int(math.Ceil(l.FrameHeight*s)))
	dc.ClearWithColor(gg.White)

	if err := r.drawRing(dc, l); err != nil {
		return nil, err
	}
	for _, t := range l.Ticks {
		if err := r.drawLine(dc, t.Line); err != nil {
			return nil, err
		}
		r.drawText(dc, t.Label)
	}
	for _, b := range l.Bands {
		if err := r.drawBand(dc, l, b); err != nil {
			return nil, err
		}
	}
	for _, p := range l.Arrowheads {
		if err := r.drawPolygon(dc, p); err != nil {
			return nil, err
		}
	}
	for _, ln := range l.Leaders {
		if err := r.drawLine(dc, ln); err != nil {
			return nil, err
		}
	}
	for _, t := range l.Labels {
		r.drawText(dc, t)
	}
	for _, c := range l.Curved {
		r.drawCurved(dc, c)
	}
	r.drawText(dc, l.Title)
	r.drawText(dc, l.Subtitle)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding png")
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) drawRing(dc *gg.Context, l *layout.Layout) error {
	s := r.scale
	dc.ClearPath()
	dc.SetColor(parseColor(l.Ring.Color, l.Ring.Opacity))
	dc.SetLineWidth(l.Ring.Width * s)
	dc.SetLineCap(gg.LineCapButt)
	dc.DrawCircle(l.Center.X*s, l.Center.Y*s, (l.Ring.Radius-l.Ring.Width/2)*s)
	return dc.Stroke()
}

// drawBand strokes the band as a thick arc at its mid radius; the stroke
// width spans the inner-to-outer gap exactly.
func (r *pngRenderer) drawBand(dc *gg.Context, l *layout.Layout, b layout.ArcBand) error {
	s := r.scale
	dc.ClearPath()
	dc.SetColor(parseColor(b.Color, 1))
	dc.SetLineWidth((b.Outer - b.Inner) * s)
	dc.SetLineCap(gg.LineCapButt)
	// Layout angles are clockwise from twelve o'clock; gg measures from
	// the positive x axis.
	dc.DrawArc(l.Center.X*s, l.Center.Y*s, (b.Inner+b.Outer)/2*s,
		b.StartAngle-math.Pi/2, b.EndAngle-math.Pi/2)
	return dc.Stroke()
}

func (r *pngRenderer) drawPolygon(dc *gg.Context, p layout.Polygon) error {
	if len(p.Points) == 0 {
		return nil
	}
	s := r.scale
	dc.ClearPath()
	dc.SetColor(parseColor(p.Color, 1))
	dc.MoveTo(p.Points[0].X*s, p.Points[0].Y*s)
	for _, pt := range p.Points[1:] {
		dc.LineTo(pt.X*s, pt.Y*s)
	}
	dc.ClosePath()
	return dc.Fill()
}

func (r *pngRenderer) drawLine(dc *gg.Context, ln layout.Line) error {
	s := r.scale
	dc.ClearPath()
	dc.SetColor(parseColor(ln.Color, ln.Opacity))
	dc.SetLineWidth(math.Max(ln.Width*s, 1))
	dc.DrawLine(ln.From.X*s, ln.From.Y*s, ln.To.X*s, ln.To.Y*s)
	return dc.Stroke()
}

func (r *pngRenderer) drawText(dc *gg.Context, t layout.TextRun) {
	if t.Text == "" {
		return
	}
	s := r.scale
	source := fonts.regular
	switch {
	case t.Bold:
		source = fonts.bold
	case t.Italic:
		source = fonts.italic
	}
	dc.SetFont(source.Face(t.FontSize * s))
	dc.SetColor(parseColor(t.Color, t.Opacity))

	ax := 0.5
	switch t.Anchor {
	case layout.AnchorStart:
		ax = 0
	case layout.AnchorEnd:
		ax = 1
	}
	dc.DrawStringAnchored(t.Text, t.At.X*s, t.At.Y*s, ax, 0.5)
}

func (r *pngRenderer) drawCurved(dc *gg.Context, c layout.CurvedRun) {
	s := r.scale
	dc.SetFont(fonts.regular.Face(c.FontSize * s))
	dc.SetColor(parseColor(c.Color, 1))
	for _, g := range c.Glyphs {
		dc.Push()
		dc.RotateAbout(g.Rotation, g.At.X*s, g.At.Y*s)
		dc.DrawStringAnchored(g.Char, g.At.X*s, g.At.Y*s, 0.5, 0.5)
		dc.Pop()
	}
}

// parseColor resolves a layout color (hex value or SVG color keyword)
// with an opacity applied. Unknown colors fall back to black, matching
// how browsers treat unknown SVG keywords.
func parseColor(name string, opacity float64) color.Color {
	c := color.RGBA{A: 0xff}
	if strings.HasPrefix(name, "#") {
		if hex, ok := parseHex(name); ok {
			c = hex
		}
	} else if named, ok := colornames.Map[strings.ToLower(name)]; ok {
		c = named
	}
	if opacity > 0 && opacity < 1 {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity*255 + 0.5)}
	}
	return c
}

func parseHex(hex string) (color.RGBA, bool) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
