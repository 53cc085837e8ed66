// Package raster draws card layouts into bitmaps and encodes them as PNG
// or WebP. It follows the same geometry as the SVG output; drop shadows
// and text styling are not reproduced.
package raster

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/arcanaland/cardsmith/internal/artwork"
	"github.com/arcanaland/cardsmith/internal/render"
)

const (
	// DefaultWidth matches the width attribute of the SVG output.
	DefaultWidth = int(2 * render.CardWidth)
	// MaxWidth bounds the bitmap width; wider requests are drawn at MaxWidth.
	MaxWidth = 4096
)

// symbol viewBoxes, as {minX, minY, width, height}
var (
	rankBox  = [4]float64{-500, -500, 1000, 1000}
	suitBox  = [4]float64{-600, -600, 1200, 1200}
	courtBox = [4]float64{0, 0, 1300, 2000}
	tileBox  = [4]float64{0, 0, 10, 10}
)

const (
	backTile   = "M5 0L10 5L5 10L0 5Z"
	miterLimit = 4 // SVG default
)

type canvas struct {
	img   *image.RGBA
	d     *rasterx.Dasher
	base  rasterx.Matrix2D
	l     *render.Layout
	paths map[string]rasterx.Path
}

// newCanvas prepares a transparent image width pixels wide whose base
// transform maps card coordinates (origin at the centre) to pixels.
func newCanvas(l *render.Layout, width int) *canvas {
	k := float64(width) / render.CardWidth
	height := int(math.Round(render.CardHeight * k))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &canvas{
		img:   img,
		d:     rasterx.NewDasher(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
		base:  rasterx.Identity.Scale(k, k).Translate(render.CardWidth/2, render.CardHeight/2),
		l:     l,
		paths: make(map[string]rasterx.Path),
	}
}

// Rasterize draws l into a new image width pixels wide. A non-positive
// width uses DefaultWidth; widths above MaxWidth are reduced to it.
func Rasterize(l *render.Layout, width int) *image.RGBA {
	if width <= 0 {
		width = DefaultWidth
	}
	c := newCanvas(l, min(width, MaxWidth))

	border := l.BorderLine
	frame := roundRect(-render.CardWidth/2+border/2, -render.CardHeight/2+border/2,
		render.CardWidth-border, render.CardHeight-border, l.BorderRadius)
	c.fill(c.base, frame, l.CardColor, 1)
	c.stroke(c.base, frame, l.BorderColor, border, 1)

	if l.Front() {
		c.drawFront()
	} else {
		c.drawBack()
	}
	if l.Court != nil {
		c.drawCourt()
	}
	if l.AceMark {
		c.drawSymbol(c.base, render.Use{Ref: "S0", H: 11, X: -4.5, Y: 5}, "#fff", 0)
	}
	return c.img
}

func (c *canvas) drawFront() {
	l := c.l
	rot := c.base.Mult(rotate(180))

	c.drawUses(c.base, l.Corners)
	c.drawUses(c.base, l.Pips)
	c.drawUses(rot, l.Corners)
	c.drawUses(rot, l.MirroredPips)

	for _, lb := range l.Labels {
		c.text(c.base, lb.Text, lb.X, lb.Y, "#f00", true)
	}
}

func (c *canvas) drawBack() {
	l := c.l
	r := l.BorderRadius
	w, h := render.CardWidth-2*r, render.CardHeight-2*r

	// whole pattern tiles inside the back panel, tiles anchored at the origin
	for ty := math.Ceil(-h/2/10) * 10; ty+10 <= h/2; ty += 10 {
		for tx := math.Ceil(-w/2/10) * 10; tx+10 <= w/2; tx += 10 {
			m := c.useMatrix(c.base, render.Use{W: 10, H: 10, X: tx, Y: ty}, tileBox, 0)
			c.fill(m, backTile, l.BackColor, 1)
		}
	}
	if l.BackText != "" {
		c.text(c.base, l.BackText, 0, 10, l.BackTextColor, true)
	}
}

func (c *canvas) drawCourt() {
	l, ct := c.l, c.l.Court
	g := c.base
	if ct.Mirror {
		g = g.Scale(-1, 1)
	}

	for layer, path := range ct.Layers {
		block := ct.Block(artwork.LayerNames[layer])
		for _, m := range []rasterx.Matrix2D{g, g.Mult(rotate(180))} {
			sm := c.useMatrix(m, block, courtBox, 0)
			if layer < artwork.LayerDetail {
				c.fill(sm, path, l.CourtColor(layer), l.Opacity)
				continue
			}
			width, err := strconv.ParseFloat(l.CourtColor(layer+1), 64)
			if err != nil {
				width = 4
			}
			c.stroke(sm, path, l.CourtColor(layer), width, 1)
			for _, u := range ct.Pips {
				c.drawSymbolIn(sm, u, courtBox[2])
			}
		}
	}

	if ct.Watermark != "" {
		at := ct.WatermarkAt()
		c.text(g, ct.Watermark, at.X, at.Y, "#777", true)
	}

	suit := ct.Suit(int(l.Card.Suit))
	c.drawUses(g, []render.Use{suit})
	c.drawUses(g.Mult(rotate(180)), []render.Use{suit})
	c.stroke(g, roundRect(-83, -127, 166, 254, 2), "#44f", 3, 1)
}

func (c *canvas) drawUses(m rasterx.Matrix2D, uses []render.Use) {
	for _, u := range uses {
		c.drawSymbolIn(m, u, render.CardWidth)
	}
}

// drawSymbolIn draws the rank or a suit glyph. vpWidth resolves a zero
// use width, which SVG treats as 100% of the enclosing viewport.
func (c *canvas) drawSymbolIn(m rasterx.Matrix2D, u render.Use, vpWidth float64) {
	if u.Ref == "R" {
		c.drawRank(m, u, vpWidth)
		return
	}
	c.drawSymbol(m, u, c.l.SuitFill(), vpWidth)
}

func (c *canvas) drawSymbol(m rasterx.Matrix2D, u render.Use, color string, vpWidth float64) {
	var suit int
	if _, err := fmt.Sscanf(u.Ref, "S%d", &suit); err != nil || suit < 0 || suit > 3 {
		return
	}
	if vpWidth == 0 {
		vpWidth = render.CardWidth
	}
	c.fill(c.useMatrix(m, u, suitBox, vpWidth), c.l.SuitPaths[suit], color, c.l.Opacity)
}

func (c *canvas) drawRank(m rasterx.Matrix2D, u render.Use, vpWidth float64) {
	l := c.l
	if l.RankLetter != "" {
		m = m.Mult(parseTransform(u.Transform)).Translate(u.X, u.Y)
		c.text(m, l.RankLetter, 1, 33, l.SuitFill(), false)
		return
	}
	c.stroke(c.useMatrix(m, u, rankBox, vpWidth), l.RankPath, l.RankStroke(), 110, l.Opacity)
}

// useMatrix maps a symbol's viewBox onto the box of u with xMinYMid meet
// alignment.
func (c *canvas) useMatrix(parent rasterx.Matrix2D, u render.Use, vb [4]float64, vpWidth float64) rasterx.Matrix2D {
	w := u.W
	if w == 0 {
		w = vpWidth
	}
	h := u.H
	if h == 0 {
		h = w
	}
	s := math.Min(w/vb[2], h/vb[3])
	return parent.Mult(parseTransform(u.Transform)).
		Translate(u.X, u.Y+(h-vb[3]*s)/2).
		Scale(s, s).
		Translate(-vb[0], -vb[1])
}

// trace feeds the path data d, transformed by m, to a filler or stroker.
func (c *canvas) trace(m rasterx.Matrix2D, d string, to rasterx.Adder) {
	p, ok := c.paths[d]
	if !ok {
		p = compile(d)
		c.paths[d] = p
	}
	p.AddTo(&rasterx.MatrixAdder{Adder: to, M: m})
}

// fill paints path with the nonzero rule.
func (c *canvas) fill(m rasterx.Matrix2D, path, col string, opacity float64) {
	nc, ok := parseColor(col)
	if !ok || path == "" {
		return
	}
	nc = withOpacity(nc, opacity)
	if nc.A == 0 {
		return
	}
	f := &c.d.Filler
	f.Clear()
	f.SetWinding(true)
	c.trace(m, path, f)
	f.SetColor(nc)
	f.Draw()
}

// stroke outlines path with butt caps and miter joins. width is in the
// units of m.
func (c *canvas) stroke(m rasterx.Matrix2D, path, col string, width, opacity float64) {
	nc, ok := parseColor(col)
	if !ok || path == "" || width <= 0 {
		return
	}
	nc = withOpacity(nc, opacity)
	if nc.A == 0 {
		return
	}
	w := fixed.Int26_6(width * lineScale(m) * 64)
	c.d.Clear()
	c.d.SetStroke(w, miterLimit*64, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0)
	c.trace(m, path, c.d)
	c.d.SetColor(nc)
	c.d.Draw()
}

// text draws s upright with its baseline at (x, y) in the space of m.
func (c *canvas) text(m rasterx.Matrix2D, s string, x, y float64, col string, centered bool) {
	nc, ok := parseColor(col)
	if !ok || s == "" {
		return
	}
	px, py := m.Transform(x, y)
	if centered {
		px -= float64(font.MeasureString(basicfont.Face7x13, s).Round()) / 2
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(nc),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(math.Round(px)), int(math.Round(py))),
	}
	d.DrawString(s)
}

// roundRect returns path data for a rectangle with corner radius r.
func roundRect(x, y, w, h, r float64) string {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	k := r * 0.5523
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return fmt.Sprintf("M%s %sH%sC%s %s %s %s %s %sV%sC%s %s %s %s %s %sH%sC%s %s %s %s %s %sV%sC%s %s %s %s %s %sZ",
		f(x+r), f(y), f(x+w-r),
		f(x+w-r+k), f(y), f(x+w), f(y+r-k), f(x+w), f(y+r),
		f(y+h-r),
		f(x+w), f(y+h-r+k), f(x+w-r+k), f(y+h), f(x+w-r), f(y+h),
		f(x+r),
		f(x+r-k), f(y+h), f(x), f(y+h-r+k), f(x), f(y+h-r),
		f(y+r),
		f(x), f(y+r-k), f(x+r-k), f(y), f(x+r), f(y))
}
