package render

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/arcanaland/cardsmith/internal/artwork"
)

// Card canvas: a 240x334 viewBox centred on the origin, drawn at 2x.
const (
	CardWidth  = 240.0
	CardHeight = 334.0
	minX       = -CardWidth / 2
	minY       = -CardHeight / 2
)

const (
	rankBox  = 500 // rank glyph viewBox half size
	suitBox  = 600 // suit glyph viewBox half size
	courtBox = "0 0 1300 2000"
	backTile = "M5 0L10 5L5 10L0 5Z" // one diamond of the back pattern, 10x10
)

// Renderer renders cards with one artwork set. The zero value uses the
// built-in artwork. A Renderer is safe for concurrent use.
type Renderer struct {
	Art *artwork.Artwork
}

// Layout lays out the card described by o.
func (r Renderer) Layout(o Options) Layout {
	return NewLayout(o, r.Art)
}

// Render returns the SVG document for o.
func (r Renderer) Render(o Options) string {
	l := r.Layout(o)
	return string(SVG(&l))
}

// DataURI returns the SVG document for o as a data URI.
func (r Renderer) DataURI(o Options) string {
	return ToDataURI(r.Render(o))
}

// Render returns the SVG document for o drawn with the built-in artwork.
func Render(o Options) string {
	return Renderer{}.Render(o)
}

// DataURI returns Render(o) as a data:image/svg+xml URI.
func DataURI(o Options) string {
	return ToDataURI(Render(o))
}

// ToDataURI wraps an SVG document in a data URI, escaping '#' as %23.
func ToDataURI(svg string) string {
	return "data:image/svg+xml," + strings.ReplaceAll(svg, "#", "%23")
}

// SVG serializes a layout.
func SVG(l *Layout) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<svg xmlns='http://www.w3.org/2000/svg' width='%s' height='%s' viewBox='%s %s %s %s'",
		num(2*CardWidth), num(2*CardHeight), num(minX), num(minY), num(CardWidth), num(CardHeight))
	if l.Attrs != "" {
		buf.WriteString(" " + l.Attrs)
	}
	buf.WriteString(">")

	border := l.BorderLine
	writeRect(&buf, CardWidth-border, CardHeight-border, border/2+minX, border/2+minY, l.BorderRadius,
		strokeAttrs(l.BorderColor, num(border), l.CardColor))

	dx, dy, blur := "0", "0", "0"
	if l.Shadow != nil {
		dx, dy, blur = l.Shadow.DX, l.Shadow.DY, l.Shadow.Blur
	}
	fmt.Fprintf(&buf, "<filter id='SH'><feDropShadow dx='%s' dy='%s' stdDeviation='%s'/></filter>",
		esc(dx), esc(dy), esc(blur))

	if l.Front() {
		writeFront(&buf, l)
	} else {
		writeBack(&buf, l)
	}

	if l.Court != nil {
		writeCourt(&buf, l)
	}

	if l.AceMark {
		writeText(&buf, "♠", 1, 17, "#fff", "#ddd", 11, 0, "middle")
	}

	buf.WriteString("</svg>")
	return buf.Bytes()
}

func writeFront(buf *bytes.Buffer, l *Layout) {
	if l.Letters != "" {
		size := 40.0
		if l.RankLetter == "W" {
			size = 30
		}
		fmt.Fprintf(buf, "<symbol id='R%s' opacity='%s'>", l.ID, num(l.Opacity))
		writeText(buf, l.RankLetter, 1, 33, "", l.SuitFill(), size, -7, "start")
		buf.WriteString("</symbol>")
	} else {
		writeSymbol(buf, l, "R", viewBox(rankBox), l.RankPath,
			strokeAttrs(l.RankStroke(), "110", "none"), nil)
	}

	suitColor := l.SuitFill()
	for i, path := range l.SuitPaths {
		writeSymbol(buf, l, suitRef(i), viewBox(suitBox), path, fillAttrs(suitColor), nil)
	}

	writeUses(buf, l, l.Corners)
	writeUses(buf, l, l.Pips)
	buf.WriteString("<g transform='rotate(180)'>")
	writeUses(buf, l, l.Corners)
	writeUses(buf, l, l.MirroredPips)
	buf.WriteString("</g>")

	for _, lb := range l.Labels {
		writeText(buf, lb.Text, lb.X, lb.Y, "#f00", "#f00", 40, -7, "middle")
	}
}

func writeBack(buf *bytes.Buffer, l *Layout) {
	r := l.BorderRadius
	w, h := CardWidth-2*r, CardHeight-2*r

	fmt.Fprintf(buf, "<symbol id='B%s' viewBox='0 0 10 10'><path d='%s' %s/></symbol>",
		l.ID, backTile, fillAttrs(l.BackColor))
	fmt.Fprintf(buf, "<pattern patternUnits='userSpaceOnUse' id='pa%s'%s>", l.ID, dims(10, 10, 0, 0))
	writeUse(buf, l, Use{Ref: "B", W: 10, H: 10})
	buf.WriteString("</pattern>")
	writeRect(buf, w, h, -w/2, -h/2, r, fillAttrs("url(#pa"+l.ID+")"))
	if l.BackText != "" {
		writeText(buf, l.BackText, 0, 10, "", l.BackTextColor, 40, -2, "middle")
	}
}

func writeCourt(buf *bytes.Buffer, l *Layout) {
	c := l.Court
	if c.Mirror {
		buf.WriteString("<g transform='scale(-1,1)'>")
	} else {
		buf.WriteString("<g>")
	}

	for layer, path := range c.Layers {
		name := artwork.LayerNames[layer]
		if layer < artwork.LayerDetail {
			writeSymbol(buf, l, name, courtBox, path, fillAttrs(l.CourtColor(layer)), nil)
		} else {
			writeSymbol(buf, l, name, courtBox, path,
				strokeAttrs(l.CourtColor(layer), l.CourtColor(layer+1), "none"), c.Pips)
		}
	}
	for _, name := range artwork.LayerNames {
		writeMirrored(buf, l, c.Block(name))
	}

	if c.Watermark != "" {
		at := c.WatermarkAt()
		writeText(buf, c.Watermark, at.X, at.Y, "", "#777", 7, -1, "middle")
	}

	writeMirrored(buf, l, c.Suit(int(l.Card.Suit)))
	writeRect(buf, 166, 254, -83, -127, 2, strokeAttrs("#44f", "3", "none"))
	buf.WriteString("</g>")
}

// writeSymbol writes a reusable symbol. Symbols holding nested uses are
// drawn opaque; plain glyphs take the card opacity.
func writeSymbol(buf *bytes.Buffer, l *Layout, name, vb, path, attrs string, uses []Use) {
	opacity := l.Opacity
	if len(uses) > 0 {
		opacity = 1
	}
	fmt.Fprintf(buf, "<symbol id='%s%s' viewBox='%s' preserveAspectRatio='xMinYMid' opacity='%s'>",
		name, l.ID, vb, num(opacity))
	fmt.Fprintf(buf, "<path d='%s' %s", esc(path), attrs)
	if name[0] == 'S' && l.Shadow != nil {
		fmt.Fprintf(buf, " style='filter:drop-shadow(%spx %spx %spx rgba(0,0,0,.3))'",
			esc(l.Shadow.DX), esc(l.Shadow.DY), esc(l.Shadow.Blur))
	}
	buf.WriteString("/>")
	writeUses(buf, l, uses)
	buf.WriteString("</symbol>")
}

func writeUses(buf *bytes.Buffer, l *Layout, uses []Use) {
	for _, u := range uses {
		writeUse(buf, l, u)
	}
}

func writeUse(buf *bytes.Buffer, l *Layout, u Use) {
	fmt.Fprintf(buf, "<use href='#%s%s'%s", u.Ref, l.ID, dims(u.W, u.H, u.X, u.Y))
	if u.Transform != "" {
		fmt.Fprintf(buf, " transform='%s'", u.Transform)
	}
	buf.WriteString("/>")
}

// writeMirrored places u and a copy rotated by 180 degrees.
func writeMirrored(buf *bytes.Buffer, l *Layout, u Use) {
	writeUse(buf, l, u)
	u.Transform = "rotate(180)"
	writeUse(buf, l, u)
}

func writeRect(buf *bytes.Buffer, w, h, x, y, r float64, attrs string) {
	fmt.Fprintf(buf, "<rect%s rx='%s' ry='%s' %s/>", dims(w, h, x, y), num(r), num(r), attrs)
}

func writeText(buf *bytes.Buffer, text string, x, y float64, stroke, fill string, size, spacing float64, anchor string) {
	fmt.Fprintf(buf, "<text x='%s' y='%s' stroke='%s' text-anchor='%s' style='font-weight:600;stroke:none;font-family:arial;letter-spacing:%spx;fill:%s;font-size:%spx;'>%s</text>",
		num(x), num(y), esc(stroke), anchor, num(spacing), esc(fill), num(size), esc(text))
}

func viewBox(size float64) string {
	return fmt.Sprintf("%s %s %s %s", num(-size), num(-size), num(2*size), num(2*size))
}

func fillAttrs(color string) string {
	return fmt.Sprintf("fill='%s' fill-opacity='1'", esc(color))
}

func strokeAttrs(color, width, fill string) string {
	return fmt.Sprintf("stroke='%s' %s stroke-width='%s'", esc(color), fillAttrs(fill), esc(width))
}

// dims writes the non-zero geometry attributes.
func dims(w, h, x, y float64) string {
	var b strings.Builder
	for _, a := range []struct {
		name string
		v    float64
	}{{"width", w}, {"height", h}, {"x", x}, {"y", y}} {
		if a.v != 0 {
			fmt.Fprintf(&b, " %s='%s'", a.name, num(a.v))
		}
	}
	return b.String()
}

func item(list []string, i int) string {
	if i < 0 || i >= len(list) {
		return ""
	}
	return list[i]
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var esc = html.EscapeString
