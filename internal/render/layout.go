package render

import (
	"strconv"
	"strings"

	"github.com/arcanaland/cardsmith/internal/artwork"
	"github.com/arcanaland/cardsmith/internal/card"
)

// Use places a symbol. Ref is the symbol name without the per-card suffix
// ("R" for the rank, "S0".."S3" for suits, layer names for court art).
// A zero W leaves the width to the symbol's aspect ratio.
type Use struct {
	Ref        string
	W, H, X, Y float64
	Transform  string
}

// Label is a debug label drawn at a pip slot.
type Label struct {
	Text string
	X, Y float64
}

// Court describes the artwork block of a jack, queen or king.
type Court struct {
	Style   int
	Variant int
	Mirror  bool

	// Layers are the gold, red, blue, black and detail paths.
	Layers [artwork.CourtLayers]string
	// Pips are decorative suit pips drawn inside the detail layer.
	Pips       []Use
	SuitAnchor Point
	Watermark  string
}

// Layout is the geometry of one card, ready to be serialized or rasterized.
// Everything the sinks need is copied in, so a Layout does not reference
// the artwork it was built from.
type Layout struct {
	Settings

	// ID suffixes every symbol id so several cards can share a document.
	ID string

	RankPath   string // stroked rank glyph, unused when RankLetter is set
	RankLetter string // custom rank text from Settings.Letters
	SuitPaths  [4]string

	// Corners are the rank and suit indicators of the top-left corner. They
	// are drawn again rotated by 180 degrees.
	Corners []Use
	// Pips are all pips; MirroredPips are the top-half ones, drawn again
	// rotated by 180 degrees.
	Pips         []Use
	MirroredPips []Use
	Labels       []Label

	Court   *Court
	AceMark bool
}

// Front reports whether the layout shows the face of a card.
func (l *Layout) Front() bool {
	return l.Card.Rank > card.Back
}

// PipCount returns the number of pips drawn, mirrored copies included.
func (l *Layout) PipCount() int {
	return len(l.Pips) + len(l.MirroredPips)
}

// NewLayout normalizes o and lays out the card using art. A nil art uses
// the built-in artwork.
func NewLayout(o Options, art *artwork.Artwork) Layout {
	if art == nil {
		art = defaultArtwork
	}

	s := Normalize(o, art.Mode)
	suit, rank := int(s.Card.Suit), int(s.Card.Rank)
	l := Layout{Settings: s, ID: cardID(s.Card)}
	if rank == 0 {
		return l
	}

	for i := range l.SuitPaths {
		l.SuitPaths[i] = art.Suit(i)
	}
	if s.Letters != "" {
		l.RankLetter = rankLetter(s.Letters, rank)
	} else {
		l.RankPath = art.Rank(rank)
	}

	if !s.NoRank {
		rankH, rankX := 39.0, -120.0
		if s.Letters != "" {
			rankH, rankX = 50, -116
		}
		l.Corners = []Use{
			{Ref: "R", H: rankH, X: rankX, Y: -158},
			{Ref: suitRef(suit), H: 39, X: -120, Y: -120},
		}
	}

	if rank <= 10 {
		l.layoutPips(art.Pip(rank))
	} else {
		l.Court = layoutCourt(art, s)
	}

	l.AceMark = !s.NoRank && rank == int(card.Ace) && suit == int(card.Spades)
	return l
}

var defaultArtwork = artwork.Default()

// layoutPips places the pips described by mask.
func (l *Layout) layoutPips(mask string) {
	rank := int(l.Card.Rank)
	slots := pipSlots(rank, l.PipY)

	for i, ch := range []rune(mask) {
		if i >= len(slots) {
			break
		}
		pos := slots[i]

		if ch != '0' {
			x, y, size := pos.X, pos.Y, pipSize
			if rank == 4 {
				y += 30
			}
			if rank == 1 && i == 9 {
				x, y, size = -pipSize, -pipSize, pipSize*2
			}

			suit := int(l.Card.Suit)
			if k := strings.IndexRune("SHDC", ch); k >= 0 {
				suit = k
			}

			u := Use{Ref: suitRef(suit), H: size, X: x, Y: y}
			l.Pips = append(l.Pips, u)
			if i < topHalfSlots {
				l.MirroredPips = append(l.MirroredPips, u)
			}
		}

		if l.ShowPips {
			l.Labels = append(l.Labels, Label{Text: slotLabels[i : i+1], X: pos.X + 27, Y: pos.Y + 40})
		}
	}
}

// layoutCourt selects the court style and suit variant and collects the
// layers of the artwork block.
func layoutCourt(art *artwork.Artwork, s Settings) *Court {
	suit, rank := int(s.Card.Suit), int(s.Card.Rank)
	style := index(pick(s.CourtStyles, rank-int(card.Jack)), artwork.CourtStyles)
	variant := index(pick(s.SuitVariants, suit), artwork.CourtVariants)

	c := &Court{
		Style:      style,
		Variant:    variant,
		Mirror:     courtMirror[style][variant],
		SuitAnchor: courtSuitAnchor[style][variant],
	}
	for layer := range c.Layers {
		c.Layers[layer] = art.Court(style, layer, variant)
	}
	for _, p := range courtPips[style][variant] {
		u := Use{Ref: suitRef(suit), H: p.size, X: p.x, Y: p.y}
		if p.rotate != "" {
			u.Transform = "rotate(" + p.rotate + ")"
		}
		c.Pips = append(c.Pips, u)
	}
	if style == watermark.style && variant == watermark.variant {
		c.Watermark = watermark.text
	}
	return c
}

// index parses a table index, falling back to 0 outside [0, n).
func index(v string, n int) int {
	i := int(number(v, 0))
	if i < 0 || i >= n {
		return 0
	}
	return i
}

// rankLetter picks the custom rank text for rank. The first entry of
// letters replaces the ace; entries after it replace jack, queen and king.
func rankLetter(letters string, rank int) string {
	parts := splitList(letters)
	switch {
	case rank == 1:
		return parts[0]
	case rank <= 10:
		return strconv.Itoa(rank)
	case rank-10 < len(parts):
		return parts[rank-10]
	}
	return ""
}

func suitRef(suit int) string {
	return "S" + strconv.Itoa(suit)
}

// cardID builds the symbol id suffix: the rank digit or the first letter of
// its name, then the suit letter ("as", "7h", "qd", "bs").
func cardID(c card.Card) string {
	r := int(c.Rank)
	rankChar := card.RankNames[r][:1]
	if r > 1 && r < 10 {
		rankChar = strconv.Itoa(r)
	}
	return rankChar + strings.ToLower(c.Suit.Letter())
}

// SuitFill is the pip and suit-corner color for the card's suit.
func (l *Layout) SuitFill() string {
	return perSuit(l.SuitColor, int(l.Card.Suit))
}

// RankStroke is the rank glyph color for the card's suit.
func (l *Layout) RankStroke() string {
	return perSuit(l.RankColor, int(l.Card.Suit))
}

// CourtColor returns entry i of the court colors: the four fill layers,
// the detail stroke color, then the detail stroke width.
func (l *Layout) CourtColor(i int) string {
	return item(l.CourtColors, i)
}

// Block places one court layer. Every layer shares the same box.
func (c *Court) Block(layer string) Use {
	return Use{Ref: layer, W: courtW, H: courtH, X: courtX, Y: courtY}
}

// Suit places the large suit glyph beside the court figure.
func (c *Court) Suit(suit int) Use {
	return Use{Ref: suitRef(suit), H: courtSuitSize, X: c.SuitAnchor.X, Y: c.SuitAnchor.Y}
}

// WatermarkAt is the baseline position of the watermark text.
func (c *Court) WatermarkAt() Point {
	return Point{watermark.x, watermark.y}
}
