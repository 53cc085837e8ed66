// Package render draws playing cards as self-contained SVG documents.
//
// Rendering is a pure function of Options: loose attribute values are
// normalized into Settings, laid out into a Layout and serialized. Nothing
// is shared between calls apart from read-only artwork tables.
package render

import (
	"math"
	"strconv"
	"strings"
)

// Options is the loosely typed render input. Every field holds the raw value
// of the matching attribute; the empty string means "use the default".
// Options is never mutated by the renderer.
type Options struct {
	CID     string // card identifier: "AS", "QH", "10-OF-SPADES", "FF"
	Suit    string // 0-3, a suit name or letter
	Rank    string // 0-13, a rank name or letter; 0 is the card back
	Letters string // custom rank characters, comma separated or one per character

	Suits  string // suit variant per suit, e.g. "0123"
	Courts string // court style per court rank, e.g. "012"

	SuitColor   string // single color or one per suit, comma separated
	RankColor   string // single color or one per suit, comma separated
	CourtColors string // gold,red,blue,black,detail color,detail width

	NoRank   string // truthy hides the corner indicators
	ShowPips string // truthy overlays debug labels on every pip slot
	PipY     string // vertical pip offset

	BackColor     string
	CardColor     string
	BackText      string
	BackTextColor string

	BorderRadius string
	BorderColor  string
	BorderLine   string
	Opacity      string
	Shadow       string // "dx,dy,blur"; "none" disables the suit shadow

	SVG string // extra attributes for the root element, inserted verbatim
}

// AttributeNames is the fixed list of attribute names understood by
// FromAttributes, in the order of the Options fields.
var AttributeNames = []string{
	"cid", "suit", "rank", "letters", "suits", "courts",
	"suitcolor", "rankcolor", "courtcolors", "norank", "showpips", "pipy",
	"backcolor", "cardcolor", "backtext", "backtextcolor",
	"borderradius", "bordercolor", "borderline", "opacity", "shadow", "svg",
}

// field returns a pointer to the Options field for attribute name.
func (o *Options) field(name string) *string {
	switch strings.ToLower(name) {
	case "cid":
		return &o.CID
	case "suit":
		return &o.Suit
	case "rank":
		return &o.Rank
	case "letters":
		return &o.Letters
	case "suits":
		return &o.Suits
	case "courts":
		return &o.Courts
	case "suitcolor":
		return &o.SuitColor
	case "rankcolor":
		return &o.RankColor
	case "courtcolors":
		return &o.CourtColors
	case "norank":
		return &o.NoRank
	case "showpips":
		return &o.ShowPips
	case "pipy":
		return &o.PipY
	case "backcolor":
		return &o.BackColor
	case "cardcolor":
		return &o.CardColor
	case "backtext":
		return &o.BackText
	case "backtextcolor":
		return &o.BackTextColor
	case "borderradius":
		return &o.BorderRadius
	case "bordercolor":
		return &o.BorderColor
	case "borderline":
		return &o.BorderLine
	case "opacity":
		return &o.Opacity
	case "shadow":
		return &o.Shadow
	case "svg":
		return &o.SVG
	}
	return nil
}

// FromAttributes builds Options from attribute name/value pairs. A present
// attribute with an empty value takes its own name as value, the way a bare
// boolean attribute does. Unknown names are ignored.
func FromAttributes(attrs map[string]string) Options {
	var o Options
	o.Set(attrs)
	return o
}

// Set overlays attrs onto o using the FromAttributes rules.
func (o *Options) Set(attrs map[string]string) {
	for name, value := range attrs {
		f := o.field(name)
		if f == nil {
			continue
		}
		if value == "" {
			value = strings.ToLower(name)
		}
		*f = value
	}
}

// Get returns the raw value of attribute name.
func (o Options) Get(name string) string {
	if f := o.field(name); f != nil {
		return *f
	}
	return ""
}

// Attributes returns the non-empty fields keyed by attribute name.
func (o Options) Attributes() map[string]string {
	attrs := make(map[string]string)
	for _, name := range AttributeNames {
		if v := o.Get(name); v != "" {
			attrs[name] = v
		}
	}
	return attrs
}

// Merge returns a copy of o where every empty field is taken from base.
func (o Options) Merge(base Options) Options {
	merged := o
	for _, name := range AttributeNames {
		f := merged.field(name)
		if *f == "" {
			*f = base.Get(name)
		}
	}
	return merged
}

// truthy interprets a loose boolean attribute.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

// number parses a loose numeric attribute, falling back to def.
func number(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// splitList splits a value on commas when it has any, otherwise into single
// characters.
func splitList(v string) []string {
	if strings.Contains(v, ",") {
		return strings.Split(v, ",")
	}
	return strings.Split(v, "")
}

// pick returns element i of splitList(v), or "" when out of range.
func pick(v string, i int) string {
	list := splitList(v)
	if i < 0 || i >= len(list) {
		return ""
	}
	return list[i]
}

// perSuit resolves a color field: comma lists are indexed by suit, a single
// value applies to every suit.
func perSuit(v string, suit int) string {
	if strings.Contains(v, ",") {
		return pick(v, suit)
	}
	return v
}
