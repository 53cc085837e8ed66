package render

import (
	"strings"

	"github.com/arcanaland/cardsmith/internal/artwork"
	"github.com/arcanaland/cardsmith/internal/card"
)

// Defaults used when an option is empty.
const (
	DefaultCourts        = "012"
	DefaultSuits         = "0123"
	DefaultSuitColor     = "#000,#f00,#f00,#000"
	DefaultRankColor     = "#000,#f00,#f00,#000"
	DefaultCourtColors   = "#db3,#f00,#44f,#000,#000,4"
	DefaultShadow        = "5,5,5"
	DefaultBackColor     = "#e55"
	DefaultCardColor     = "#fff"
	DefaultBackTextColor = "#555"
	DefaultBorderColor   = "#444"
	DefaultBorderLine    = 1.0
	DefaultBorderRadius  = 12.0
	DefaultOpacity       = 0.8
)

// Face-down presentation forced by an "F" rank in a card identifier.
const (
	faceDownBackColor = "green"
	faceDownOpacity   = 0.3
	faceDownCardColor = "transparent"
	faceDownLetters   = "    "
)

// Shadow is the drop shadow applied to suit symbols.
type Shadow struct {
	DX, DY, Blur string
}

// Settings is the canonical, fully defaulted form of Options.
type Settings struct {
	Card card.Card

	Letters      string // empty when the rank glyphs are drawn
	SuitVariants string
	CourtStyles  string

	SuitColor   string
	RankColor   string
	CourtColors []string // gold, red, blue, black, detail color, detail width

	NoRank   bool
	ShowPips bool
	PipY     float64

	BackColor     string
	CardColor     string
	BackText      string
	BackTextColor string

	BorderRadius float64
	BorderColor  string
	BorderLine   float64
	Opacity      float64
	Shadow       *Shadow // nil when disabled

	Attrs string
}

// Decoded is the result of decoding a card identifier.
type Decoded struct {
	Suit     int
	Rank     int
	FaceDown bool // rank "F": a faded placeholder of Suit
	Blank    bool // "FF": a fully blank placeholder card
}

// DecodeCID decodes a card identifier such as "AS", "10H", "QUEEN-OF-HEARTS"
// or "FF". ok is false when cid is empty.
func DecodeCID(cid string) (d Decoded, ok bool) {
	upper := strings.ToUpper(strings.TrimSpace(cid))
	if upper == "" {
		return Decoded{}, false
	}

	rankTok, suitTok := splitCID(upper)
	if rankTok == "F" {
		d.FaceDown = true
		d.Rank = int(card.Ace)
		if suitTok == "F" {
			d.Blank = true
			d.Rank = int(card.Back)
			return d, true
		}
		d.Suit = card.ParseName(suitTok)
		return d, true
	}

	d.Rank = card.ParseName(rankTok)
	d.Suit = card.ParseName(suitTok)
	return d, true
}

// splitCID returns the rank and suit tokens of an upper-cased identifier.
func splitCID(cid string) (rank, suit string) {
	if strings.Contains(cid, "-") {
		parts := strings.SplitN(cid, "-OF-", 2)
		if len(parts) != 2 {
			parts = strings.Split(cid, "-")
			parts = []string{parts[0], parts[len(parts)-1]}
		}
		return verboseToken(parts[0]), verboseToken(parts[1])
	}

	runes := []rune(strings.Replace(cid, "10", "T", 1))
	if len(runes) > 0 {
		rank = string(runes[0])
	}
	if len(runes) > 1 {
		suit = string(runes[1])
	}
	return rank, suit
}

// verboseToken keeps a whole word the name table knows ("TEN", "10",
// "HEARTS") and otherwise reduces it to its first character.
func verboseToken(word string) string {
	if word == "" || card.IsName(word) {
		return word
	}
	return string([]rune(word)[:1])
}

// Normalize resolves o into Settings. It never fails: malformed values fall
// back to their defaults and suit/rank are clamped to [0,3] and [0,13].
func Normalize(o Options, mode artwork.Mode) Settings {
	s := Settings{
		Letters:       o.Letters,
		SuitVariants:  orDefault(o.Suits, DefaultSuits),
		CourtStyles:   orDefault(o.Courts, DefaultCourts),
		SuitColor:     orDefault(o.SuitColor, DefaultSuitColor),
		RankColor:     orDefault(o.RankColor, DefaultRankColor),
		CourtColors:   splitList(orDefault(o.CourtColors, DefaultCourtColors)),
		NoRank:        truthy(o.NoRank),
		ShowPips:      truthy(o.ShowPips),
		PipY:          number(o.PipY, 0),
		BackColor:     orDefault(o.BackColor, DefaultBackColor),
		CardColor:     orDefault(o.CardColor, DefaultCardColor),
		BackText:      o.BackText,
		BackTextColor: orDefault(o.BackTextColor, DefaultBackTextColor),
		BorderRadius:  number(o.BorderRadius, DefaultBorderRadius),
		BorderColor:   orDefault(o.BorderColor, DefaultBorderColor),
		BorderLine:    number(o.BorderLine, DefaultBorderLine),
		Opacity:       number(o.Opacity, DefaultOpacity),
		Shadow:        parseShadow(o.Shadow),
		Attrs:         o.SVG,
	}

	suit, rank := card.ParseName(o.Suit), int(card.Ace)
	if o.Rank != "" {
		rank = card.ParseName(o.Rank)
	}

	if d, ok := DecodeCID(o.CID); ok {
		suit, rank = d.Suit, d.Rank
		if d.FaceDown {
			s.BackColor = faceDownBackColor
			s.NoRank = true
			s.Opacity = faceDownOpacity
			s.CardColor = faceDownCardColor
			s.Letters = faceDownLetters
		}
		if d.Blank {
			suit = 0
			s.BackColor = s.CardColor
			s.BackText = ""
		}
	}

	// lite colors follow the suit as given; an out-of-range suit gets none
	if mode == artwork.ModeLite {
		s.CourtColors = liteCourtColors(s.CourtColors, suit)
	}

	s.Card = card.Card{
		Suit: card.Suit(clamp(suit, 0, 3)),
		Rank: card.Rank(clamp(rank, 0, 13)),
	}
	return s
}

// liteCourtColors swaps layer colors that would otherwise make court cards
// of some suits hard to read without bespoke court art. colors is copied.
func liteCourtColors(colors []string, suit int) []string {
	out := make([]string, max(len(colors), artwork.CourtLayers+1))
	copy(out, colors)
	switch card.Suit(suit) {
	case card.Spades, card.Clubs:
		out[artwork.LayerBlue] = "#0303ff"
	case card.Diamonds:
		out[artwork.LayerRed] = "#dc143c"
	}
	return out
}

func parseShadow(v string) *Shadow {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		v = DefaultShadow
	case "none", "0", "false", "off":
		return nil
	}
	parts := strings.Split(v, ",")
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	return &Shadow{DX: parts[0], DY: parts[1], Blur: parts[2]}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// AltText describes the card o resolves to, e.g. "ace of spades".
func AltText(o Options) string {
	return Normalize(o, artwork.ModeLite).Card.Name()
}
