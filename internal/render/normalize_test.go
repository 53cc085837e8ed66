package render

import (
	"strings"
	"testing"

	"github.com/arcanaland/cardsmith/internal/artwork"
	"github.com/arcanaland/cardsmith/internal/card"
)

func TestDecodeCID(t *testing.T) {
	tests := []struct {
		cid  string
		want Decoded
	}{
		{"AS", Decoded{Suit: 0, Rank: 1}},
		{"as", Decoded{Suit: 0, Rank: 1}},
		{"QH", Decoded{Suit: 1, Rank: 12}},
		{"TD", Decoded{Suit: 2, Rank: 10}},
		{"10C", Decoded{Suit: 3, Rank: 10}},
		{"7H", Decoded{Suit: 1, Rank: 7}},
		{"KC", Decoded{Suit: 3, Rank: 13}},
		{"ACE-OF-SPADES", Decoded{Suit: 0, Rank: 1}},
		{"queen-of-hearts", Decoded{Suit: 1, Rank: 12}},
		{"10-OF-SPADES", Decoded{Suit: 0, Rank: 10}},
		{"TEN-OF-DIAMONDS", Decoded{Suit: 2, Rank: 10}},
		{"TWO-OF-CLUBS", Decoded{Suit: 3, Rank: 2}},
		{"SIX-OF-HEARTS", Decoded{Suit: 1, Rank: 6}},
		{"J-OF-D", Decoded{Suit: 2, Rank: 11}},
		{"FH", Decoded{Suit: 1, Rank: 1, FaceDown: true}},
		{"FF", Decoded{Suit: 0, Rank: 0, FaceDown: true, Blank: true}},
		{"ZZ", Decoded{Suit: 0, Rank: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.cid, func(t *testing.T) {
			got, ok := DecodeCID(tt.cid)
			if !ok {
				t.Fatalf("DecodeCID(%q) ok = false", tt.cid)
			}
			if got != tt.want {
				t.Errorf("DecodeCID(%q) = %+v, want %+v", tt.cid, got, tt.want)
			}
		})
	}

	if _, ok := DecodeCID("  "); ok {
		t.Error("DecodeCID of blank identifier should not be ok")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	s := Normalize(Options{}, artwork.ModeFull)

	if s.Card != (card.Card{Suit: card.Spades, Rank: card.Ace}) {
		t.Errorf("Card = %+v, want ace of spades", s.Card)
	}
	if s.Opacity != DefaultOpacity {
		t.Errorf("Opacity = %v, want %v", s.Opacity, DefaultOpacity)
	}
	if s.BorderRadius != DefaultBorderRadius {
		t.Errorf("BorderRadius = %v, want %v", s.BorderRadius, DefaultBorderRadius)
	}
	if s.CardColor != DefaultCardColor || s.BackColor != DefaultBackColor {
		t.Errorf("colors = %q/%q, want defaults", s.CardColor, s.BackColor)
	}
	if s.Shadow == nil || s.Shadow.DX != "5" || s.Shadow.Blur != "5" {
		t.Errorf("Shadow = %+v, want 5,5,5", s.Shadow)
	}
	if len(s.CourtColors) != 6 || s.CourtColors[5] != "4" {
		t.Errorf("CourtColors = %v", s.CourtColors)
	}
}

func TestNormalizeSuitAndRank(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want card.Card
	}{
		{"numbers", Options{Suit: "2", Rank: "7"}, card.Card{Suit: 2, Rank: 7}},
		{"names", Options{Suit: "Hearts", Rank: "queen"}, card.Card{Suit: 1, Rank: 12}},
		{"letters", Options{Suit: "c", Rank: "K"}, card.Card{Suit: 3, Rank: 13}},
		{"back", Options{Rank: "0"}, card.Card{Suit: 0, Rank: 0}},
		{"clamped", Options{Suit: "9", Rank: "99"}, card.Card{Suit: 3, Rank: 13}},
		{"negative", Options{Suit: "-4", Rank: "-1"}, card.Card{Suit: 0, Rank: 0}},
		{"bogus", Options{Suit: "bogus", Rank: "nope"}, card.Card{Suit: 0, Rank: 0}},
		{"huge", Options{Suit: "1e30", Rank: "99999999999999999999"}, card.Card{Suit: 3, Rank: 13}},
		{"infinite", Options{Suit: "Infinity", Rank: "1e19"}, card.Card{Suit: 3, Rank: 13}},
		{"huge negative", Options{Suit: "-1e30", Rank: "-Infinity"}, card.Card{Suit: 0, Rank: 0}},
		{"cid wins", Options{CID: "9D", Suit: "clubs", Rank: "2"}, card.Card{Suit: 2, Rank: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.opts, artwork.ModeFull).Card
			if got != tt.want {
				t.Errorf("Normalize(%+v).Card = %+v, want %+v", tt.opts, got, tt.want)
			}
		})
	}
}

func TestNormalizeCIDMatchesFields(t *testing.T) {
	byCID := Normalize(Options{CID: "AS"}, artwork.ModeLite)
	byFields := Normalize(Options{Suit: "0", Rank: "1"}, artwork.ModeLite)
	if byCID.Card != byFields.Card {
		t.Errorf("cid AS = %+v, fields = %+v", byCID.Card, byFields.Card)
	}
}

func TestNormalizeFaceDown(t *testing.T) {
	s := Normalize(Options{CID: "FH", BackText: "hello"}, artwork.ModeFull)
	if s.Card != (card.Card{Suit: card.Hearts, Rank: card.Ace}) {
		t.Errorf("Card = %+v, want ace of hearts", s.Card)
	}
	if !s.NoRank || s.Opacity != 0.3 || s.CardColor != "transparent" || s.BackColor != "green" {
		t.Errorf("face-down overrides not applied: %+v", s)
	}
	if s.Letters != "    " {
		t.Errorf("Letters = %q, want blank placeholder", s.Letters)
	}

	blank := Normalize(Options{CID: "FF", BackText: "hello"}, artwork.ModeFull)
	if blank.Card != (card.Card{}) {
		t.Errorf("FF Card = %+v, want back of spades", blank.Card)
	}
	if blank.BackColor != blank.CardColor || blank.BackText != "" {
		t.Errorf("FF back = %q/%q text %q, want matching colors and no text",
			blank.BackColor, blank.CardColor, blank.BackText)
	}
}

func TestNormalizeLiteCourtColors(t *testing.T) {
	tests := []struct {
		suit  string
		layer int
		want  string
	}{
		{"spades", artwork.LayerBlue, "#0303ff"},
		{"clubs", artwork.LayerBlue, "#0303ff"},
		{"diamonds", artwork.LayerRed, "#dc143c"},
		{"hearts", artwork.LayerRed, "#f00"},
	}

	for _, tt := range tests {
		t.Run(tt.suit, func(t *testing.T) {
			lite := Normalize(Options{Suit: tt.suit, Rank: "king"}, artwork.ModeLite)
			if got := lite.CourtColors[tt.layer]; got != tt.want {
				t.Errorf("lite CourtColors[%d] = %q, want %q", tt.layer, got, tt.want)
			}
			full := Normalize(Options{Suit: tt.suit, Rank: "king"}, artwork.ModeFull)
			if got := full.CourtColors[tt.layer]; got == "#0303ff" || got == "#dc143c" {
				t.Errorf("full mode CourtColors[%d] = %q, want untouched", tt.layer, got)
			}
		})
	}
}

func TestNormalizeLiteColorsBeforeClamp(t *testing.T) {
	clubs := Normalize(Options{Suit: "3", Rank: "king"}, artwork.ModeLite)
	if got := clubs.CourtColors[artwork.LayerBlue]; got != "#0303ff" {
		t.Fatalf("clubs CourtColors[blue] = %q, want #0303ff", got)
	}

	// suit 9 draws as clubs but keeps the configured layer colors
	over := Normalize(Options{Suit: "9", Rank: "king"}, artwork.ModeLite)
	if over.Card.Suit != card.Clubs {
		t.Errorf("suit 9 resolved to %v, want clubs", over.Card.Suit)
	}
	if got := over.CourtColors[artwork.LayerBlue]; got != "#44f" {
		t.Errorf("suit 9 CourtColors[blue] = %q, want #44f", got)
	}
	if n := len(over.CourtColors); n < artwork.CourtLayers+1 {
		t.Errorf("len(CourtColors) = %d, want at least %d", n, artwork.CourtLayers+1)
	}
}

func TestRenderHugeRank(t *testing.T) {
	svg := Render(Options{Rank: "1e30"})
	if strings.Contains(svg, "<pattern") {
		t.Error("rank 1e30 rendered a card back, want a king")
	}
}

func TestNormalizeShadow(t *testing.T) {
	if s := Normalize(Options{Shadow: "none"}, artwork.ModeLite); s.Shadow != nil {
		t.Errorf("Shadow = %+v, want disabled", s.Shadow)
	}
	s := Normalize(Options{Shadow: "1,2"}, artwork.ModeLite)
	if s.Shadow == nil || *s.Shadow != (Shadow{DX: "1", DY: "2", Blur: "0"}) {
		t.Errorf("Shadow = %+v, want 1,2,0", s.Shadow)
	}
}

func TestAltText(t *testing.T) {
	tests := []struct {
		opts Options
		want string
	}{
		{Options{}, "ace of spades"},
		{Options{CID: "QH"}, "queen of hearts"},
		{Options{Suit: "3", Rank: "10"}, "ten of clubs"},
		{Options{Rank: "0"}, "card back"},
	}
	for _, tt := range tests {
		if got := AltText(tt.opts); got != tt.want {
			t.Errorf("AltText(%+v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}
