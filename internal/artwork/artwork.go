// Package artwork holds the static tables the card renderer indexes into:
// suit and rank glyph paths, pip layout masks and court card layers.
//
// An Artwork is read-only once built. The renderer never mutates it, so a
// single value can be shared by concurrent renders.
package artwork

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the artwork file inside an artwork directory.
const FileName = "artwork.toml"

// ErrNotFound is returned by Load when no artwork file exists at the path.
var ErrNotFound = errors.New("artwork not found")

// Mode declares whether an artwork set carries bespoke court art.
type Mode int

const (
	// ModeLite has no court artwork. The renderer substitutes layer colors
	// so court cards stay readable.
	ModeLite Mode = iota
	// ModeFull ships court layer paths for every style and variant.
	ModeFull
)

func (m Mode) String() string {
	if m == ModeFull {
		return "full"
	}
	return "lite"
}

// ParseMode parses "lite" or "full". The empty string is lite.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lite":
		return ModeLite, nil
	case "full":
		return ModeFull, nil
	}
	return ModeLite, fmt.Errorf("unknown artwork mode %q (want lite or full)", s)
}

// Court styles, layers and suit variants.
const (
	CourtStyles   = 3
	CourtLayers   = 5
	CourtVariants = 4
	PipSlots      = 11
)

// Layer indices into a court style's layer table.
const (
	LayerGold = iota
	LayerRed
	LayerBlue
	LayerBlack
	LayerDetail
)

// LayerNames are the short names used for court layer symbols and in
// artwork files.
var LayerNames = [CourtLayers]string{"gold", "red", "blue", "black", "detail"}

// Artwork is a complete set of card drawing tables.
type Artwork struct {
	Name   string
	Author string
	Mode   Mode

	// Suits are glyph paths in a -600..600 box, indexed by suit.
	Suits [4]string
	// Ranks are stroked glyph paths in a -500..500 box, indexed by rank.
	Ranks [14]string
	// Pips are 11-slot layout masks indexed by rank; index 0 is unused.
	// '0' is an empty slot, '1' a pip of the card's suit and S/H/D/C a
	// pip of that suit.
	Pips [11]string
	// Courts[style][layer][variant] are layer paths in a 1300x2000 box.
	Courts [CourtStyles][CourtLayers][CourtVariants]string
}

// Lite reports whether the artwork lacks court art.
func (a *Artwork) Lite() bool {
	return a.Mode == ModeLite
}

// Pip returns the layout mask for rank r, or "" when r has none.
func (a *Artwork) Pip(r int) string {
	if r < 1 || r >= len(a.Pips) {
		return ""
	}
	return a.Pips[r]
}

// Rank returns the rank glyph path for r, or "" when out of range.
func (a *Artwork) Rank(r int) string {
	if r < 0 || r >= len(a.Ranks) {
		return ""
	}
	return a.Ranks[r]
}

// Suit returns the suit glyph path for s, or "" when out of range.
func (a *Artwork) Suit(s int) string {
	if s < 0 || s >= len(a.Suits) {
		return ""
	}
	return a.Suits[s]
}

// Court returns the path of one court layer. Out of range indices yield "".
func (a *Artwork) Court(style, layer, variant int) string {
	if style < 0 || style >= CourtStyles || layer < 0 || layer >= CourtLayers ||
		variant < 0 || variant >= CourtVariants {
		return ""
	}
	return a.Courts[style][layer][variant]
}

// Load reads an artwork file. path may be the file itself or a directory
// containing artwork.toml. Tables the file leaves out inherit from Default.
func Load(path string) (*Artwork, error) {
	file, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(file, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", file, err)
	}

	a, err := cfg.Artwork()
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", file, err)
	}
	if a.Name == "" {
		a.Name = filepath.Base(filepath.Dir(file))
	}
	return a, nil
}

// resolvePath returns the artwork file for path.
func resolvePath(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return path, nil
	}

	file := filepath.Join(path, FileName)
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s not found in %s", ErrNotFound, FileName, path)
	}
	return file, nil
}

// Artwork builds an Artwork from the decoded file, filling gaps from Default.
func (c *Config) Artwork() (*Artwork, error) {
	a := Default()
	a.Name = c.Meta.Name
	a.Author = c.Meta.Author

	mode, err := ParseMode(c.Meta.Mode)
	if err != nil {
		return nil, err
	}
	a.Mode = mode

	for name, path := range c.Suits {
		s, ok := suitIndex(name)
		if !ok {
			return nil, fmt.Errorf("unknown suit %q in [suits]", name)
		}
		if path != "" {
			a.Suits[s] = path
		}
	}

	for name, path := range c.Ranks {
		r, ok := rankIndex(name)
		if !ok {
			return nil, fmt.Errorf("unknown rank %q in [ranks]", name)
		}
		if path != "" {
			a.Ranks[r] = path
		}
	}

	for name, mask := range c.Pips {
		r, ok := rankIndex(name)
		if !ok || r < 1 || r > 10 {
			return nil, fmt.Errorf("unknown pip rank %q in [pips]", name)
		}
		if mask != "" {
			a.Pips[r] = mask
		}
	}

	for name, layers := range c.Courts {
		style, ok := courtIndex(name)
		if !ok {
			return nil, fmt.Errorf("unknown court style %q in [courts]", name)
		}
		for layer, paths := range layers.list() {
			if len(paths) > CourtVariants {
				return nil, fmt.Errorf("courts.%s.%s has %d variants, want at most %d",
					name, LayerNames[layer], len(paths), CourtVariants)
			}
			for variant, path := range paths {
				a.Courts[style][layer][variant] = path
			}
		}
	}

	return a, nil
}

func suitIndex(name string) (int, bool) {
	for i, n := range suitKeys {
		if strings.EqualFold(name, n) {
			return i, true
		}
	}
	return 0, false
}

func rankIndex(name string) (int, bool) {
	for i, n := range rankKeys {
		if strings.EqualFold(name, n) {
			return i, true
		}
	}
	return 0, false
}

func courtIndex(name string) (int, bool) {
	for i, n := range courtKeys {
		if strings.EqualFold(name, n) {
			return i, true
		}
	}
	return 0, false
}

var (
	suitKeys  = []string{"spades", "hearts", "diamonds", "clubs"}
	courtKeys = []string{"jack", "queen", "king"}
)

var rankKeys = []string{
	"back", "ace", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "jack", "queen", "king",
}

// Artwork file structures
type Config struct {
	Meta   Section                 `toml:"artwork"`
	Suits  map[string]string       `toml:"suits"`
	Ranks  map[string]string       `toml:"ranks"`
	Pips   map[string]string       `toml:"pips"`
	Courts map[string]CourtSection `toml:"courts"`
}

type Section struct {
	Name          string `toml:"name"`
	Author        string `toml:"author"`
	Mode          string `toml:"mode"`
	SchemaVersion string `toml:"schema_version"`
	Description   string `toml:"description"`
}

// CourtSection lists one court style's layer paths, one entry per suit variant.
type CourtSection struct {
	Gold   []string `toml:"gold"`
	Red    []string `toml:"red"`
	Blue   []string `toml:"blue"`
	Black  []string `toml:"black"`
	Detail []string `toml:"detail"`
}

func (l CourtSection) list() [CourtLayers][]string {
	return [CourtLayers][]string{l.Gold, l.Red, l.Blue, l.Black, l.Detail}
}
