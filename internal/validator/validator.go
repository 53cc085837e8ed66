package validator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardsmith/internal/artwork"
)

// Results collects the problems found in an artwork file. Only Errors make
// a file unusable.
type Results struct {
	Errors   []string
	Warnings []string
}

// OK reports whether no errors were found.
func (r Results) OK() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Path    string
	Results Results

	cfg artwork.Config
	md  toml.MetaData
}

func NewValidator(path string) *Validator {
	return &Validator{Path: path}
}

// Validate checks the artwork file at Path. The returned error is set only
// when the file cannot be found or parsed at all.
func (v *Validator) Validate() (Results, error) {
	if err := v.decode(); err != nil {
		return v.Results, err
	}

	v.validateHeader()
	v.validateSuits()
	v.validateRanks()
	v.validatePips()
	v.validateCourts()
	v.validateUndecoded()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) decode() error {
	file := v.Path
	if info, err := os.Stat(file); err == nil && info.IsDir() {
		file = filepath.Join(file, artwork.FileName)
	}
	md, err := toml.DecodeFile(file, &v.cfg)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s not found: %w", file, artwork.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	v.md = md
	return nil
}

func (v *Validator) validateHeader() {
	meta := v.cfg.Meta
	if meta.Name == "" {
		v.warnf("artwork.name is not set; the directory name will be used")
	}
	if meta.SchemaVersion != "" && meta.SchemaVersion != artwork.SchemaVersion {
		v.errorf("unsupported schema_version: %s (supported: %s)", meta.SchemaVersion, artwork.SchemaVersion)
	}
	if _, err := artwork.ParseMode(meta.Mode); err != nil {
		v.errorf("artwork.mode: %v", err)
	}
}

func (v *Validator) validateSuits() {
	for _, name := range sortedKeys(v.cfg.Suits) {
		path := v.cfg.Suits[name]
		if !isSuit(name) {
			v.errorf("unknown suit %q in [suits]", name)
			continue
		}
		if path == "" {
			v.errorf("suits.%s is empty", name)
			continue
		}
		v.checkPath("suits."+name, path)
	}
}

func (v *Validator) validateRanks() {
	for _, name := range sortedKeys(v.cfg.Ranks) {
		path := v.cfg.Ranks[name]
		r, ok := rankIndex(name)
		switch {
		case !ok:
			v.errorf("unknown rank %q in [ranks]", name)
		case r == 0:
			if path != "" {
				v.warnf("ranks.%s is never drawn", name)
			}
		case path == "":
			v.errorf("ranks.%s is empty", name)
		default:
			v.checkPath("ranks."+name, path)
		}
	}
}

func (v *Validator) validatePips() {
	for _, name := range sortedKeys(v.cfg.Pips) {
		mask := v.cfg.Pips[name]
		r, ok := rankIndex(name)
		if !ok || r < 1 || r > 10 {
			v.errorf("unknown pip rank %q in [pips]", name)
			continue
		}
		if n := len(mask); n != artwork.PipSlots {
			v.errorf("pips.%s has %d slots, want %d", name, n, artwork.PipSlots)
		}
		if i := strings.IndexFunc(mask, func(c rune) bool { return !strings.ContainsRune("01SHDC", c) }); i >= 0 {
			v.errorf("pips.%s: invalid character %q at slot %d (want 0, 1, S, H, D or C)", name, mask[i], i)
		}
	}
}

func (v *Validator) validateCourts() {
	mode, _ := artwork.ParseMode(v.cfg.Meta.Mode)

	for _, name := range sortedKeys(v.cfg.Courts) {
		if !isCourt(name) {
			v.errorf("unknown court style %q in [courts]", name)
		}
	}

	a, err := v.cfg.Artwork()
	if err != nil {
		// unknown keys were reported above; the rest is a shape problem
		if !strings.HasPrefix(err.Error(), "unknown") {
			v.errorf("%v", err)
		}
		return
	}

	if mode == artwork.ModeLite {
		if len(v.cfg.Courts) > 0 {
			v.warnf("court paths are ignored in lite mode; set artwork.mode = \"full\" to use them")
		}
		return
	}

	for style, court := range []string{"jack", "queen", "king"} {
		for layer, layerName := range artwork.LayerNames {
			for variant := 0; variant < artwork.CourtVariants; variant++ {
				path := a.Court(style, layer, variant)
				if path == "" {
					v.errorf("courts.%s.%s[%d] is empty (required in full mode)", court, layerName, variant)
					continue
				}
				v.checkPath(fmt.Sprintf("courts.%s.%s[%d]", court, layerName, variant), path)
			}
		}
	}
}

func (v *Validator) validateUndecoded() {
	for _, key := range v.md.Undecoded() {
		v.warnf("unknown key %s", key.String())
	}
}

// checkPath flags path data that cannot start a shape.
func (v *Validator) checkPath(key, path string) {
	p := strings.TrimSpace(path)
	if p == "" || (p[0] != 'M' && p[0] != 'm') {
		v.errorf("%s: path data must start with a moveto (M or m)", key)
		return
	}
	if i := strings.IndexFunc(p, func(c rune) bool { return !strings.ContainsRune(pathChars, c) }); i >= 0 {
		v.errorf("%s: unexpected character %q in path data", key, p[i])
	}
}

const pathChars = "MmLlHhVvCcSsQqTtAaZz0123456789.,-+eE \t\r\n"

var rankKeys = []string{
	"back", "ace", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "jack", "queen", "king",
}

func rankIndex(name string) (int, bool) {
	for i, n := range rankKeys {
		if strings.EqualFold(name, n) {
			return i, true
		}
	}
	return 0, false
}

func isSuit(name string) bool {
	for _, n := range []string{"spades", "hearts", "diamonds", "clubs"} {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}

func isCourt(name string) bool {
	for _, n := range []string{"jack", "queen", "king"} {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
