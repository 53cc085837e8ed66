package artwork

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SchemaVersion is written into new artwork files.
const SchemaVersion = "1.0"

// Config converts a into its file form. Empty entries are left out.
func (a *Artwork) Config() Config {
	c := Config{
		Meta: Section{
			Name:          a.Name,
			Author:        a.Author,
			Mode:          a.Mode.String(),
			SchemaVersion: SchemaVersion,
		},
		Suits: map[string]string{},
		Ranks: map[string]string{},
		Pips:  map[string]string{},
	}
	for i, p := range a.Suits {
		if p != "" {
			c.Suits[suitKeys[i]] = p
		}
	}
	for i, p := range a.Ranks {
		if p != "" {
			c.Ranks[rankKeys[i]] = p
		}
	}
	for i, m := range a.Pips {
		if m != "" {
			c.Pips[rankKeys[i]] = m
		}
	}

	for style, layers := range a.Courts {
		var sec CourtSection
		empty := true
		lists := [CourtLayers]*[]string{&sec.Gold, &sec.Red, &sec.Blue, &sec.Black, &sec.Detail}
		for layer, variants := range layers {
			n := len(variants)
			for n > 0 && variants[n-1] == "" {
				n--
			}
			if n > 0 {
				*lists[layer] = append([]string(nil), variants[:n]...)
				empty = false
			}
		}
		if !empty {
			if c.Courts == nil {
				c.Courts = map[string]CourtSection{}
			}
			c.Courts[courtKeys[style]] = sec
		}
	}
	return c
}

// Create writes a to dir/artwork.toml, creating dir. It refuses to
// overwrite an existing file.
func Create(dir string, a *Artwork) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating artwork directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return "", fmt.Errorf("%s already exists", path)
	}
	if err != nil {
		return "", fmt.Errorf("error creating %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(a.Config()); err != nil {
		return "", fmt.Errorf("error encoding %s: %w", path, err)
	}
	return path, nil
}
