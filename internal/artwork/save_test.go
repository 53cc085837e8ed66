package artwork

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCreate(t *testing.T) {
	a := Default()
	a.Name = "mine"
	a.Mode = ModeFull
	a.Courts[2][LayerGold][1] = "M0 0L10 10"

	dir := filepath.Join(t.TempDir(), "mine")
	path, err := Create(dir, a)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if got.Name != "mine" || got.Mode != ModeFull {
		t.Errorf("Load() = name %q mode %v, want mine full", got.Name, got.Mode)
	}
	if got.Suits != a.Suits || got.Ranks != a.Ranks || got.Pips != a.Pips {
		t.Error("glyph tables changed on the way through the file")
	}
	if got.Courts != a.Courts {
		t.Errorf("courts changed: king gold = %q", got.Courts[2][LayerGold])
	}

	if _, err := Create(dir, a); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second Create error = %v, want already exists", err)
	}
}

func TestConfigOmitsEmpty(t *testing.T) {
	c := Default().Config()
	if _, ok := c.Ranks["back"]; ok {
		t.Error("empty rank 0 path written")
	}
	if len(c.Pips) != 10 {
		t.Errorf("len(Pips) = %d, want 10", len(c.Pips))
	}
	if c.Courts != nil {
		t.Errorf("Courts = %v, want nil for the built-in set", c.Courts)
	}
	if c.Meta.Mode != "lite" || c.Meta.SchemaVersion != SchemaVersion {
		t.Errorf("Meta = %+v", c.Meta)
	}
}
