package artwork

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	a := Default()
	if !a.Lite() {
		t.Error("default artwork should be lite")
	}
	for s, path := range a.Suits {
		if path == "" {
			t.Errorf("suit %d has no path", s)
		}
	}
	for r := 1; r <= 13; r++ {
		if a.Rank(r) == "" {
			t.Errorf("rank %d has no path", r)
		}
	}
	for r := 1; r <= 10; r++ {
		if len(a.Pip(r)) != PipSlots {
			t.Errorf("pip mask for rank %d has %d slots, want %d", r, len(a.Pip(r)), PipSlots)
		}
	}

	// Default hands out copies.
	a.Suits[0] = "changed"
	if Default().Suits[0] == "changed" {
		t.Error("Default() shares state between calls")
	}
}

func TestAccessorsOutOfRange(t *testing.T) {
	a := Default()
	if a.Pip(0) != "" || a.Pip(11) != "" {
		t.Error("Pip() out of range should be empty")
	}
	if a.Suit(4) != "" || a.Rank(-1) != "" {
		t.Error("Suit()/Rank() out of range should be empty")
	}
	if a.Court(3, 0, 0) != "" || a.Court(0, 5, 0) != "" || a.Court(0, 0, 4) != "" {
		t.Error("Court() out of range should be empty")
	}
}

func writeArtwork(t *testing.T, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "fancy")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeArtwork(t, `
[artwork]
name = "Fancy"
author = "someone"
mode = "full"

[suits]
hearts = "M0 0L1 1Z"

[ranks]
king = "M0 0L10 10"

[pips]
three = "0H000000010"

[courts.king]
gold = ["M1 1", "M2 2"]
detail = ["", "", "", "M4 4"]
`)

	a, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if a.Name != "Fancy" || a.Author != "someone" {
		t.Errorf("Name/Author = %q/%q", a.Name, a.Author)
	}
	if a.Mode != ModeFull {
		t.Errorf("Mode = %v, want full", a.Mode)
	}
	if a.Suit(1) != "M0 0L1 1Z" {
		t.Errorf("hearts path = %q", a.Suit(1))
	}
	if a.Suit(0) != Default().Suit(0) {
		t.Error("spades path should inherit from the default set")
	}
	if a.Rank(13) != "M0 0L10 10" {
		t.Errorf("king path = %q", a.Rank(13))
	}
	if a.Pip(3) != "0H000000010" {
		t.Errorf("pip mask for three = %q", a.Pip(3))
	}
	if a.Court(2, LayerGold, 1) != "M2 2" || a.Court(2, LayerDetail, 3) != "M4 4" {
		t.Error("court layers not loaded")
	}
	if a.Court(0, LayerGold, 0) != "" {
		t.Error("unlisted court styles should stay empty")
	}
}

func TestLoadFileAndDefaults(t *testing.T) {
	dir := writeArtwork(t, "[artwork]\n")

	a, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if a.Name != "fancy" {
		t.Errorf("Name = %q, want directory name", a.Name)
	}
	if !a.Lite() {
		t.Error("mode should default to lite")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing path error = %v, want ErrNotFound", err)
	}
	if _, err := Load(t.TempDir()); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty directory error = %v, want ErrNotFound", err)
	}

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad toml", "[artwork\n", "error parsing"},
		{"bad mode", "[artwork]\nmode = \"huge\"\n", "unknown artwork mode"},
		{"bad suit", "[suits]\nstars = \"M0 0\"\n", "unknown suit"},
		{"bad rank", "[ranks]\njoker = \"M0 0\"\n", "unknown rank"},
		{"bad pip rank", "[pips]\njack = \"00000000000\"\n", "unknown pip rank"},
		{"bad court", "[courts.knight]\ngold = [\"M0 0\"]\n", "unknown court style"},
		{"too many variants", "[courts.jack]\nred = [\"\", \"\", \"\", \"\", \"\"]\n", "at most 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeArtwork(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeLite, "lite": ModeLite, "FULL": ModeFull} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}
