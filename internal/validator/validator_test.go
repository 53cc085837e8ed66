package validator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/cardsmith/internal/artwork"
)

func validate(t *testing.T, content string) Results {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, artwork.FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := NewValidator(dir).Validate()
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func contains(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErrors  []string
		wantWarns   []string
		wantNoError bool
	}{
		{
			name:        "minimal file",
			content:     "[artwork]\nname = \"plain\"\n",
			wantNoError: true,
		},
		{
			name:        "missing name",
			content:     "[artwork]\nmode = \"lite\"\n",
			wantWarns:   []string{"artwork.name is not set"},
			wantNoError: true,
		},
		{
			name:       "bad mode and schema",
			content:    "[artwork]\nname = \"x\"\nmode = \"deluxe\"\nschema_version = \"9\"\n",
			wantErrors: []string{"artwork.mode", "unsupported schema_version"},
		},
		{
			name:       "short mask",
			content:    "[artwork]\nname = \"x\"\n[pips]\nthree = \"0100\"\n",
			wantErrors: []string{"pips.three has 4 slots, want 11"},
		},
		{
			name:       "bad mask character",
			content:    "[artwork]\nname = \"x\"\n[pips]\nfive = \"1010000001X\"\n",
			wantErrors: []string{"pips.five: invalid character 'X' at slot 10"},
		},
		{
			name:        "suit letters in mask",
			content:     "[artwork]\nname = \"x\"\n[pips]\nfive = \"S0H00000D1C\"\n",
			wantNoError: true,
		},
		{
			name:       "court pip rank",
			content:    "[artwork]\nname = \"x\"\n[pips]\njack = \"00000000000\"\n",
			wantErrors: []string{"unknown pip rank \"jack\""},
		},
		{
			name:       "empty suit and rank",
			content:    "[artwork]\nname = \"x\"\n[suits]\nhearts = \"\"\n[ranks]\nqueen = \"\"\n",
			wantErrors: []string{"suits.hearts is empty", "ranks.queen is empty"},
		},
		{
			name:        "rank zero path",
			content:     "[artwork]\nname = \"x\"\n[ranks]\nback = \"M0 0L1 1\"\n",
			wantWarns:   []string{"ranks.back is never drawn"},
			wantNoError: true,
		},
		{
			name:       "unknown table keys",
			content:    "[artwork]\nname = \"x\"\n[suits]\nstars = \"M0 0\"\n[ranks]\nzero = \"M0 0\"\n",
			wantErrors: []string{"unknown suit \"stars\"", "unknown rank \"zero\""},
		},
		{
			name:       "bad path data",
			content:    "[artwork]\nname = \"x\"\n[suits]\nclubs = \"L0 0\"\n[ranks]\nace = \"M0 0 L1 1 #\"\n",
			wantErrors: []string{"suits.clubs: path data must start", "ranks.ace: unexpected character '#'"},
		},
		{
			name:        "courts in lite mode",
			content:     "[artwork]\nname = \"x\"\n[courts.king]\ngold = [\"M0 0\"]\n",
			wantWarns:   []string{"ignored in lite mode"},
			wantNoError: true,
		},
		{
			name:       "full mode without courts",
			content:    "[artwork]\nname = \"x\"\nmode = \"full\"\n",
			wantErrors: []string{"courts.jack.gold[0] is empty", "courts.king.detail[3] is empty"},
		},
		{
			name:       "too many variants",
			content:    "[artwork]\nname = \"x\"\nmode = \"full\"\n[courts.queen]\nred = [\"M0 0\", \"M0 0\", \"M0 0\", \"M0 0\", \"M0 0\"]\n",
			wantErrors: []string{"courts.queen.red has 5 variants"},
		},
		{
			name:        "unknown key",
			content:     "[artwork]\nname = \"x\"\ncolour = \"red\"\n",
			wantWarns:   []string{"unknown key artwork.colour"},
			wantNoError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validate(t, tt.content)
			if tt.wantNoError && !res.OK() {
				t.Errorf("unexpected errors: %q", res.Errors)
			}
			for _, e := range tt.wantErrors {
				if !contains(res.Errors, e) {
					t.Errorf("errors %q lack %q", res.Errors, e)
				}
			}
			for _, w := range tt.wantWarns {
				if !contains(res.Warnings, w) {
					t.Errorf("warnings %q lack %q", res.Warnings, w)
				}
			}
		})
	}
}

func TestValidateFullArtwork(t *testing.T) {
	a := artwork.Default()
	a.Name = "full"
	a.Mode = artwork.ModeFull
	for s := range a.Courts {
		for l := range a.Courts[s] {
			for v := range a.Courts[s][l] {
				a.Courts[s][l][v] = "M0 0L1300 2000"
			}
		}
	}
	dir := filepath.Join(t.TempDir(), "full")
	path, err := artwork.Create(dir, a)
	if err != nil {
		t.Fatal(err)
	}

	// both the directory and the file itself are accepted
	for _, p := range []string{dir, path} {
		res, err := NewValidator(p).Validate()
		if err != nil {
			t.Fatal(err)
		}
		if !res.OK() || len(res.Warnings) != 0 {
			t.Errorf("Validate(%s) = %+v, want clean", p, res)
		}
	}
}

func TestValidateMissingAndBroken(t *testing.T) {
	if _, err := NewValidator(filepath.Join(t.TempDir(), "nope")).Validate(); !errors.Is(err, artwork.ErrNotFound) {
		t.Errorf("missing file error = %v, want ErrNotFound", err)
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, artwork.FileName), []byte("[artwork\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewValidator(dir).Validate(); err == nil || !strings.Contains(err.Error(), "error parsing") {
		t.Errorf("broken file error = %v", err)
	}
}
