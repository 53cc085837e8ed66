// Package termart turns card bitmaps into ANSI half-block art and lays it
// out next to text in the terminal.
package termart

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"golang.org/x/term"
)

// FromImage converts img to ANSI art of width by height character cells.
// Each cell is an upper half block: the top pixel pair is the foreground,
// the bottom pair the background. Transparent pixels take the color bg.
// Without trueColor the xterm 256-color palette is used.
func FromImage(img image.Image, width, height int, bg color.Color, trueColor bool) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)
	base, _ := colorful.MakeColor(bg)

	var b strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			top := averageColor(at(resized, x, y, base), at(resized, x+1, y, base))
			bottom := averageColor(at(resized, x, y+1, base), at(resized, x+1, y+1, base))
			b.WriteString(cell('▀', top, bottom, trueColor))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// at blends the pixel at (x, y) over base.
func at(img image.Image, x, y int, base colorful.Color) colorful.Color {
	if !(image.Point{x, y}.In(img.Bounds())) {
		return base
	}
	r, g, b, a := img.At(x, y).RGBA()
	if a == 0 {
		return base
	}
	// colors are premultiplied
	alpha := float64(a) / 0xffff
	return colorful.Color{
		R: float64(r)/0xffff + base.R*(1-alpha),
		G: float64(g)/0xffff + base.G*(1-alpha),
		B: float64(b)/0xffff + base.B*(1-alpha),
	}.Clamped()
}

func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(colors))
	return colorful.Color{R: r / n, G: g / n, B: b / n}
}

func cell(char rune, fg, bg colorful.Color, trueColor bool) string {
	if trueColor {
		r1, g1, b1 := fg.RGB255()
		r2, g2, b2 := bg.RGB255()
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m", r1, g1, b1, r2, g2, b2, char)
	}
	return fmt.Sprintf("\x1b[38;5;%dm\x1b[48;5;%dm%c\x1b[0m", xterm256(fg), xterm256(bg), char)
}

// xterm256 maps c onto the 6x6x6 color cube of the 256-color palette.
func xterm256(c colorful.Color) int {
	r, g, b := c.RGB255()
	q := func(v uint8) int { return (int(v)*5 + 127) / 255 }
	return 16 + 36*q(r) + 6*q(g) + q(b)
}

// Strip removes ANSI escape sequences from s.
func Strip(s string) string {
	var b strings.Builder
	inEscape := false
	for _, c := range s {
		switch {
		case inEscape:
			if c == 'm' {
				inEscape = false
			}
		case c == '\x1b':
			inEscape = true
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// VisibleWidth is the number of runes s shows on screen.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(Strip(s))
}

// Wrap breaks text into lines of at most width bytes, splitting on spaces.
// Widths below 10 fall back to 40.
func Wrap(text string, width int) []string {
	if width < 10 {
		width = 40
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) <= width {
			line += " " + w
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// TerminalWidth returns the width of the terminal on f, or 80.
func TerminalWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SideBySide writes art with info to its right, separated by gap spaces,
// with a two space left margin.
func SideBySide(w io.Writer, art string, info []string, gap int) {
	artLines := strings.Split(art, "\n")
	artWidth := 0
	for _, l := range artLines {
		artWidth = max(artWidth, VisibleWidth(l))
	}
	col := artWidth + gap

	fmt.Fprintln(w)
	for i := 0; i < max(len(artLines), len(info)); i++ {
		fmt.Fprint(w, "  ")
		if i < len(artLines) {
			fmt.Fprint(w, artLines[i], strings.Repeat(" ", col-VisibleWidth(artLines[i])))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", col))
		}
		if i < len(info) {
			fmt.Fprint(w, info[i])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// Cache stores rendered art under dir, keyed by the md5 of key.
type Cache struct {
	Dir string
}

// Get returns the cached art for key, calling build and storing its result
// on a miss. An empty Dir disables caching.
func (c Cache) Get(key string, build func() (string, error)) (string, error) {
	if c.Dir == "" {
		return build()
	}
	path := filepath.Join(c.Dir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))
	if data, err := os.ReadFile(path); err == nil {
		return string(data), nil
	}

	art, err := build()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(art), 0o644); err != nil {
		return "", fmt.Errorf("failed to write ANSI art to cache: %w", err)
	}
	return art, nil
}
