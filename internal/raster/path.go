package raster

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// compile parses SVG path data into a rasterx path. A malformed segment
// ends the path; the segments before it are kept.
func compile(d string) rasterx.Path {
	var pc oksvg.PathCursor
	_ = pc.CompileSVG(d)
	return pc.Path
}

func rotate(deg float64) rasterx.Matrix2D {
	return rasterx.Identity.Rotate(deg * math.Pi / 180)
}

// lineScale is the factor m applies to lengths, used for stroke widths.
func lineScale(m rasterx.Matrix2D) float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

// parseTransform understands the rotate(deg) and scale(sx,sy) forms the
// renderer emits. Anything else is the identity.
func parseTransform(s string) rasterx.Matrix2D {
	s = strings.TrimSpace(s)
	open, close := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || close < open {
		return rasterx.Identity
	}
	args := numbers(s[open+1 : close])
	switch s[:open] {
	case "rotate":
		if len(args) > 0 {
			return rotate(args[0])
		}
	case "scale":
		if len(args) == 1 {
			return rasterx.Identity.Scale(args[0], args[0])
		}
		if len(args) > 1 {
			return rasterx.Identity.Scale(args[0], args[1])
		}
	}
	return rasterx.Identity
}

func numbers(s string) []float64 {
	var out []float64
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}
