package raster

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors covers the CSS names that show up in card options.
var namedColors = map[string]color.NRGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"silver":  {192, 192, 192, 255},
	"crimson": {220, 20, 60, 255},
	"gold":    {255, 215, 0, 255},
	"orange":  {255, 165, 0, 255},
	"yellow":  {255, 255, 0, 255},
	"purple":  {128, 0, 128, 255},
	"navy":    {0, 0, 128, 255},
	"maroon":  {128, 0, 0, 255},
	"teal":    {0, 128, 128, 255},
}

// parseColor resolves a hex or named color. ok is false for "none",
// "transparent", and anything it cannot read; those paint nothing.
func parseColor(s string) (c color.NRGBA, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" || s == "transparent" {
		return c, false
	}
	if named, found := namedColors[s]; found {
		return named, true
	}
	if !strings.HasPrefix(s, "#") {
		return c, false
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return c, false
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{r, g, b, 255}, true
}

// withOpacity scales the alpha of c.
func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity < 1 {
		c.A = uint8(float64(c.A)*opacity + 0.5)
	}
	return c
}
