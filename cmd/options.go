package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsmith/internal/artwork"
	"github.com/arcanaland/cardsmith/internal/config"
	"github.com/arcanaland/cardsmith/internal/render"
)

var attributeHelp = map[string]string{
	"cid":           "card identifier, e.g. AS, 10H, QUEEN-OF-HEARTS, BS (back), FF (blank)",
	"suit":          "suit name, letter or index 0-3",
	"rank":          "rank name, letter or number 0-13 (0 is the back)",
	"letters":       "custom rank text: ace[,jack,queen,king]",
	"suits":         "suit variant per suit for court art, e.g. 0123",
	"courts":        "court style per court rank, e.g. 012",
	"suitcolor":     "suit color, or one per suit separated by commas",
	"rankcolor":     "rank color, or one per suit separated by commas",
	"courtcolors":   "gold,red,blue,black,detail color,detail width",
	"norank":        "hide the corner indices",
	"showpips":      "label the pip slots",
	"pipy":          "vertical pip offset",
	"backcolor":     "back pattern color",
	"cardcolor":     "card face color",
	"backtext":      "text printed on the back",
	"backtextcolor": "color of the back text",
	"borderradius":  "corner radius",
	"bordercolor":   "border color",
	"borderline":    "border width",
	"opacity":       "glyph opacity",
	"shadow":        "suit shadow dx,dy,blur, or none",
	"svg":           "extra attributes for the root svg element",
}

var booleanAttributes = map[string]bool{"norank": true, "showpips": true}

// addRenderFlags registers one string flag per render attribute. Boolean
// attributes may be given bare.
func addRenderFlags(cmd *cobra.Command) {
	for _, name := range render.AttributeNames {
		cmd.Flags().String(name, "", attributeHelp[name])
		if booleanAttributes[name] {
			cmd.Flags().Lookup(name).NoOptDefVal = name
		}
	}
}

// renderOptions collects the render flags that were set, layered over the
// config defaults.
func renderOptions(cmd *cobra.Command) (render.Options, error) {
	attrs := make(map[string]string)
	for _, name := range render.AttributeNames {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			attrs[name] = f.Value.String()
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return render.Options{}, err
	}
	logger := loggerFromContext(cmd.Context())
	if unknown := cfg.UnknownDefaults(); len(unknown) > 0 {
		logger.Warn("ignoring unknown keys in [defaults]", "keys", unknown)
	}
	return render.FromAttributes(attrs).Merge(cfg.RenderDefaults()), nil
}

// loadArtwork loads the set named by --artwork, or the configured default.
func loadArtwork(cmd *cobra.Command) (*artwork.Artwork, error) {
	name, _ := cmd.Flags().GetString("artwork")
	a, err := config.LoadArtwork(name)
	if err != nil {
		return nil, fmt.Errorf("error loading artwork: %w", err)
	}
	loggerFromContext(cmd.Context()).Debug("artwork loaded", "name", a.Name, "mode", a.Mode)
	return a, nil
}
