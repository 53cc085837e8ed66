package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsmith/internal/artwork"
	"github.com/arcanaland/cardsmith/internal/raster"
	"github.com/arcanaland/cardsmith/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [cid]",
	Short: "Render one card",
	Long: `Render draws a single card and writes it to standard output or a file.

The card is chosen by its identifier or by --suit and --rank. Every render
attribute is available as a flag; values from the [defaults] table of the
config file apply when a flag is not given.

Examples:
  cardsmith render AS > ace.svg
  cardsmith render QH --format png --width 960 -o queen.png
  cardsmith render --suit hearts --rank 7 --showpips
  cardsmith render BS --backcolor '#236' --format uri`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := renderOptions(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			o.CID = args[0]
		}

		art, err := loadArtwork(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		width, _ := cmd.Flags().GetInt("width")
		var buf bytes.Buffer
		if err := writeCard(&buf, render.Renderer{Art: art}, o, format, width); err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" || output == "-" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("error writing %s: %w", output, err)
		}
		loggerFromContext(cmd.Context()).Info("card written", "card", render.AltText(o), "file", output)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("format", "f", "svg", "output format: svg, uri, png or webp")
	renderCmd.Flags().Int("width", raster.DefaultWidth, "bitmap width in pixels")
	renderCmd.Flags().StringP("output", "o", "", "output file (default standard output)")
	addRenderFlags(renderCmd)
}

// writeCard renders o in format to w.
func writeCard(w io.Writer, r render.Renderer, o render.Options, format string, width int) error {
	switch strings.ToLower(format) {
	case "svg":
		_, err := io.WriteString(w, r.Render(o))
		return err
	case "uri":
		_, err := io.WriteString(w, r.DataURI(o)+"\n")
		return err
	}
	if !raster.IsFormat(format) {
		return fmt.Errorf("unknown format %q (want svg, uri, %s)", format, strings.Join(raster.Formats, ", "))
	}
	if err := checkWidth(width, raster.MaxWidth); err != nil {
		return err
	}
	l := r.Layout(o)
	return raster.Encode(w, raster.Rasterize(&l, width), format)
}

// checkWidth rejects bitmap widths outside 1..limit.
func checkWidth(width, limit int) error {
	if width < 1 || width > limit {
		return fmt.Errorf("invalid width %d: must be between 1 and %d", width, limit)
	}
	return nil
}

// artworkLabel names an artwork set in log lines.
func artworkLabel(a *artwork.Artwork) string {
	if a.Author == "" {
		return a.Name
	}
	return a.Name + " by " + a.Author
}
