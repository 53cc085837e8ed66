package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/raster"
	"github.com/arcanaland/cardsmith/internal/render"
)

// sheetMaxWidth bounds the card width of a contact sheet, which is 13 cards wide.
const sheetMaxWidth = 512

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Render a whole deck",
	Long:  `Commands that render every card of the deck at once.`,
}

var deckExportCmd = &cobra.Command{
	Use:   "export DIR",
	Short: "Write all 52 cards and the back into a directory",
	Long: `Export writes one file per card, named {suit}-{rank}.{ext}
(spades-ace.svg, hearts-10.svg, clubs-king.svg), plus back.{ext}.

Examples:
  cardsmith deck export ./cards
  cardsmith deck export ./png --format png --width 240`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		format, _ := cmd.Flags().GetString("format")
		format = strings.ToLower(format)
		if format != "svg" && !raster.IsFormat(format) {
			return fmt.Errorf("unknown format %q (want svg, %s)", format, strings.Join(raster.Formats, ", "))
		}
		width, _ := cmd.Flags().GetInt("width")
		if format != "svg" {
			if err := checkWidth(width, raster.MaxWidth); err != nil {
				return err
			}
		}

		base, r, err := deckSetup(cmd)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating %s: %w", dir, err)
		}

		logger := loggerFromContext(cmd.Context())
		prog := newProgress(logger)
		cards := append(card.Deck(), card.Card{Suit: backSuit(base), Rank: card.Back})
		for _, c := range cards {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, c.FileName()+"."+format)
			var buf bytes.Buffer
			if err := writeCard(&buf, r, cardOptions(base, c), format, width); err != nil {
				return err
			}
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("error writing %s: %w", path, err)
			}
			logger.Debug("wrote card", "card", c.Name(), "file", path)
		}
		prog.done(fmt.Sprintf("Exported %d cards to %s", len(cards), dir))
		return nil
	},
}

var deckSheetCmd = &cobra.Command{
	Use:   "sheet FILE",
	Short: "Compose a contact sheet of the whole deck",
	Long: `Sheet draws the deck as a single image: one row per suit, ace to king,
and the card back on a fifth row. The format follows the file extension
(.png, .jpg, .gif, .bmp, .tif or .webp).

Examples:
  cardsmith deck sheet deck.png
  cardsmith deck sheet deck.webp --width 120 --background '#2a5'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		width, _ := cmd.Flags().GetInt("width")
		if err := checkWidth(width, sheetMaxWidth); err != nil {
			return err
		}
		gap, _ := cmd.Flags().GetInt("gap")
		if gap < 0 || gap > width {
			return fmt.Errorf("invalid gap %d: must be between 0 and the card width", gap)
		}
		bgName, _ := cmd.Flags().GetString("background")
		bg, err := parseHexColor(bgName)
		if err != nil {
			return err
		}

		base, r, err := deckSetup(cmd)
		if err != nil {
			return err
		}

		prog := newProgress(loggerFromContext(cmd.Context()))
		sheet := composeSheet(r, base, width, gap, bg)
		if err := saveImage(file, sheet); err != nil {
			return err
		}
		b := sheet.Bounds()
		prog.done(fmt.Sprintf("Wrote %dx%d sheet to %s", b.Dx(), b.Dy(), file))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckExportCmd)
	deckCmd.AddCommand(deckSheetCmd)

	deckExportCmd.Flags().StringP("format", "f", "svg", "file format: svg, png or webp")
	deckExportCmd.Flags().Int("width", raster.DefaultWidth, "bitmap width in pixels")
	addRenderFlags(deckExportCmd)

	deckSheetCmd.Flags().Int("width", 120, "width of each card in pixels")
	deckSheetCmd.Flags().Int("gap", 8, "space between cards in pixels")
	deckSheetCmd.Flags().String("background", "#2a5", "sheet background color")
	addRenderFlags(deckSheetCmd)
}

func deckSetup(cmd *cobra.Command) (render.Options, render.Renderer, error) {
	o, err := renderOptions(cmd)
	if err != nil {
		return o, render.Renderer{}, err
	}
	art, err := loadArtwork(cmd)
	if err != nil {
		return o, render.Renderer{}, err
	}
	loggerFromContext(cmd.Context()).Debug("rendering deck", "artwork", artworkLabel(art))
	return o, render.Renderer{Art: art}, nil
}

// cardOptions selects c on top of base, dropping any identifier in base.
func cardOptions(base render.Options, c card.Card) render.Options {
	o := base
	o.CID = ""
	o.Rank = strconv.Itoa(int(c.Rank))
	o.Suit = strconv.Itoa(int(c.Suit))
	return o
}

// backSuit is the suit of the back card: the one given in base, else spades.
func backSuit(base render.Options) card.Suit {
	return card.Suit(max(0, min(card.ParseName(base.Suit), 3)))
}

// composeSheet lays out 13 columns by 4 suit rows plus a row for the back.
func composeSheet(r render.Renderer, base render.Options, width, gap int, bg color.Color) *image.NRGBA {
	if width <= 0 {
		width = 120
	}
	gap = max(0, gap)

	var cells []image.Image
	for _, c := range card.Deck() {
		l := r.Layout(cardOptions(base, c))
		cells = append(cells, raster.Rasterize(&l, width))
	}
	h := cells[0].Bounds().Dy()

	const cols, rows = 13, 5
	sheet := imaging.New(cols*width+(cols+1)*gap, rows*h+(rows+1)*gap, bg)
	for i, img := range cells {
		x, y := i%cols, i/cols
		sheet = imaging.Overlay(sheet, img, image.Pt(gap+x*(width+gap), gap+y*(h+gap)), 1)
	}

	l := r.Layout(cardOptions(base, card.Card{Suit: backSuit(base), Rank: card.Back}))
	sheet = imaging.Overlay(sheet, raster.Rasterize(&l, width), image.Pt(gap, gap+4*(h+gap)), 1)
	return sheet
}

func parseHexColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// saveImage writes img in the format named by the file extension.
func saveImage(file string, img image.Image) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))
	if ext != "webp" {
		if err := imaging.Save(img, file); err != nil {
			return fmt.Errorf("error saving %s: %w", file, err)
		}
		return nil
	}

	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", file, err)
	}
	if err := raster.Encode(f, img, ext); err != nil {
		f.Close()
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return f.Close()
}
