package cmd

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsmith/internal/artwork"
	"github.com/arcanaland/cardsmith/internal/config"
	"github.com/arcanaland/cardsmith/internal/raster"
	"github.com/arcanaland/cardsmith/internal/render"
	"github.com/arcanaland/cardsmith/internal/termart"
)

var showCmd = &cobra.Command{
	Use:   "show [cid]",
	Short: "Preview a card in the terminal",
	Long: `Show draws a card as ANSI art and prints its details beside it.

Examples:
  cardsmith show AS
  cardsmith show QUEEN-OF-HEARTS --cols 32
  cardsmith show 7C --showpips --256`,
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

		p := newPreviewer(cmd, art)
		l := p.renderer.Layout(o)
		ansi, err := p.art(&l)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		width := termart.TerminalWidth(os.Stdout) - p.cols - 8
		termart.SideBySide(out, ansi, cardInfo(&l, art, width), 4)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
	addPreviewFlags(showCmd, 24)
	addRenderFlags(showCmd)
}

func addPreviewFlags(cmd *cobra.Command, cols int) {
	cmd.Flags().Int("cols", cols, "preview width in terminal columns")
	cmd.Flags().Bool("256", false, "use the 256-color palette instead of true color")
	cmd.Flags().Bool("no-cache", false, "do not cache generated previews")
}

// previewer turns layouts into ANSI art with the preview flags of a command.
type previewer struct {
	renderer  render.Renderer
	cols      int
	trueColor bool
	cache     termart.Cache
}

func newPreviewer(cmd *cobra.Command, art *artwork.Artwork) *previewer {
	cols, _ := cmd.Flags().GetInt("cols")
	palette, _ := cmd.Flags().GetBool("256")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	p := &previewer{
		renderer:  render.Renderer{Art: art},
		cols:      max(4, cols),
		trueColor: !palette && supportsTrueColor(),
	}
	if !noCache {
		p.cache.Dir = filepath.Join(config.GetCacheDir(), "ansi")
	}
	return p
}

func (p *previewer) art(l *render.Layout) (string, error) {
	rows := int(math.Round(float64(p.cols) * render.CardHeight / render.CardWidth / 2))
	key := fmt.Sprintf("%d:%t:%s", p.cols, p.trueColor, render.SVG(l))
	return p.cache.Get(key, func() (string, error) {
		img := raster.Rasterize(l, p.cols*8)
		return termart.FromImage(img, p.cols, rows, color.Black, p.trueColor), nil
	})
}

func supportsTrueColor() bool {
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return true
	}
	return false
}

// cardInfo builds the colored detail lines shown next to a preview.
func cardInfo(l *render.Layout, art *artwork.Artwork, width int) []string {
	label := func(s string) string { return colorize.CyanString("%-9s", s+":") }
	value := func(s string) string { return colorize.HiWhiteString("%s", s) }

	c := l.Card
	lines := []string{
		label("Card") + value(c.Name()),
		label("ID") + value(c.ID()),
		label("Artwork") + value(artworkLabel(art)) + colorize.HiBlackString(" (%s)", art.Mode),
	}
	if !l.Front() {
		return append(lines, label("Back")+value(l.BackColor))
	}

	lines = append(lines,
		label("Suit")+value(fmt.Sprintf("%s %s", c.Suit, suitSymbols[c.Suit])),
		label("Rank")+value(c.Rank.String()),
	)
	if l.Court != nil {
		lines = append(lines, label("Court")+value(fmt.Sprintf("style %d, variant %d", l.Court.Style, l.Court.Variant)))
	} else {
		lines = append(lines, label("Pips")+value(fmt.Sprint(l.PipCount())))
	}

	lines = append(lines, "", colorize.CyanString("Description:"))
	return append(lines, termart.Wrap(describe(l), width)...)
}

var suitSymbols = [...]string{"♠", "♥", "♦", "♣"}

func describe(l *render.Layout) string {
	c := l.Card
	switch {
	case l.Court != nil:
		return fmt.Sprintf("The %s, a court card. Its figure is drawn twice, mirrored about the centre, beside a large %s.",
			c.Name(), strings.TrimSuffix(c.Suit.String(), "s"))
	case c.Rank == 1:
		return fmt.Sprintf("The %s, a single large pip in the centre of the card.", c.Name())
	}
	return fmt.Sprintf("The %s, with %d %s pips arranged symmetrically.",
		c.Name(), l.PipCount(), strings.TrimSuffix(c.Suit.String(), "s"))
}
