package cmd

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsmith/internal/card"
)

var handCmd = &cobra.Command{
	Use:   "hand",
	Short: "Deal a random hand and preview it",
	Long: `Hand deals distinct cards from a shuffled deck and shows them side by side.

Examples:
  cardsmith hand
  cardsmith hand -n 7 --cols 14
  cardsmith hand --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")
		if n < 1 || n > 52 {
			return fmt.Errorf("count must be between 1 and 52, got %d", n)
		}
		if !cmd.Flags().Changed("seed") {
			seed = uint64(time.Now().UnixNano())
		}

		base, err := renderOptions(cmd)
		if err != nil {
			return err
		}
		art, err := loadArtwork(cmd)
		if err != nil {
			return err
		}

		logger := loggerFromContext(cmd.Context())
		logger.Debug("dealing", "count", n, "seed", seed)
		hand := card.Deal(n, rand.New(rand.NewPCG(seed, seed>>1)))

		p := newPreviewer(cmd, art)
		gap := strings.Repeat(" ", 2)
		var blocks []string
		var names []string
		for i, c := range hand {
			l := p.renderer.Layout(cardOptions(base, c))
			a, err := p.art(&l)
			if err != nil {
				return err
			}
			if i > 0 {
				blocks = append(blocks, gap)
			}
			blocks = append(blocks, a)
			names = append(names, c.ID())
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
		fmt.Fprintln(out)
		for _, c := range hand {
			fmt.Fprintf(out, "%s %s\n", colorize.HiWhiteString("%-3s", c.ID()), colorize.CyanString("%s", c.Name()))
		}
		logger.Debug("dealt", "cards", strings.Join(names, " "))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(handCmd)

	handCmd.Flags().IntP("count", "n", 5, "number of cards to deal")
	handCmd.Flags().Uint64("seed", 0, "shuffle seed (default random)")
	addPreviewFlags(handCmd, 12)
	addRenderFlags(handCmd)
}
