package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/render"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Browse the deck interactively and print the chosen card id",
	Long: `Pick opens a card browser in the terminal. Left and right change the
rank, up and down change the suit, b flips the card over and d toggles the
pip slot labels. Enter prints the identifier of the card on screen.

Examples:
  cardsmith pick
  cardsmith render "$(cardsmith pick)" -o card.svg`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := renderOptions(cmd)
		if err != nil {
			return err
		}
		art, err := loadArtwork(cmd)
		if err != nil {
			return err
		}

		m := newPickModel(newPreviewer(cmd, art), base)
		prog := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithOutput(os.Stderr))
		final, err := prog.Run()
		if err != nil {
			return fmt.Errorf("card picker: %w", err)
		}

		if fm, ok := final.(pickModel); ok && fm.chosen != "" {
			fmt.Fprintln(cmd.OutOrStdout(), fm.chosen)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pickCmd)
	addPreviewFlags(pickCmd, 24)
	addRenderFlags(pickCmd)
}

type pickModel struct {
	preview *previewer
	base    render.Options

	suit  card.Suit
	rank  card.Rank
	back  bool
	debug bool

	chosen string
}

func newPickModel(p *previewer, base render.Options) pickModel {
	return pickModel{preview: p, base: base, suit: card.Spades, rank: card.Ace}
}

func (m pickModel) current() card.Card {
	if m.back {
		return card.Card{Suit: m.suit, Rank: card.Back}
	}
	return card.Card{Suit: m.suit, Rank: m.rank}
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.rank = wrapRank(m.rank - 1)
	case "right", "l":
		m.rank = wrapRank(m.rank + 1)
	case "up", "k":
		m.suit = (m.suit + 3) % 4
	case "down", "j":
		m.suit = (m.suit + 1) % 4
	case "b":
		m.back = !m.back
	case "d":
		m.debug = !m.debug
	case "enter":
		m.chosen = m.current().ID()
		return m, tea.Quit
	}
	return m, nil
}

// wrapRank keeps r within ace to king, wrapping around.
func wrapRank(r card.Rank) card.Rank {
	switch {
	case r < card.Ace:
		return card.King
	case r > card.King:
		return card.Ace
	}
	return r
}

func (m pickModel) View() string {
	if m.chosen != "" {
		return ""
	}
	c := m.current()
	o := cardOptions(m.base, c)
	if m.debug {
		o.ShowPips = "showpips"
	}
	l := m.preview.renderer.Layout(o)

	var b strings.Builder
	b.WriteString(styleTitle.Render("Pick a card"))
	b.WriteString("\n\n")
	art, err := m.preview.art(&l)
	if err != nil {
		b.WriteString(err.Error())
	} else {
		b.WriteString(art)
	}
	b.WriteString("\n\n")
	b.WriteString(styleValue.Render(fmt.Sprintf("%-4s%s", c.ID(), c.Name())))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("←/→ rank  ↑/↓ suit  b back  d pips  ⏎ select  q quit"))
	b.WriteString("\n")
	return b.String()
}
