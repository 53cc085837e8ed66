package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verbose bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardsmith",
	Short: "Render playing cards as SVG, bitmaps and terminal art",
	Long: `Cardsmith draws the 52 cards of a French-suited deck, plus card backs,
from compact card identifiers such as AS, 10H or QUEEN-OF-HEARTS.

Cards can be written as SVG documents or data URIs, exported as PNG or WebP,
previewed in the terminal, or served over HTTP. The glyphs come from an
artwork set; the built-in set is used unless another one is configured.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	RootCmd.PersistentFlags().StringP("artwork", "a", "", "artwork set from your artwork library, or a path to one")
}

// Execute runs the command tree. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return RootCmd.ExecuteContext(ctx)
}
