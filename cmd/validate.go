package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsmith/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate PATH",
	Short: "Validate an artwork file",
	Long: `Validate checks an artwork set, given as its directory or its artwork.toml,
for problems that would make cards render incorrectly: pip layouts of the
wrong length or with unknown characters, empty glyph paths, an unknown mode,
and missing court layers in full mode.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		results, err := validator.NewValidator(path).Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.OK() {
			fmt.Fprintln(out, colorize.GreenString("✓ Artwork '%s' is valid.", path))
		} else {
			fmt.Fprintln(out, colorize.RedString("✗ Artwork '%s' has %d validation errors:", path, len(results.Errors)))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, colorize.YellowString("\nWarnings:"))
			for i, w := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, w)
			}
		}

		if !results.OK() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
