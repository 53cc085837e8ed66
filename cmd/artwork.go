package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsmith/internal/artwork"
	"github.com/arcanaland/cardsmith/internal/config"
)

// artworkCmd represents the artwork command group
var artworkCmd = &cobra.Command{
	Use:   "artwork",
	Short: "Manage artwork sets in your artwork library",
	Long: `Commands for managing the artwork sets in your artwork library
(XDG_DATA_HOME/cardsmith/artwork). Each set is a directory holding an
artwork.toml file with suit glyphs, rank glyphs, pip layouts and, in full
mode, court card layers.`,
}

var artworkListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the artwork sets in your artwork library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		names, err := config.ListArtwork()
		if err != nil {
			return err
		}

		builtin := artwork.Default()
		rows := [][]string{row(cfg.DefaultArtwork, builtin.Name, builtin, "built in")}
		logger := loggerFromContext(cmd.Context())
		for _, name := range names {
			a, err := artwork.Load(filepath.Join(config.GetArtworkLibraryPath(), name))
			if err != nil {
				logger.Warn("skipping artwork", "name", name, "err", err)
				continue
			}
			rows = append(rows, row(cfg.DefaultArtwork, name, a, a.Author))
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(styleDim).
			Headers("", "Name", "Title", "Mode", "Author").
			Rows(rows...).
			StyleFunc(func(r, c int) lipgloss.Style {
				switch {
				case r == -1:
					return styleHeader
				case rows[r][0] != "":
					return styleDefault
				}
				return styleValue
			})
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())

		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), styleDim.Render("Add artwork sets to "+config.GetArtworkLibraryPath()+" or run 'cardsmith artwork init NAME'."))
		}
		return nil
	},
}

// row is one line of the artwork table. The first column marks the default.
func row(defaultName, name string, a *artwork.Artwork, author string) []string {
	mark := ""
	if name == defaultName || (defaultName == "" && name == artwork.Default().Name) {
		mark = "*"
	}
	return []string{mark, name, a.Name, a.Mode.String(), author}
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating %s: %w", dir, err)
	}
	return nil
}

var artworkSetDefaultCmd = &cobra.Command{
	Use:   "set-default NAME",
	Short: "Set the default artwork set",
	Long: `Set-default records NAME as the artwork used when --artwork is not given.
Use "classic" to go back to the built-in set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if name != artwork.Default().Name {
			path, err := config.GetArtworkPath(name)
			if err != nil {
				return err
			}
			if _, err := artwork.Load(path); err != nil {
				return fmt.Errorf("not a valid artwork set: %w", err)
			}
		} else {
			name = ""
		}

		if err := config.SetDefaultArtwork(name); err != nil {
			return fmt.Errorf("error setting default artwork: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Default artwork set to: %s\n", args[0])
		return nil
	},
}

var artworkInitCmd = &cobra.Command{
	Use:   "init [NAME]",
	Short: "Initialize the artwork library, optionally with a new set",
	Long: `Init creates the artwork library and the config file. Given NAME, it also
writes NAME/artwork.toml into the library, seeded with the built-in glyphs,
as a starting point for a custom set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetArtworkLibraryPath()
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file:", config.GetConfigFilePath())

		if len(args) == 0 {
			if err := ensureDir(libraryPath); err != nil {
				return err
			}
			fmt.Fprintln(out, "Artwork library initialized at:", libraryPath)
			return nil
		}

		a := artwork.Default()
		a.Name = args[0]
		path, err := artwork.Create(filepath.Join(libraryPath, args[0]), a)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Artwork set created at:", path)
		fmt.Fprintf(out, "Edit it, check it with 'cardsmith validate %s', then use it with --artwork %s.\n", path, args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(artworkCmd)
	artworkCmd.AddCommand(artworkListCmd)
	artworkCmd.AddCommand(artworkSetDefaultCmd)
	artworkCmd.AddCommand(artworkInitCmd)
}
