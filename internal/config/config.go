package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardsmith/internal/artwork"
	"github.com/arcanaland/cardsmith/internal/render"
)

// DefaultListen is the address serve binds to when the config names none.
const DefaultListen = ":3000"

// Config represents the application configuration
type Config struct {
	DefaultArtwork string `toml:"default_artwork"`
	Listen         string `toml:"listen"`

	// Defaults maps render attribute names to values applied before flags.
	Defaults map[string]string `toml:"defaults"`
}

// RenderDefaults returns the [defaults] table as render options.
func (c *Config) RenderDefaults() render.Options {
	return render.FromAttributes(c.Defaults)
}

// UnknownDefaults lists [defaults] keys that are not render attributes.
func (c *Config) UnknownDefaults() []string {
	known := make(map[string]bool, len(render.AttributeNames))
	for _, n := range render.AttributeNames {
		known[n] = true
	}
	var unknown []string
	for k := range c.Defaults {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{homeDir}, fallback...)...)
}

// GetArtworkLibraryPath returns the directory holding installed artwork sets.
func GetArtworkLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "cardsmith", "artwork")
}

// GetCacheDir returns the directory for generated terminal previews.
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "cardsmith")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardsmith", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults when missing.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := &Config{Listen: DefaultListen}
		if err := save(config); err != nil {
			return nil, err
		}
		return config, nil
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if config.Listen == "" {
		config.Listen = DefaultListen
	}
	return &config, nil
}

func save(config *Config) error {
	configPath := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// GetArtworkPath returns the path to an artwork set, either in the artwork
// library or a path relative to the working directory.
func GetArtworkPath(name string) (string, error) {
	libraryPath := filepath.Join(GetArtworkLibraryPath(), name)
	if _, err := os.Stat(libraryPath); err == nil {
		return libraryPath, nil
	}

	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("artwork %q: %w", name, artwork.ErrNotFound)
}

// LoadArtwork loads the named artwork set. An empty name selects the
// configured default, and when that is empty too, the built-in set.
func LoadArtwork(name string) (*artwork.Artwork, error) {
	if name == "" {
		config, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		name = config.DefaultArtwork
	}
	if name == "" || name == artwork.Default().Name {
		return artwork.Default(), nil
	}

	path, err := GetArtworkPath(name)
	if err != nil {
		return nil, err
	}
	return artwork.Load(path)
}

// SetDefaultArtwork sets the default artwork in the config. An empty name
// restores the built-in set.
func SetDefaultArtwork(name string) error {
	if name != "" && name != artwork.Default().Name {
		if _, err := GetArtworkPath(name); err != nil {
			return err
		}
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.DefaultArtwork = name
	return save(config)
}

// ListArtwork returns the names of the artwork sets in the library.
func ListArtwork() ([]string, error) {
	entries, err := os.ReadDir(GetArtworkLibraryPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading artwork library: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(GetArtworkLibraryPath(), e.Name(), artwork.FileName)); err == nil {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
