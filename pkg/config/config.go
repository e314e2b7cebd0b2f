// Package config loads marks configuration. Precedence, lowest first:
// embedded defaults, the user config file in the XDG config dir, and
// MARKS_* environment variables.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	markserr "github.com/arthur-debert/marks/pkg/errors"
)

// ConfigFileName is the user config file under the XDG config dir
const ConfigFileName = "marks.toml"

// EnvPrefix namespaces environment overrides, e.g. MARKS_STORE_PATH
const EnvPrefix = "MARKS_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the resolved settings
type Config struct {
	// StorePath is the bookmark store file; empty selects the XDG
	// data directory default
	StorePath string

	// SeedEnabled seeds demo bookmarks into an empty tree
	SeedEnabled bool

	// Color is the output color mode: auto, always or never
	Color string
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load resolves configuration from defaults, the user config file and
// the environment
func Load() (*Config, error) {
	return loadFrom(userConfigPath())
}

// loadFrom is the file-path-injectable core of Load
func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, markserr.Wrap(err, markserr.ErrConfigParse, "failed to load defaults")
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, markserr.Wrapf(err, markserr.ErrConfigLoad, "failed to load config from %s", configPath)
			}
		}
	}

	// MARKS_STORE_PATH -> store.path
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, markserr.Wrap(err, markserr.ErrConfigLoad, "failed to load environment overrides")
	}

	return &Config{
		StorePath:   k.String("store.path"),
		SeedEnabled: k.Bool("seed.enabled"),
		Color:       k.String("output.color"),
	}, nil
}

// userConfigPath returns the XDG location of the user config file
func userConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "marks", ConfigFileName)
}
