// Package config loads the optional defaults file for decorate.
//
// The file lives at $XDG_CONFIG_HOME/decorate/decorate.toml and only
// provides defaults for flags; command-line values always win. A missing
// file is not an error.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	decorerr "github.com/arthur-debert/decorate/pkg/errors"
)

// ConfigFileName is the defaults file name under the app config directory.
const ConfigFileName = "decorate.toml"

// Config holds flag defaults.
type Config struct {
	// Mode is the default --mode value.
	Mode string `toml:"mode"`
	// OnExists is the default --on-exists value.
	OnExists string `toml:"on-exists"`
	// Relative makes --relative default to true.
	Relative bool `toml:"relative"`
	// NoColor disables colored status lines by default.
	NoColor bool `toml:"no-color"`
}

// Default returns the built-in defaults: create mode and the fail policy,
// the safe choice for a tool that mutates a destination tree.
func Default() Config {
	return Config{
		Mode:     "create",
		OnExists: "fail",
	}
}

// Path returns the location of the defaults file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "decorate", ConfigFileName)
}

// Load reads the defaults file at path, falling back to Default when the
// file does not exist. Empty fields are filled from Default so a partial
// file only overrides what it names.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, decorerr.Wrapf(err, decorerr.ErrConfigLoad, "reading %s", path)
	}

	var loaded Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return cfg, decorerr.Wrapf(err, decorerr.ErrConfigLoad, "parsing %s", path)
	}

	if loaded.Mode != "" {
		cfg.Mode = loaded.Mode
	}
	if loaded.OnExists != "" {
		cfg.OnExists = loaded.OnExists
	}
	cfg.Relative = loaded.Relative
	cfg.NoColor = loaded.NoColor

	return cfg, nil
}
