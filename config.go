package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const configFileName = "comp.toml"

// Config holds user preferences, read from comp.toml in the home directory.
type Config struct {
	ShowStackLevel     bool    `toml:"show_stack_level"`
	ConversionConstant float64 `toml:"conversion_constant"`
	Monochrome         bool    `toml:"monochrome"`
	ShowWarnings       bool    `toml:"show_warnings"`
	PersistStack       bool    `toml:"persist_stack"`
}

func DefaultConfig() Config {
	return Config{
		ConversionConstant: 1,
		ShowWarnings:       true,
	}
}

// LoadConfig reads the config file at path. A missing file is not an error;
// an unreadable or malformed one is, with defaults returned alongside it.
// Unknown keys are reported too, but the known ones still apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	} else if err != nil {
		return DefaultConfig(), fmt.Errorf("unable to read config %v, using defaults: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("ignoring unknown config keys in %v: %v", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (cfg Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

func homePath(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, name), nil
}
