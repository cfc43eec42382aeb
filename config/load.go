package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Names lists the file names looked for in the configuration directory, in
// order.
var Names = []string{"config.toml", "config.yaml", "config.yml"}

// Dir returns $XDG_CONFIG_HOME/hdn, or $HOME/.config/hdn.
func Dir(getenv func(string) string) (string, error) {
	if x := getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, "hdn"), nil
	}
	if h := getenv("HOME"); h != "" {
		return filepath.Join(h, ".config", "hdn"), nil
	}
	return "", ErrNoConfigDir
}

// Find loads the first configuration file of Names present in Dir over the
// defaults. It returns the path it loaded, empty when there was none.
func Find(getenv func(string) string) (*Config, string, error) {
	dir, err := Dir(getenv)
	if err != nil {
		return nil, "", err
	}
	for _, name := range Names {
		path := filepath.Join(dir, name)
		c, found, err := load(path)
		if err != nil {
			return nil, "", err
		}
		if found {
			return c, path, nil
		}
	}
	return Default(), "", nil
}

// Load reads the configuration file at path over the defaults. The format
// follows the extension. A missing file is not an error: the defaults are
// returned.
func Load(path string) (*Config, error) {
	c, _, err := load(path)
	return c, err
}

func load(path string) (*Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), false, nil
		}
		return nil, false, fmt.Errorf("reading config file %s: %w", path, err)
	}
	c := Default()
	if err := Decode(path, data, c); err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// Decode decodes data, in the format given by the extension of path, into
// c. Settings absent from data keep their value in c.
func Decode(path string, data []byte, c *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, c); err != nil {
			pe := &ParseError{Path: path, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				pe.Line, pe.Column = derr.Position()
			}
			return pe
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return &ParseError{Path: path, Message: yaml.FormatError(err, false, false), Err: err}
		}
	default:
		return fmt.Errorf("%w: %s", ErrFormat, path)
	}
	return nil
}
