// Package config holds the user settings of hdn and loads them from a TOML
// or YAML file.
//
// Settings come, from weakest to strongest, from [Default], the file found
// by [Find], the environment ([Config.ApplyEnv]) and the command line.
package config

import (
	"fmt"

	"github.com/hdn-nix/hdn/attrpath"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	DefaultAttribute = "home.packages"
	DefaultCommand   = "home-manager"
	DefaultContext   = 3
)

type Config struct {
	// File is the home.nix to edit. Empty means the usual locations are
	// searched.
	File      string       `toml:"file" yaml:"file"`
	Attribute string       `toml:"attribute" yaml:"attribute"`
	Color     string       `toml:"color" yaml:"color"`
	Context   int          `toml:"context" yaml:"context"`
	Switch    SwitchConfig `toml:"switch" yaml:"switch"`
}

// SwitchConfig is the command activating a new generation.
type SwitchConfig struct {
	Command   string   `toml:"command" yaml:"command"`
	Args      []string `toml:"args" yaml:"args"`
	ShowTrace bool     `toml:"show_trace" yaml:"show_trace"`
}

func Default() *Config {
	return &Config{
		Attribute: DefaultAttribute,
		Color:     ColorAuto,
		Context:   DefaultContext,
		Switch: SwitchConfig{
			Command: DefaultCommand,
			Args:    []string{"switch"},
		},
	}
}

// ApplyEnv overrides the file and attribute from HDN_FILE and
// HDN_ATTRIBUTE when they are set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("HDN_FILE"); v != "" {
		c.File = v
	}
	if v := getenv("HDN_ATTRIBUTE"); v != "" {
		c.Attribute = v
	}
}

func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be %s, %s or %s, not %q",
			ErrInvalid, ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	if c.Context < 0 {
		return fmt.Errorf("%w: negative context %d", ErrInvalid, c.Context)
	}
	if c.Switch.Command == "" {
		return fmt.Errorf("%w: empty switch command", ErrInvalid)
	}
	if _, err := attrpath.Parse(c.Attribute); err != nil {
		return fmt.Errorf("%w: attribute: %w", ErrInvalid, err)
	}
	return nil
}
