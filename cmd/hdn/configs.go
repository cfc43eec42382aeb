package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/hdn-nix/hdn"
	"github.com/hdn-nix/hdn/config"
	"github.com/hdn-nix/hdn/debug"
	"github.com/hdn-nix/hdn/libdiff"
)

type MainConfig struct {
	File       string `cli:"name=f aliases=file desc='home.nix to edit (default: search the home-manager locations)'"`
	Attr       string `cli:"name=a aliases=attr desc='attribute holding the package list (default home.packages)'"`
	Color      bool   `cli:"name=color desc='color the diff'"`
	NoColor    bool   `cli:"name=nocolor desc='do not color the diff'"`
	Context    int    `cli:"name=context desc='lines of unchanged text around each change of the diff'"`
	ConfigFile string `cli:"name=config desc='configuration file (default $XDG_CONFIG_HOME/hdn/config.toml)'"`

	Main *cli.Command
}

type UpdateConfig struct {
	*MainConfig
	ShowTrace bool `cli:"name=show-trace aliases=s desc='pass --show-trace to the switch command'"`
	DryRun    bool `cli:"name=n aliases=dry-run desc='show the diff, do not write home.nix or switch'"`

	Command *cli.Command
	mode    hdn.Mode
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='only list packages for which this expression over index, text and name holds'"`

	List *cli.Command
}

func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// settings layers the command line over the environment over the
// configuration file.
func (cfg *MainConfig) settings() (*config.Config, error) {
	var (
		c    *config.Config
		path = cfg.ConfigFile
		err  error
	)
	if path != "" {
		c, err = config.Load(path)
	} else {
		c, path, err = config.Find(os.Getenv)
		if errors.Is(err, config.ErrNoConfigDir) {
			c, err = config.Default(), nil
		}
	}
	if err != nil {
		return nil, err
	}
	c.ApplyEnv(os.Getenv)
	if cfg.File != "" {
		c.File = cfg.File
	}
	if cfg.Attr != "" {
		c.Attribute = cfg.Attr
	}
	switch {
	case cfg.Color && cfg.NoColor:
		return nil, fmt.Errorf("%w: at most one of -color -nocolor may be specified", cli.ErrUsage)
	case cfg.Color:
		c.Color = config.ColorAlways
	case cfg.NoColor:
		c.Color = config.ColorNever
	}
	if cfg.optSet("context") {
		c.Context = cfg.Context
	}
	if debug.Config() {
		debug.Logf("config from %q: %+v\n", path, *c)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func homeNix(c *config.Config) (string, error) {
	if c.File != "" {
		return c.File, nil
	}
	return hdn.FindHomeNix(os.Getenv)
}

func useColor(c *config.Config, w io.Writer) bool {
	switch c.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func diffOpts(c *config.Config, w io.Writer) []libdiff.WriteOption {
	res := []libdiff.WriteOption{libdiff.Context(c.Context)}
	if useColor(c, w) {
		res = append(res, libdiff.WithColors(libdiff.NewColors()))
		return res
	}
	if c.Color == config.ColorNever {
		color.NoColor = true
	}
	return res
}
