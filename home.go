package hdn

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hdn-nix/hdn/debug"
)

// HomeNixPaths returns the places home.nix is looked for, in order.
func HomeNixPaths(getenv func(string) string) ([]string, error) {
	home := getenv("HOME")
	if home == "" {
		return nil, ErrNoHome
	}
	configHome := getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	return []string{
		filepath.Join(configHome, "home-manager", "home.nix"),
		filepath.Join(configHome, "nixpkgs", "home.nix"),
		filepath.Join(home, ".nixpkgs", "home.nix"),
	}, nil
}

// FindHomeNix returns the first of [HomeNixPaths] that exists.
func FindHomeNix(getenv func(string) string) (string, error) {
	paths, err := HomeNixPaths(getenv)
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		_, err := os.Stat(p)
		if debug.Paths() {
			debug.Logf("home.nix candidate %s: %v\n", p, err)
		}
		if err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %v", ErrHomeNixNotFound, paths)
}
