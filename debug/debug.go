package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Paths  bool
	Config bool
	Update bool
	Switch bool
	Tree   bool
	Gops   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Paths = boolEnv("HDN_DEBUG_PATHS")
	d.Config = boolEnv("HDN_DEBUG_CONFIG")
	d.Update = boolEnv("HDN_DEBUG_UPDATE")
	d.Switch = boolEnv("HDN_DEBUG_SWITCH")
	d.Tree = boolEnv("HDN_DEBUG_TREE")
	d.Gops = boolEnv("HDN_DEBUG_GOPS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Paths reports whether home.nix discovery is traced.
func Paths() bool {
	return d.Paths
}
func Config() bool {
	return d.Config
}
func Update() bool {
	return d.Update
}
func Switch() bool {
	return d.Switch
}

// Tree reports whether parsed documents are dumped.
func Tree() bool {
	return d.Tree
}

// Gops reports whether a gops agent should listen while hdn runs.
func Gops() bool {
	return d.Gops
}
