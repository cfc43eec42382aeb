package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hdn-nix/hdn/syntax"
)

// Logf writes a debug message to stderr. Slices and maps are rendered as
// indented JSON and syntax trees as an outline of their nodes.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, []string:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *syntax.Node:
			args[i] = syntax.Dump(x.Green())
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
