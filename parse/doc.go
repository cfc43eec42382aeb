// Package parse parses Nix expressions into lossless syntax trees.
//
// # Usage
//
//	root := parse.ParseString(`{ home.packages = [ pkgs.htop ]; }`)
//	fmt.Print(root.Text()) // prints the input unchanged
//
//	// collect what the parser recovered from
//	var errs []error
//	root = parse.Parse(data, parse.ParseErrors(&errs))
//
// Parsing never fails. Malformed input still yields a tree whose text is the
// input; the unexpected parts are kept in nodes of kind [syntax.KindError].
// The parser only builds structure, it does not evaluate anything.
//
// # Related Packages
//
//   - github.com/hdn-nix/hdn/syntax - tree representation
//   - github.com/hdn-nix/hdn/token - tokenization
package parse
