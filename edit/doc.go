// Package edit reads and edits list-valued attributes of Nix documents in
// place.
//
// Every operation takes the document text and a dotted attribute path,
// parses the text, finds the attribute and returns either the list elements
// or the new document text. Bytes that the edit does not touch, comments and
// formatting included, are kept as they were.
//
//	pkgs, err := edit.ArrayValues(src, "home.packages")
//	src, err = edit.AddToArray(src, "home.packages", []string{"pkgs.htop"})
//	src, err = edit.RemoveFromArray(src, "home.packages", []string{"pkgs.htop"})
//
// The attribute may be written in any of the usual layouts:
//
//	home.packages = [ ... ];
//	home = { packages = [ ... ]; };
//	home = { ... }; home.packages = [ ... ];
//
// Errors returned are *Error values wrapping ErrParse, ErrNoAttr or
// ErrArray. The package does no I/O and keeps no state between calls.
package edit
