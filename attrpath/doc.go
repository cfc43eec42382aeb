// Package attrpath provides dotted Nix attribute paths.
//
// # Usage
//
//	p, err := attrpath.Parse("programs.git.enable")
//	p.Len()                                      // 3
//	p.HasPrefix(attrpath.MustParse("programs"))  // true
//	p.TrimPrefix(1).String()                     // "git.enable"
//
// Segments keep their source spelling, quotes included, so that a path can be
// written back into a document. Comparison normalises the spelling: the
// segment "git" (quoted, without escapes or interpolation) equals git.
package attrpath
