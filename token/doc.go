// Package token splits Nix source into tokens.
//
// [Tokenize] is lossless: whitespace and comments are tokens like any
// other, and text that does not lex becomes a [TError] token, so the token
// bytes always add up to the input. Strings, indented strings and paths are
// single tokens, interpolations included.
package token
