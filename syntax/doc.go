// Package syntax provides the lossless concrete syntax tree used to edit Nix
// documents.
//
// A tree has two layers. [GreenNode] and [GreenToken] are immutable and
// position independent; every byte of the source, whitespace and comments
// included, lives in exactly one GreenToken, so printing a green tree gives
// back its source. Edits ([GreenNode.InsertChild], [GreenNode.ReplaceChild],
// [GreenNode.RemoveChild]) return new nodes sharing all untouched children.
//
// [Node] wraps a GreenNode with its parent, index and offset. It is cheap to
// create and is how trees are navigated. [Node.ReplaceWith] rebuilds the
// ancestors of a node around an edited green node and returns the new root.
//
// # Related Packages
//
//   - github.com/hdn-nix/hdn/parse - builds syntax trees from text
//   - github.com/hdn-nix/hdn/token - tokens carried by the tree
package syntax
