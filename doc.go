// Package hdn adds and removes packages in a home-manager configuration.
//
// The Nix text is edited through package edit, so everything outside the
// list of packages keeps its exact layout. [Update] ties the edit to the
// rest of the workflow: the diff shown to the user, writing home.nix,
// activating the new generation and restoring home.nix when activation
// fails.
package hdn
