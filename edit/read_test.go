package edit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type readTest struct {
	name string
	src  string
	path string
	out  []string
	err  error
}

func TestArrayValues(t *testing.T) {
	rts := []readTest{
		{
			name: "strings",
			src:  `{ home.packages = [ "a" "b" ]; }`,
			path: "home.packages",
			out:  []string{`"a"`, `"b"`},
		},
		{
			name: "module",
			src: `{ config, pkgs, ... }:
{
  home.packages = with pkgs; [
    htop # process viewer
    ripgrep
    (callPackage ./tool.nix { })
  ];
}
`,
			path: "home.packages",
			out:  []string{"htop", "ripgrep", "(callPackage ./tool.nix { })"},
		},
		{
			name: "nested set",
			src:  `{ home = { packages = [ pkgs.git ]; }; }`,
			path: "home.packages",
			out:  []string{"pkgs.git"},
		},
		{
			name: "quoted key",
			src:  `{ "home".packages = [ a ]; }`,
			path: "home.packages",
			out:  []string{"a"},
		},
		{
			name: "let body",
			src:  `let x = { home.packages = [ wrong ]; }; in { home.packages = [ right ]; }`,
			path: "home.packages",
			out:  []string{"right"},
		},
		{
			name: "nested with",
			src:  `{ p = with a; with b; [ x y ]; }`,
			path: "p",
			out:  []string{"x", "y"},
		},
		{
			name: "duplicates kept",
			src:  `{ p = [ a b a ]; }`,
			path: "p",
			out:  []string{"a", "b", "a"},
		},
		{
			name: "empty list",
			src:  `{ p = [ ]; }`,
			path: "p",
			out:  []string{},
		},
		{
			name: "absent",
			src:  `{ home.username = "me"; }`,
			path: "home.packages",
			err:  ErrNoAttr,
		},
		{
			name: "bad path",
			src:  `{ p = [ ]; }`,
			path: "p..q",
			err:  ErrNoAttr,
		},
		{
			name: "not a list",
			src:  `{ home.packages = 3; }`,
			path: "home.packages",
			err:  ErrArray,
		},
		{
			name: "set value",
			src:  `{ home.packages = { a = [ x ]; }; }`,
			path: "home.packages",
			err:  ErrArray,
		},
		{
			name: "scattered keys",
			src:  `{ a.b.c = [ x ]; a.b.d = 2; }`,
			path: "a.b",
			err:  ErrArray,
		},
		{
			name: "no set",
			src:  `[ 1 2 ]`,
			path: "a",
			err:  ErrParse,
		},
		{
			name: "empty document",
			src:  ``,
			path: "a",
			err:  ErrParse,
		},
	}
	for _, rt := range rts {
		t.Run(rt.name, func(t *testing.T) {
			out, err := ArrayValues(rt.src, rt.path)
			if rt.err != nil {
				if !errors.Is(err, rt.err) {
					t.Fatalf("got error %v want %v", err, rt.err)
				}
				var e *Error
				if !errors.As(err, &e) || e.Op != "read" || e.Path != rt.path {
					t.Errorf("error does not carry the operation and path: %#v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(rt.out, out); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
