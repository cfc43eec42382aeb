package edit

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hdn-nix/hdn/attrpath"
	"github.com/hdn-nix/hdn/parse"
	"github.com/hdn-nix/hdn/syntax"
)

func base(t *testing.T, src string) *syntax.Node {
	t.Helper()
	b := ConfigBase(parse.ParseString(src))
	if b == nil {
		t.Fatalf("no attribute set in %q", src)
	}
	return b
}

func TestConfigBase(t *testing.T) {
	cbTests := []struct {
		src  string
		want string
	}{
		{src: `{ a = 1; }`, want: `{ a = 1; }`},
		{src: "{ pkgs, ... }:\n{ a = 1; }\n", want: `{ a = 1; }`},
		{src: `f { a = 1; }`, want: `{ a = 1; }`},
		{src: `let x = 1; in { b = 2; }`, want: `{ b = 2; }`},
		{src: `with import <nixpkgs> { }; { c = 3; }`, want: `{ c = 3; }`},
		{src: `# header
rec { d = 4; }`, want: `rec { d = 4; }`},
	}
	for _, ct := range cbTests {
		if got := base(t, ct.src).Text(); got != ct.want {
			t.Errorf("%q: got %q want %q", ct.src, got, ct.want)
		}
	}
	if ConfigBase(parse.ParseString(`[ 1 ]`)) != nil {
		t.Error("found a set in a list of numbers")
	}
}

func TestKey(t *testing.T) {
	b := base(t, `{ a."b".${c} = 1; }`)
	kv := b.FirstChild(syntax.KindAttrpathValue)
	got := Key(kv.FirstChild(syntax.KindAttrpath))
	if diff := cmp.Diff(attrpath.Path{"a", `"b"`, "${c}"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

type findTest struct {
	name string
	src  string
	path string
	out  string
	none bool
}

func TestFindAttr(t *testing.T) {
	fts := []findTest{
		{
			name: "exact",
			src:  `{ a.b = [ x ]; c = 1; }`,
			path: "a.b",
			out:  `a.b = [ x ];`,
		},
		{
			name: "key is a prefix",
			src:  `{ a = { b = { c = 1; }; d = 2; }; }`,
			path: "a.d",
			out:  `d = 2;`,
		},
		{
			name: "key is a prefix, deeper",
			src:  `{ a = { b.c = 1; }; }`,
			path: "a.b.c",
			out:  `b.c = 1;`,
		},
		{
			name: "query is a prefix, one binding",
			src:  `{ a.b.c = 1; z = 0; }`,
			path: "a.b",
			out:  `a.b = { c = 1; };`,
		},
		{
			name: "query is a prefix, several bindings",
			src:  `{ a.b.c = 1; a.b.d = "x"; }`,
			path: "a.b",
			out:  "a.b = {\n  c = 1;\n  d = \"x\";\n};",
		},
		{
			name: "exact match with a set value",
			src:  `{ a = { x = 1; y.z = 2; }; }`,
			path: "a",
			out:  "a = {\n  x = 1;\n  y.z = 2;\n};",
		},
		{
			name: "exact non set wins over accumulated",
			src:  `{ a.b = 1; a = [ q ]; }`,
			path: "a",
			out:  `a = [ q ];`,
		},
		{
			name: "quoted segment",
			src:  `{ programs."git".enable = true; }`,
			path: "programs.git.enable",
			out:  `programs."git".enable = true;`,
		},
		{
			name: "absent",
			src:  `{ a = 1; }`,
			path: "b",
			none: true,
		},
		{
			name: "prefix without the rest",
			src:  `{ a = { b = 1; }; }`,
			path: "a.c",
			none: true,
		},
		{
			name: "inherit is ignored",
			src:  `{ inherit a; }`,
			path: "a",
			none: true,
		},
	}
	for _, ft := range fts {
		t.Run(ft.name, func(t *testing.T) {
			got := FindAttr(base(t, ft.src), attrpath.MustParse(ft.path))
			if ft.none {
				if got != nil {
					t.Fatalf("expected nothing, got %q", got.Text())
				}
				return
			}
			if got == nil {
				t.Fatal("not found")
			}
			if got.Kind() != syntax.KindAttrpathValue {
				t.Errorf("got kind %s", got.Kind())
			}
			if got.Text() != ft.out {
				t.Errorf("got %q want %q", got.Text(), ft.out)
			}
		})
	}
}
