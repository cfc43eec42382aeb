package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokTest struct {
	in    string
	types []TokenType
}

func tokTypes(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenizeTypes(t *testing.T) {
	tts := []tokTest{
		{in: `a`, types: []TokenType{TIdent}},
		{in: `pkgs.htop`, types: []TokenType{TIdent, TDot, TIdent}},
		{in: `home-manager`, types: []TokenType{TIdent}},
		{in: `x'`, types: []TokenType{TIdent}},
		{in: `42 4.2 1e3`, types: []TokenType{TInteger, TWhitespace, TFloat, TWhitespace, TFloat}},
		{in: `"a\"b"`, types: []TokenType{TString}},
		{in: `"a ${b + "c"} d"`, types: []TokenType{TString}},
		{in: `''
  x ''${y} ${z}
''`, types: []TokenType{TIndString}},
		{in: `./a/b`, types: []TokenType{TPath}},
		{in: `../x`, types: []TokenType{TPath}},
		{in: `/etc/nixos`, types: []TokenType{TPath}},
		{in: `~/src`, types: []TokenType{TPath}},
		{in: `<nixpkgs>`, types: []TokenType{TSearchPath}},
		{in: `<nixpkgs/lib>`, types: []TokenType{TSearchPath}},
		{in: `a < b`, types: []TokenType{TIdent, TWhitespace, TLess, TWhitespace, TIdent}},
		{in: `https://example.org/x.tar.gz`, types: []TokenType{TURI}},
		{in: `# hi
a`, types: []TokenType{TComment, TWhitespace, TIdent}},
		{in: `/* x */a`, types: []TokenType{TComment, TIdent}},
		{in: `with let in rec inherit or`, types: []TokenType{
			TWith, TWhitespace, TLet, TWhitespace, TIn, TWhitespace,
			TRec, TWhitespace, TInherit, TWhitespace, TOr}},
		{in: `a//b`, types: []TokenType{TIdent, TUpdate, TIdent}},
		{in: `a ++ b`, types: []TokenType{TIdent, TWhitespace, TConcat, TWhitespace, TIdent}},
		{in: `{...}:`, types: []TokenType{TLCurl, TEllipsis, TRCurl, TColon}},
		{in: `${a}`, types: []TokenType{TInterpol, TIdent, TRCurl}},
		{in: `!a -> b`, types: []TokenType{TNot, TIdent, TWhitespace, TImplies, TWhitespace, TIdent}},
		{in: `a->b`, types: []TokenType{TIdent, TMore, TIdent}},
		{in: `a==b!=c`, types: []TokenType{TIdent, TEqual, TIdent, TNotEqual, TIdent}},
	}
	for _, tt := range tts {
		toks, errs := Tokenize(nil, []byte(tt.in))
		if len(errs) != 0 {
			t.Errorf("%q: unexpected errors %v", tt.in, errs)
			continue
		}
		if diff := cmp.Diff(tt.types, tokTypes(toks)); diff != "" {
			t.Errorf("%q: types mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenizeLossless(t *testing.T) {
	ins := []string{
		"{ config, pkgs, ... }:\n{\n  home.packages = with pkgs; [\n    htop # top\n    ripgrep\n  ];\n}\n",
		"let x = \"${y}\"; in x",
		"\"unterminated",
		"''never closed",
		"a ` b",
		"/* open",
		"\xff\xfe",
		"é = 1;",
		"",
	}
	for _, in := range ins {
		toks, _ := Tokenize(nil, []byte(in))
		var b strings.Builder
		for i := range toks {
			b.WriteString(toks[i].String())
		}
		if b.String() != in {
			t.Errorf("got %q want %q", b.String(), in)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	errTests := []struct {
		in   string
		want error
	}{
		{in: `"abc`, want: ErrUnterminated},
		{in: `''abc`, want: ErrUnterminated},
		{in: `/* abc`, want: ErrUnterminated},
		{in: "a ` b", want: ErrUnexpected},
		{in: "\xff", want: ErrBadUTF8},
	}
	for _, et := range errTests {
		toks, errs := Tokenize(nil, []byte(et.in))
		if len(errs) == 0 {
			t.Errorf("%q: expected error", et.in)
			continue
		}
		if !errors.Is(errs[0], et.want) {
			t.Errorf("%q: got %v want %v", et.in, errs[0], et.want)
		}
		if len(toks) == 0 {
			t.Errorf("%q: no tokens", et.in)
		}
	}
}

func TestPos(t *testing.T) {
	d := []byte("ab\ncd\n\nef")
	doc := NewPosDoc(d)
	posTests := []struct {
		off       int
		line, col int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{6, 2, 0},
		{7, 3, 0},
		{8, 3, 1},
	}
	for _, pt := range posTests {
		p := doc.Pos(pt.off)
		if p.Line() != pt.line || p.Col() != pt.col {
			t.Errorf("offset %d: got %d:%d want %d:%d", pt.off, p.Line(), p.Col(), pt.line, pt.col)
		}
	}
	if !strings.Contains(doc.Pos(4).String(), "line=2, col=2") {
		t.Errorf("unexpected position string %s", doc.Pos(4))
	}
}
