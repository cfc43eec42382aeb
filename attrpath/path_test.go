package attrpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	pathTests := []struct {
		in  string
		out Path
		err error
	}{
		{in: "home.packages", out: Path{"home", "packages"}},
		{in: "a", out: Path{"a"}},
		{in: `programs."git".enable`, out: Path{"programs", `"git"`, "enable"}},
		{in: `a."b.c".d`, out: Path{"a", `"b.c"`, "d"}},
		{in: `a."b\".c"`, out: Path{"a", `"b\".c"`}},
		{in: `a.${b.c}.d`, out: Path{"a", "${b.c}", "d"}},
		{in: `a.${ {x=1;}.x }`, out: Path{"a", "${ {x=1;}.x }"}},
		{in: "", err: ErrEmpty},
		{in: ".a", err: ErrEmptySegment},
		{in: "a..b", err: ErrEmptySegment},
		{in: "a.", err: ErrEmptySegment},
		{in: `a."b`, err: ErrUnterminated},
		{in: `a.${b`, err: ErrUnterminated},
	}
	for _, pt := range pathTests {
		p, err := Parse(pt.in)
		if pt.err != nil {
			if !errors.Is(err, pt.err) {
				t.Errorf("%q: got error %v want %v", pt.in, err, pt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if diff := cmp.Diff(pt.out, p); diff != "" {
			t.Errorf("%q: (-want +got):\n%s", pt.in, diff)
		}
		if p.String() != pt.in {
			t.Errorf("String: got %q want %q", p.String(), pt.in)
		}
	}
}

func TestPrefix(t *testing.T) {
	p := MustParse("home.packages.extra")
	if !p.HasPrefix(MustParse("home")) || !p.HasPrefix(MustParse("home.packages")) {
		t.Error("missing prefix")
	}
	if !p.HasPrefix(p) {
		t.Error("path is not its own prefix")
	}
	if p.HasPrefix(MustParse("home.packages.extra.more")) {
		t.Error("longer path is a prefix")
	}
	if p.HasPrefix(MustParse("programs")) {
		t.Error("unrelated prefix")
	}
	if got := p.Head(2); !got.Equal(MustParse("home.packages")) {
		t.Errorf("Head: %v", got)
	}
	if got := p.TrimPrefix(1); !got.Equal(MustParse("packages.extra")) {
		t.Errorf("TrimPrefix: %v", got)
	}
	h := p.Head(1)
	_ = append(h, "x")
	if p[1] != "packages" {
		t.Error("Head aliases its receiver")
	}
}

func TestSegmentEqual(t *testing.T) {
	segTests := []struct {
		a, b string
		eq   bool
	}{
		{"git", "git", true},
		{`"git"`, "git", true},
		{`"git"`, `"git"`, true},
		{`"a b"`, "a b", true},
		{"${git}", "git", false},
		{`"${x}"`, "${x}", false},
		{`"a\"b"`, `a"b`, false},
		{"git", "hg", false},
	}
	for _, st := range segTests {
		if got := SegmentEqual(st.a, st.b); got != st.eq {
			t.Errorf("SegmentEqual(%q, %q) = %v", st.a, st.b, got)
		}
	}
	if !MustParse(`programs."git"`).Equal(MustParse("programs.git")) {
		t.Error("quoted path not equal to bare path")
	}
}
