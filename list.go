package hdn

import (
	"fmt"
	"os"
	"strconv"

	"github.com/expr-lang/expr"

	"github.com/hdn-nix/hdn/edit"
	"github.com/hdn-nix/hdn/parse"
	"github.com/hdn-nix/hdn/syntax"
)

// Package is an element of a package list as seen by filters.
type Package struct {
	Index int    `expr:"index"`
	Text  string `expr:"text"`
	// Name is the last attribute name of a reference like pkgs.ripgrep,
	// or empty when the element is some other expression.
	Name string `expr:"name"`
}

// List returns the elements of the list bound to attr. When where is not
// empty only the elements for which the boolean expression where holds are
// returned. Expressions see the fields of [Package] as index, text and name.
func List(content, attr, where string) ([]Package, error) {
	vals, err := edit.ArrayValues(content, attr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadNix, err)
	}
	pkgs := make([]Package, len(vals))
	for i, v := range vals {
		pkgs[i] = Package{Index: i, Text: v, Name: refName(v)}
	}
	if where == "" {
		return pkgs, nil
	}
	opts := append(filterOpts(), expr.Env(Package{}), expr.AsBool())
	prg, err := expr.Compile(where, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrFilter, where, err)
	}
	res := []Package{}
	for _, p := range pkgs {
		out, err := expr.Run(prg, p)
		if err != nil {
			return nil, fmt.Errorf("%w %q on %s: %w", ErrFilter, where, p.Text, err)
		}
		if out.(bool) {
			res = append(res, p)
		}
	}
	return res, nil
}

func filterOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func refName(text string) string {
	root := parse.ParseString(text)
	cs := root.Children()
	if len(cs) != 1 {
		return ""
	}
	switch n := cs[0]; n.Kind() {
	case syntax.KindIdent:
		return n.Text()
	case syntax.KindSelect:
		ap := n.FirstChild(syntax.KindAttrpath)
		if ap == nil {
			return ""
		}
		key := edit.Key(ap)
		if key.Len() == 0 {
			return ""
		}
		last := key[key.Len()-1]
		if s, err := strconv.Unquote(last); err == nil {
			return s
		}
		return last
	}
	return ""
}
