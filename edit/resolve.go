package edit

import (
	"fmt"
	"strings"

	"github.com/hdn-nix/hdn/attrpath"
	"github.com/hdn-nix/hdn/parse"
	"github.com/hdn-nix/hdn/syntax"
)

// ConfigBase returns the attribute set that edits of the tree under n apply
// to: n itself if it is a set, else its first child that is a set, else the
// first set found depth first below n. It returns nil if there is none.
func ConfigBase(n *syntax.Node) *syntax.Node {
	if n.Kind() == syntax.KindAttrSet {
		return n
	}
	cs := n.Children()
	for _, c := range cs {
		if c.Kind() == syntax.KindAttrSet {
			return c
		}
	}
	for _, c := range cs {
		if b := ConfigBase(c); b != nil {
			return b
		}
	}
	return nil
}

// Key returns the segments of an Attrpath node as written in the source.
func Key(n *syntax.Node) attrpath.Path {
	var res attrpath.Path
	for _, c := range n.Children() {
		switch c.Kind() {
		case syntax.KindIdent, syntax.KindString, syntax.KindDynamic:
			res = append(res, c.Text())
		}
	}
	return res
}

// binding splits an AttrpathValue node into its key and value. The value is
// nil when the binding has none.
func binding(n *syntax.Node) (attrpath.Path, *syntax.Node) {
	var (
		key   attrpath.Path
		value *syntax.Node
	)
	for _, c := range n.Children() {
		if c.Kind() == syntax.KindAttrpath && key == nil {
			key = Key(c)
			continue
		}
		value = c
	}
	return key, value
}

type entry struct {
	key, value string
}

// FindAttr finds the binding holding the value of q among the bindings of
// base.
//
// A binding whose key is q is returned as is unless its value is an
// attribute set. A binding whose key is a prefix of q is searched
// recursively for the rest of q. Bindings whose keys extend q, and the
// bindings inside a set bound to q, are gathered: if nothing was returned
// directly, FindAttr returns a binding of q to a set holding the gathered
// bindings, parsed from text and detached from base's tree. It returns nil
// when q is not bound at all.
func FindAttr(base *syntax.Node, q attrpath.Path) *syntax.Node {
	var acc []entry
	for _, child := range base.Children() {
		if child.Kind() != syntax.KindAttrpathValue {
			continue
		}
		key, value := binding(child)
		if key.Len() == 0 {
			continue
		}
		switch {
		case key.Equal(q):
			if value == nil || value.Kind() != syntax.KindAttrSet {
				return child
			}
			acc = appendSetEntries(acc, value)
		case key.Len() < q.Len() && q.HasPrefix(key):
			if value == nil {
				continue
			}
			nested := ConfigBase(value)
			if nested == nil {
				continue
			}
			if res := FindAttr(nested, q.TrimPrefix(key.Len())); res != nil {
				return res
			}
		case key.Len() > q.Len() && key.HasPrefix(q):
			if value == nil {
				continue
			}
			acc = append(acc, entry{key: key.TrimPrefix(q.Len()).String(), value: value.Text()})
		}
	}
	if len(acc) == 0 {
		return nil
	}
	return synthesize(q, acc)
}

func appendSetEntries(acc []entry, set *syntax.Node) []entry {
	for _, n := range set.Children() {
		if n.Kind() != syntax.KindAttrpathValue {
			continue
		}
		kn := n.FirstChild(syntax.KindAttrpath)
		_, value := binding(n)
		if kn == nil || value == nil {
			continue
		}
		acc = append(acc, entry{key: kn.Text(), value: value.Text()})
	}
	return acc
}

func synthesize(q attrpath.Path, acc []entry) *syntax.Node {
	var src string
	if len(acc) == 1 {
		src = fmt.Sprintf("{%s = { %s = %s; }; }", q, acc[0].key, acc[0].value)
	} else {
		lines := make([]string, len(acc))
		for i, e := range acc {
			lines[i] = fmt.Sprintf("  %s = %s;", e.key, e.value)
		}
		src = fmt.Sprintf("{ %s = {\n%s\n}; }", q, strings.Join(lines, "\n"))
	}
	set := parse.ParseString(src).FirstChild(syntax.KindAttrSet)
	if set == nil {
		return nil
	}
	return set.FirstChild(syntax.KindAttrpathValue)
}

// findList returns the list n binds, looking through with-expressions.
func findList(n *syntax.Node) *syntax.Node {
	for _, c := range n.Children() {
		switch c.Kind() {
		case syntax.KindWith:
			return findList(c)
		case syntax.KindList:
			return c
		}
	}
	return nil
}

// resolve runs the steps shared by every operation: parse src, pick the
// config base and look q up in it. The returned binding is nil if q is not
// bound.
func resolve(op, src, path string) (attrpath.Path, *syntax.Node, *syntax.Node, error) {
	q, err := attrpath.Parse(path)
	if err != nil {
		return nil, nil, nil, newError(op, path, fmt.Errorf("%w: %w", ErrNoAttr, err))
	}
	base := ConfigBase(parse.ParseString(src))
	if base == nil {
		return nil, nil, nil, newError(op, path, ErrParse)
	}
	return q, base, FindAttr(base, q), nil
}
