package edit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hdn-nix/hdn/attrpath"
	"github.com/hdn-nix/hdn/parse"
	"github.com/hdn-nix/hdn/syntax"
	"github.com/hdn-nix/hdn/token"
)

const (
	elementIndent = "    "
	bindingIndent = "  "
	emptyList     = "[\n  ]"
)

// AddToArray appends items, in order, to the list bound to path and returns
// the new document. Each item is Nix source placed on its own line. When path
// is not bound, a binding to an empty list is created first.
func AddToArray(src, path string, items []string) (string, error) {
	return addToArray(src, path, items, true)
}

func addToArray(src, path string, items []string, create bool) (string, error) {
	q, base, b, err := resolve("add", src, path)
	if err != nil {
		return "", err
	}
	if b == nil {
		if !create {
			return "", newError("add", path, ErrNoAttr)
		}
		return addToArray(AddValue(base, q, emptyList).Text(), path, items, false)
	}
	list := findList(b)
	if list == nil {
		return "", newError("add", path, ErrArray)
	}
	g := list.Green()
	for _, item := range items {
		var ok bool
		g, ok = insertElement(g, item)
		if !ok {
			return "", newError("add", path, fmt.Errorf("%w: no closing bracket", ErrArray))
		}
	}
	return list.ReplaceWith(g).Text(), nil
}

// insertElement puts item on a new line before the closing bracket of list.
// When the bracket sits on its own line the item goes before that line
// break, so no blank line is left behind.
func insertElement(list *syntax.GreenNode, item string) (*syntax.GreenNode, bool) {
	for i := 0; i < list.Len(); i++ {
		t, ok := list.Child(i).(*syntax.GreenToken)
		if !ok || t.Type() != token.TRSquare {
			continue
		}
		if i > 0 {
			if prev, ok := list.Child(i - 1).(*syntax.GreenToken); ok && strings.Contains(prev.Text(), "\n") {
				i--
			}
		}
		es := append([]syntax.GreenElement{syntax.NewToken(token.TWhitespace, "\n"+elementIndent)},
			splice(syntax.KindList, "[", item, "]")...)
		return insertChildren(list, i, es), true
	}
	return list, false
}

// AddValue returns the root of a new tree in which base has the binding
// `q = val;` on a line of its own. The binding goes after the line of the
// binding of base sharing the longest prefix with q, or last if there is no
// such binding.
func AddValue(base *syntax.Node, q attrpath.Path, val string) *syntax.Node {
	g := base.Green()
	index := g.Len() - 2
	if near := nearestBinding(base, q); near != nil {
		for i := near.Index(); i < g.Len(); i++ {
			if t, ok := g.Child(i).(*syntax.GreenToken); ok && strings.Contains(t.Text(), "\n") {
				index = i
				break
			}
		}
	}
	index = min(max(index, 1), g.Len())
	es := append([]syntax.GreenElement{syntax.NewToken(token.TWhitespace, "\n"+bindingIndent)},
		splice(syntax.KindAttrSet, "{", fmt.Sprintf("%s = %s;", q, val), "}")...)
	return base.ReplaceWith(insertChildren(g, index, es))
}

// nearestBinding returns the first binding of base whose key starts with the
// longest possible prefix of q.
func nearestBinding(base *syntax.Node, q attrpath.Path) *syntax.Node {
	bindings := base.Children()
	for n := q.Len(); n >= 1; n-- {
		head := q.Head(n)
		for _, c := range bindings {
			if c.Kind() != syntax.KindAttrpathValue {
				continue
			}
			if key, _ := binding(c); key.HasPrefix(head) {
				return c
			}
		}
	}
	return nil
}

// RemoveFromArray removes from the list bound to path every element whose
// text is one of items. Removing nothing is not an error.
func RemoveFromArray(src, path string, items []string) (string, error) {
	_, _, b, err := resolve("remove", src, path)
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", newError("remove", path, ErrNoAttr)
	}
	list := findList(b)
	if list == nil {
		return "", newError("remove", path, ErrArray)
	}
	g := list.Green()
	var idx []int
	for i := 0; i < g.Len(); i++ {
		if n, ok := g.Child(i).(*syntax.GreenNode); ok && slices.Contains(items, n.String()) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return src, nil
	}
	removed := 0
	for _, i := range idx {
		at := i - removed
		g = g.RemoveChild(at)
		removed++
		if at == 0 {
			continue
		}
		// drop the line break that led to the element as well
		if t, ok := g.Child(at - 1).(*syntax.GreenToken); ok && strings.Contains(t.Text(), "\n") {
			g = g.RemoveChild(at - 1)
			removed++
		}
	}
	return list.ReplaceWith(g).Text(), nil
}

func insertChildren(g *syntax.GreenNode, i int, es []syntax.GreenElement) *syntax.GreenNode {
	for j, e := range es {
		g = g.InsertChild(i+j, e)
	}
	return g
}

// splice parses body between open and close as a node of kind k and
// returns what the parser put between the delimiters. If body does not stay
// between them, its text is returned in a single Error node.
func splice(k syntax.Kind, open, body, close string) []syntax.GreenElement {
	root := parse.ParseString(open + body + close)
	if n := root.FirstChild(k); n != nil && n.Green().Width() == root.Green().Width() {
		g := n.Green()
		if g.Len() >= 2 && isToken(g.Child(0), open) && isToken(g.Child(g.Len()-1), close) {
			return g.Children()[1 : g.Len()-1]
		}
	}
	return []syntax.GreenElement{
		syntax.NewNode(syntax.KindError, []syntax.GreenElement{syntax.NewToken(token.TError, body)}),
	}
}

func isToken(e syntax.GreenElement, text string) bool {
	t, ok := e.(*syntax.GreenToken)
	return ok && t.Text() == text
}
