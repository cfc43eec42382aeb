package syntax

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hdn-nix/hdn/token"
)

// GreenElement is an immutable tree element: either a *GreenNode or a
// *GreenToken. Green elements know nothing of their position and are shared
// between trees.
type GreenElement interface {
	Width() int
	String() string
	writeTo(b *strings.Builder)
}

type GreenToken struct {
	typ  token.TokenType
	text string
}

func NewToken(tt token.TokenType, text string) *GreenToken {
	return &GreenToken{typ: tt, text: text}
}

func (t *GreenToken) Type() token.TokenType { return t.typ }
func (t *GreenToken) Text() string          { return t.text }
func (t *GreenToken) Width() int            { return len(t.text) }
func (t *GreenToken) String() string        { return t.text }

func (t *GreenToken) writeTo(b *strings.Builder) {
	b.WriteString(t.text)
}

type GreenNode struct {
	kind     Kind
	children []GreenElement
	width    int
}

// NewNode creates a node owning a copy of children.
func NewNode(kind Kind, children []GreenElement) *GreenNode {
	return newNode(kind, slices.Clone(children))
}

func newNode(kind Kind, children []GreenElement) *GreenNode {
	w := 0
	for _, c := range children {
		w += c.Width()
	}
	return &GreenNode{kind: kind, children: children, width: w}
}

func (g *GreenNode) Kind() Kind { return g.kind }
func (g *GreenNode) Width() int { return g.width }

// Len returns the number of child elements.
func (g *GreenNode) Len() int { return len(g.children) }

func (g *GreenNode) Child(i int) GreenElement { return g.children[i] }

// Children returns the child elements in order. The returned slice is a copy.
func (g *GreenNode) Children() []GreenElement {
	return slices.Clone(g.children)
}

func (g *GreenNode) String() string {
	b := &strings.Builder{}
	b.Grow(g.width)
	g.writeTo(b)
	return b.String()
}

func (g *GreenNode) writeTo(b *strings.Builder) {
	for _, c := range g.children {
		c.writeTo(b)
	}
}

// InsertChild returns a copy of g with e inserted so that it becomes child i.
// i may equal Len() to append.
func (g *GreenNode) InsertChild(i int, e GreenElement) *GreenNode {
	if i < 0 || i > len(g.children) {
		panic(fmt.Sprintf("syntax: insert index %d out of range [0,%d]", i, len(g.children)))
	}
	cs := make([]GreenElement, 0, len(g.children)+1)
	cs = append(cs, g.children[:i]...)
	cs = append(cs, e)
	cs = append(cs, g.children[i:]...)
	return newNode(g.kind, cs)
}

// ReplaceChild returns a copy of g with child i replaced by e.
func (g *GreenNode) ReplaceChild(i int, e GreenElement) *GreenNode {
	g.checkIndex(i)
	cs := slices.Clone(g.children)
	cs[i] = e
	return newNode(g.kind, cs)
}

// RemoveChild returns a copy of g without child i.
func (g *GreenNode) RemoveChild(i int) *GreenNode {
	g.checkIndex(i)
	cs := make([]GreenElement, 0, len(g.children)-1)
	cs = append(cs, g.children[:i]...)
	cs = append(cs, g.children[i+1:]...)
	return newNode(g.kind, cs)
}

func (g *GreenNode) checkIndex(i int) {
	if i < 0 || i >= len(g.children) {
		panic(fmt.Sprintf("syntax: child index %d out of range [0,%d)", i, len(g.children)))
	}
}

// IndexOf returns the index of the first child of g that is e or is
// structurally equal to e, or -1.
func (g *GreenNode) IndexOf(e GreenElement) int {
	for i, c := range g.children {
		if c == e {
			return i
		}
	}
	for i, c := range g.children {
		if Equal(c, e) {
			return i
		}
	}
	return -1
}

// Equal reports whether a and b have the same shape: the same node kinds,
// token types and token texts in the same order.
func Equal(a, b GreenElement) bool {
	if a == b {
		return true
	}
	switch x := a.(type) {
	case *GreenToken:
		y, ok := b.(*GreenToken)
		return ok && x.typ == y.typ && x.text == y.text
	case *GreenNode:
		y, ok := b.(*GreenNode)
		if !ok || x.kind != y.kind || x.width != y.width || len(x.children) != len(y.children) {
			return false
		}
		for i := range x.children {
			if !Equal(x.children[i], y.children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Dump renders the tree rooted at g one element per line, indented by depth.
// It is meant for tests and debugging.
func Dump(g *GreenNode) string {
	b := &strings.Builder{}
	dump(b, g, 0)
	return b.String()
}

func dump(b *strings.Builder, e GreenElement, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	switch x := e.(type) {
	case *GreenNode:
		fmt.Fprintf(b, "%s\n", x.kind)
		for _, c := range x.children {
			dump(b, c, depth+1)
		}
	case *GreenToken:
		fmt.Fprintf(b, "%s %q\n", x.typ, x.text)
	}
}
