package syntax

import (
	"github.com/hdn-nix/hdn/token"
)

// Node is a GreenNode placed in a tree: it knows its parent, its index among
// the parent's child elements and its byte offset in the document.
type Node struct {
	green  *GreenNode
	parent *Node
	index  int
	offset int
}

// Token is a GreenToken placed in a tree.
type Token struct {
	green  *GreenToken
	parent *Node
	index  int
	offset int
}

// Element is a positioned *Node or *Token.
type Element interface {
	Text() string
	Parent() *Node
	Index() int
	Offset() int
}

func NewRoot(g *GreenNode) *Node {
	return &Node{green: g}
}

func (n *Node) Green() *GreenNode { return n.green }
func (n *Node) Kind() Kind        { return n.green.kind }
func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Index() int        { return n.index }
func (n *Node) Offset() int       { return n.offset }
func (n *Node) Text() string      { return n.green.String() }
func (n *Node) String() string    { return n.green.String() }

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// ChildElements returns every child of n, nodes and tokens, in source order.
func (n *Node) ChildElements() []Element {
	res := make([]Element, 0, len(n.green.children))
	off := n.offset
	for i, c := range n.green.children {
		switch x := c.(type) {
		case *GreenNode:
			res = append(res, &Node{green: x, parent: n, index: i, offset: off})
		case *GreenToken:
			res = append(res, &Token{green: x, parent: n, index: i, offset: off})
		}
		off += c.Width()
	}
	return res
}

// Children returns the child nodes of n, skipping tokens.
func (n *Node) Children() []*Node {
	var res []*Node
	off := n.offset
	for i, c := range n.green.children {
		if x, ok := c.(*GreenNode); ok {
			res = append(res, &Node{green: x, parent: n, index: i, offset: off})
		}
		off += c.Width()
	}
	return res
}

// FirstChild returns the first child node of kind k, or nil.
func (n *Node) FirstChild(k Kind) *Node {
	for _, c := range n.Children() {
		if c.Kind() == k {
			return c
		}
	}
	return nil
}

// LastChild returns the last child node of n, or nil.
func (n *Node) LastChild() *Node {
	cs := n.Children()
	if len(cs) == 0 {
		return nil
	}
	return cs[len(cs)-1]
}

// ReplaceWith returns the root of a new tree in which n is replaced by g.
// The ancestors of n are rebuilt, everything else is shared with the
// original tree, which is left unchanged.
func (n *Node) ReplaceWith(g *GreenNode) *Node {
	if n.parent == nil {
		return NewRoot(g)
	}
	return n.parent.ReplaceWith(n.parent.green.ReplaceChild(n.index, g))
}

func (t *Token) Green() *GreenToken     { return t.green }
func (t *Token) Type() token.TokenType { return t.green.typ }
func (t *Token) Parent() *Node         { return t.parent }
func (t *Token) Index() int            { return t.index }
func (t *Token) Offset() int           { return t.offset }
func (t *Token) Text() string          { return t.green.text }
func (t *Token) String() string        { return t.green.text }
