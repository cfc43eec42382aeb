package syntax

import (
	"github.com/hdn-nix/hdn/token"
)

// Builder assembles a green tree bottom-up from a stream of StartNode, Token
// and FinishNode calls. The zero value is ready to use.
type Builder struct {
	stack []*frame
	root  *GreenNode
}

type frame struct {
	kind     Kind
	children []GreenElement
}

// Checkpoint marks a position in the children of the currently open node, so
// that a node started later with StartNodeAt can adopt what follows it.
type Checkpoint int

func (b *Builder) StartNode(k Kind) {
	b.stack = append(b.stack, &frame{kind: k})
}

func (b *Builder) Token(tt token.TokenType, text string) {
	b.add(NewToken(tt, text))
}

func (b *Builder) FinishNode() {
	n := len(b.stack)
	if n == 0 {
		panic("syntax: FinishNode without open node")
	}
	f := b.stack[n-1]
	b.stack = b.stack[:n-1]
	g := newNode(f.kind, f.children)
	if len(b.stack) == 0 {
		b.root = g
		return
	}
	b.add(g)
}

func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint(len(b.top().children))
}

// StartNodeAt opens a node of kind k whose first children are the elements
// added to the current node since cp.
func (b *Builder) StartNodeAt(cp Checkpoint, k Kind) {
	parent := b.top()
	adopted := append([]GreenElement(nil), parent.children[cp:]...)
	parent.children = parent.children[:cp]
	b.stack = append(b.stack, &frame{kind: k, children: adopted})
}

// Finish returns the completed tree. Every started node must be finished.
func (b *Builder) Finish() *GreenNode {
	if len(b.stack) != 0 || b.root == nil {
		panic("syntax: unbalanced builder")
	}
	return b.root
}

func (b *Builder) add(e GreenElement) {
	f := b.top()
	f.children = append(f.children, e)
}

func (b *Builder) top() *frame {
	if len(b.stack) == 0 {
		panic("syntax: no open node")
	}
	return b.stack[len(b.stack)-1]
}
