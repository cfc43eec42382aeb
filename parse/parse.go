package parse

import (
	"fmt"

	"github.com/hdn-nix/hdn/syntax"
	"github.com/hdn-nix/hdn/token"
)

// tEOF is what peek returns past the last significant token.
const tEOF token.TokenType = -1

func Parse(d []byte, opts ...ParseOption) *syntax.Node {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, errs := token.Tokenize(nil, d)
	p := &parser{
		toks: toks,
		doc:  token.NewPosDoc(d),
		errs: errs,
	}
	g := p.parseRoot()
	if pOpts.errs != nil {
		*pOpts.errs = append(*pOpts.errs, p.errs...)
	}
	return syntax.NewRoot(g)
}

func ParseString(s string, opts ...ParseOption) *syntax.Node {
	return Parse([]byte(s), opts...)
}

type parser struct {
	toks []token.Token
	i    int
	b    syntax.Builder
	doc  *token.PosDoc
	errs []error
}

func (p *parser) parseRoot() *syntax.GreenNode {
	p.b.StartNode(syntax.KindRoot)
	if p.peek() != tEOF {
		p.parseExpr()
	}
	for p.peek() != tEOF {
		p.errorNode()
	}
	p.trivia()
	p.b.FinishNode()
	return p.b.Finish()
}

// trivia moves pending whitespace and comments into the open node.
func (p *parser) trivia() {
	for p.i < len(p.toks) && p.toks[p.i].Type.IsTrivia() {
		t := &p.toks[p.i]
		p.b.Token(t.Type, string(t.Bytes))
		p.i++
	}
}

func (p *parser) peekTok(n int) *token.Token {
	for j := p.i; j < len(p.toks); j++ {
		if p.toks[j].Type.IsTrivia() {
			continue
		}
		if n == 0 {
			return &p.toks[j]
		}
		n--
	}
	return nil
}

func (p *parser) peekN(n int) token.TokenType {
	t := p.peekTok(n)
	if t == nil {
		return tEOF
	}
	return t.Type
}

func (p *parser) peek() token.TokenType {
	return p.peekN(0)
}

func (p *parser) bump() {
	p.trivia()
	if p.i >= len(p.toks) {
		return
	}
	t := &p.toks[p.i]
	p.b.Token(t.Type, string(t.Bytes))
	p.i++
}

// startNode opens a node after the pending trivia, so that nodes never start
// with whitespace or comments.
func (p *parser) startNode(k syntax.Kind) {
	p.trivia()
	p.b.StartNode(k)
}

func (p *parser) finishNode() {
	p.b.FinishNode()
}

func (p *parser) checkpoint() syntax.Checkpoint {
	p.trivia()
	return p.b.Checkpoint()
}

func (p *parser) errorf(format string, args ...any) {
	pos := p.doc.End()
	if t := p.peekTok(0); t != nil {
		pos = t.Pos
	}
	p.errs = append(p.errs, &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: *pos})
}

func (p *parser) expect(tt token.TokenType, what string) bool {
	if p.peek() == tt {
		p.bump()
		return true
	}
	p.errorf("expected %s", what)
	return false
}

// errorNode consumes the next token into an Error node.
func (p *parser) errorNode() {
	t := p.peekTok(0)
	if t == nil {
		return
	}
	p.errorf("unexpected %q", t.Bytes)
	p.startNode(syntax.KindError)
	p.bump()
	p.finishNode()
}

// missing records an error and leaves an empty Error node where an
// expression was expected.
func (p *parser) missing(what string) {
	p.errorf("expected %s", what)
	p.startNode(syntax.KindError)
	p.finishNode()
}

func (p *parser) parseExpr() {
	switch p.peek() {
	case token.TLet:
		p.parseLetIn()
		return
	case token.TWith:
		p.parseKeywordBody(syntax.KindWith)
		return
	case token.TAssert:
		p.parseKeywordBody(syntax.KindAssert)
		return
	case token.TIf:
		p.parseIf()
		return
	case token.TIdent:
		if n := p.peekN(1); n == token.TColon || n == token.TAt {
			p.parseLambda()
			return
		}
	case token.TLCurl:
		if p.isPattern() {
			p.parseLambda()
			return
		}
	}
	p.parseBinary(0)
}

// isPattern decides whether the '{' at hand opens a lambda pattern rather
// than an attribute set.
func (p *parser) isPattern() bool {
	switch p.peekN(1) {
	case token.TEllipsis:
		return true
	case token.TRCurl:
		n := p.peekN(2)
		return n == token.TColon || n == token.TAt
	case token.TIdent:
		switch p.peekN(2) {
		case token.TComma, token.TQuestion:
			return true
		case token.TRCurl:
			n := p.peekN(3)
			return n == token.TColon || n == token.TAt
		}
	}
	return false
}

func (p *parser) parseLambda() {
	p.startNode(syntax.KindLambda)
	if p.peek() == token.TIdent && p.peekN(1) != token.TAt {
		p.ident()
	} else {
		p.parsePattern()
	}
	p.expect(token.TColon, "':'")
	p.parseExpr()
	p.finishNode()
}

func (p *parser) parsePattern() {
	p.startNode(syntax.KindPattern)
	if p.peek() == token.TIdent {
		p.startNode(syntax.KindPatBind)
		p.ident()
		p.bump()
		p.finishNode()
	}
	if !p.expect(token.TLCurl, "'{'") {
		p.finishNode()
		return
	}
loop:
	for {
		switch p.peek() {
		case token.TRCurl:
			p.bump()
			break loop
		case token.TColon, tEOF:
			p.errorf("expected '}'")
			break loop
		case token.TEllipsis, token.TComma:
			p.bump()
		case token.TIdent:
			p.startNode(syntax.KindPatEntry)
			p.ident()
			if p.peek() == token.TQuestion {
				p.bump()
				p.parseExpr()
			}
			p.finishNode()
		default:
			p.errorNode()
		}
	}
	if p.peek() == token.TAt {
		p.startNode(syntax.KindPatBind)
		p.bump()
		if p.peek() == token.TIdent {
			p.ident()
		} else {
			p.errorf("expected identifier")
		}
		p.finishNode()
	}
	p.finishNode()
}

func (p *parser) parseLetIn() {
	p.startNode(syntax.KindLetIn)
	p.bump()
	p.parseBindings(token.TIn)
	p.expect(token.TIn, "'in'")
	p.parseExpr()
	p.finishNode()
}

// parseKeywordBody parses `with e; body` and `assert e; body`.
func (p *parser) parseKeywordBody(k syntax.Kind) {
	p.startNode(k)
	p.bump()
	p.parseExpr()
	p.expect(token.TSemicolon, "';'")
	p.parseExpr()
	p.finishNode()
}

func (p *parser) parseIf() {
	p.startNode(syntax.KindIfElse)
	p.bump()
	p.parseExpr()
	p.expect(token.TThen, "'then'")
	p.parseExpr()
	p.expect(token.TElse, "'else'")
	p.parseExpr()
	p.finishNode()
}

type binLevel struct {
	ops   []token.TokenType
	right bool
}

// binLevels lists the binary operators from the loosest to the tightest.
// Logical negation sits just above notLevel.
var binLevels = []binLevel{
	{ops: []token.TokenType{token.TImplies}, right: true},
	{ops: []token.TokenType{token.TOrOp}},
	{ops: []token.TokenType{token.TAnd}},
	{ops: []token.TokenType{token.TEqual, token.TNotEqual}},
	{ops: []token.TokenType{token.TLess, token.TLessEq, token.TMore, token.TMoreEq}},
	{ops: []token.TokenType{token.TUpdate}, right: true},
	{ops: []token.TokenType{token.TAdd, token.TSub}},
	{ops: []token.TokenType{token.TMul, token.TDiv}},
	{ops: []token.TokenType{token.TConcat}, right: true},
}

const notLevel = 6

func (lv *binLevel) has(tt token.TokenType) bool {
	for _, op := range lv.ops {
		if op == tt {
			return true
		}
	}
	return false
}

func (p *parser) parseBinary(level int) {
	if level == len(binLevels) {
		p.parseHasAttr()
		return
	}
	if level == notLevel && p.peek() == token.TNot {
		p.startNode(syntax.KindUnaryOp)
		p.bump()
		p.parseBinary(level)
		p.finishNode()
		return
	}
	lv := &binLevels[level]
	cp := p.checkpoint()
	p.parseBinary(level + 1)
	for lv.has(p.peek()) {
		p.b.StartNodeAt(cp, syntax.KindBinOp)
		p.bump()
		if lv.right {
			p.parseBinary(level)
			p.finishNode()
			return
		}
		p.parseBinary(level + 1)
		p.finishNode()
	}
}

func (p *parser) parseHasAttr() {
	cp := p.checkpoint()
	p.parseNegate()
	for p.peek() == token.TQuestion {
		p.b.StartNodeAt(cp, syntax.KindHasAttr)
		p.bump()
		p.parseAttrpath()
		p.finishNode()
	}
}

func (p *parser) parseNegate() {
	if p.peek() == token.TSub {
		p.startNode(syntax.KindUnaryOp)
		p.bump()
		p.parseNegate()
		p.finishNode()
		return
	}
	p.parseApply()
}

func (p *parser) parseApply() {
	cp := p.checkpoint()
	p.parseSelect()
	for startsOperand(p.peek()) {
		p.b.StartNodeAt(cp, syntax.KindApply)
		p.parseSelect()
		p.finishNode()
	}
}

// startsOperand reports whether tt can begin a function argument or a list
// element.
func startsOperand(tt token.TokenType) bool {
	switch tt {
	case token.TIdent, token.TInteger, token.TFloat, token.TString, token.TIndString,
		token.TPath, token.TSearchPath, token.TURI,
		token.TLParen, token.TLSquare, token.TLCurl, token.TRec:
		return true
	}
	return false
}

func (p *parser) parseSelect() {
	cp := p.checkpoint()
	p.parsePrimary()
	if p.peek() != token.TDot {
		return
	}
	p.b.StartNodeAt(cp, syntax.KindSelect)
	p.bump()
	p.startNode(syntax.KindAttrpath)
	p.attr()
	for p.peek() == token.TDot {
		p.bump()
		p.attr()
	}
	p.finishNode()
	if p.peek() == token.TOr {
		p.bump()
		p.parseSelect()
	}
	p.finishNode()
}

func (p *parser) parsePrimary() {
	switch p.peek() {
	case token.TIdent, token.TOr:
		p.ident()
	case token.TInteger, token.TFloat, token.TURI:
		p.wrap(syntax.KindLiteral)
	case token.TString, token.TIndString:
		p.wrap(syntax.KindString)
	case token.TPath, token.TSearchPath:
		p.wrap(syntax.KindPath)
	case token.TLParen:
		p.startNode(syntax.KindParen)
		p.bump()
		p.parseExpr()
		p.expect(token.TRParen, "')'")
		p.finishNode()
	case token.TLSquare:
		p.parseList()
	case token.TLCurl, token.TRec:
		p.parseSet()
	case token.TLet, token.TWith, token.TIf, token.TAssert:
		p.parseExpr()
	case tEOF, token.TRCurl, token.TRSquare, token.TRParen, token.TSemicolon,
		token.TThen, token.TElse, token.TIn, token.TComma:
		p.missing("expression")
	default:
		p.errorNode()
	}
}

// wrap puts the next token in a node of kind k.
func (p *parser) wrap(k syntax.Kind) {
	p.startNode(k)
	p.bump()
	p.finishNode()
}

func (p *parser) ident() {
	p.wrap(syntax.KindIdent)
}

func (p *parser) parseList() {
	p.startNode(syntax.KindList)
	p.bump()
	for {
		tt := p.peek()
		switch {
		case tt == token.TRSquare:
			p.bump()
			p.finishNode()
			return
		case tt == tEOF || tt == token.TRCurl || tt == token.TRParen:
			p.errorf("expected ']'")
			p.finishNode()
			return
		case startsOperand(tt) || tt == token.TOr:
			p.parseSelect()
		default:
			p.errorNode()
		}
	}
}

func (p *parser) parseSet() {
	p.startNode(syntax.KindAttrSet)
	if p.peek() == token.TRec {
		p.bump()
	}
	if !p.expect(token.TLCurl, "'{'") {
		p.finishNode()
		return
	}
	p.parseBindings(token.TRCurl)
	p.expect(token.TRCurl, "'}'")
	p.finishNode()
}

// parseBindings parses bindings and inherits up to, not including, end.
func (p *parser) parseBindings(end token.TokenType) {
	for {
		switch p.peek() {
		case end, tEOF:
			return
		case token.TInherit:
			p.parseInherit()
		case token.TIdent, token.TOr, token.TString, token.TInterpol:
			p.parseBinding()
		default:
			p.errorNode()
		}
	}
}

func (p *parser) parseBinding() {
	p.startNode(syntax.KindAttrpathValue)
	p.parseAttrpath()
	p.expect(token.TAssign, "'='")
	p.parseExpr()
	p.expect(token.TSemicolon, "';'")
	p.finishNode()
}

func (p *parser) parseAttrpath() {
	p.startNode(syntax.KindAttrpath)
	p.attr()
	for p.peek() == token.TDot {
		p.bump()
		p.attr()
	}
	p.finishNode()
}

// attr parses one attribute name: an identifier, a string or ${expr}.
func (p *parser) attr() {
	switch p.peek() {
	case token.TIdent, token.TOr:
		p.ident()
	case token.TString:
		p.wrap(syntax.KindString)
	case token.TInterpol:
		p.startNode(syntax.KindDynamic)
		p.bump()
		p.parseExpr()
		p.expect(token.TRCurl, "'}'")
		p.finishNode()
	default:
		p.errorf("expected attribute name")
	}
}

func (p *parser) parseInherit() {
	p.startNode(syntax.KindInherit)
	p.bump()
	if p.peek() == token.TLParen {
		p.startNode(syntax.KindInheritFrom)
		p.bump()
		p.parseExpr()
		p.expect(token.TRParen, "')'")
		p.finishNode()
	}
	for {
		switch p.peek() {
		case token.TIdent, token.TOr, token.TString, token.TInterpol:
			p.attr()
			continue
		}
		break
	}
	p.expect(token.TSemicolon, "';'")
	p.finishNode()
}
