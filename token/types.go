package token

import (
	"fmt"
)

type TokenType int

const (
	TError TokenType = iota
	TWhitespace
	TComment
	TIdent
	TInteger
	TFloat
	TString
	TIndString
	TPath
	TSearchPath
	TURI

	TIf
	TThen
	TElse
	TAssert
	TWith
	TLet
	TIn
	TRec
	TInherit
	TOr

	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TLParen
	TRParen
	TInterpol
	TAssign
	TSemicolon
	TColon
	TComma
	TDot
	TEllipsis
	TAt
	TQuestion

	TConcat
	TUpdate
	TAdd
	TSub
	TMul
	TDiv
	TNot
	TAnd
	TOrOp
	TImplies
	TEqual
	TNotEqual
	TLess
	TLessEq
	TMore
	TMoreEq
)

var typeNames = map[TokenType]string{
	TError:      "TError",
	TWhitespace: "TWhitespace",
	TComment:    "TComment",
	TIdent:      "TIdent",
	TInteger:    "TInteger",
	TFloat:      "TFloat",
	TString:     "TString",
	TIndString:  "TIndString",
	TPath:       "TPath",
	TSearchPath: "TSearchPath",
	TURI:        "TURI",
	TIf:         "TIf",
	TThen:       "TThen",
	TElse:       "TElse",
	TAssert:     "TAssert",
	TWith:       "TWith",
	TLet:        "TLet",
	TIn:         "TIn",
	TRec:        "TRec",
	TInherit:    "TInherit",
	TOr:         "TOr",
	TLCurl:      "TLCurl",
	TRCurl:      "TRCurl",
	TLSquare:    "TLSquare",
	TRSquare:    "TRSquare",
	TLParen:     "TLParen",
	TRParen:     "TRParen",
	TInterpol:   "TInterpol",
	TAssign:     "TAssign",
	TSemicolon:  "TSemicolon",
	TColon:      "TColon",
	TComma:      "TComma",
	TDot:        "TDot",
	TEllipsis:   "TEllipsis",
	TAt:         "TAt",
	TQuestion:   "TQuestion",
	TConcat:     "TConcat",
	TUpdate:     "TUpdate",
	TAdd:        "TAdd",
	TSub:        "TSub",
	TMul:        "TMul",
	TDiv:        "TDiv",
	TNot:        "TNot",
	TAnd:        "TAnd",
	TOrOp:       "TOrOp",
	TImplies:    "TImplies",
	TEqual:      "TEqual",
	TNotEqual:   "TNotEqual",
	TLess:       "TLess",
	TLessEq:     "TLessEq",
	TMore:       "TMore",
	TMoreEq:     "TMoreEq",
}

func (t TokenType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsTrivia reports whether tokens of this type carry no meaning for the
// parser: whitespace and comments.
func (t TokenType) IsTrivia() bool {
	return t == TWhitespace || t == TComment
}

// IsKeyword reports whether t is one of the reserved words.
func (t TokenType) IsKeyword() bool {
	return t >= TIf && t <= TOr
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the verbatim source text of the token.
func (t *Token) String() string {
	return string(t.Bytes)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
