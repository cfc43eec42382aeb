package syntax

import "fmt"

// Kind tags a syntax node.
type Kind int

const (
	KindRoot Kind = iota
	KindError
	KindAttrSet
	KindAttrpathValue
	KindAttrpath
	KindIdent
	KindString
	KindDynamic
	KindInherit
	KindInheritFrom
	KindList
	KindWith
	KindLetIn
	KindLambda
	KindPattern
	KindPatEntry
	KindPatBind
	KindApply
	KindSelect
	KindHasAttr
	KindParen
	KindLiteral
	KindPath
	KindBinOp
	KindUnaryOp
	KindIfElse
	KindAssert
)

var kindNames = map[Kind]string{
	KindRoot:          "Root",
	KindError:         "Error",
	KindAttrSet:       "AttrSet",
	KindAttrpathValue: "AttrpathValue",
	KindAttrpath:      "Attrpath",
	KindIdent:         "Ident",
	KindString:        "String",
	KindDynamic:       "Dynamic",
	KindInherit:       "Inherit",
	KindInheritFrom:   "InheritFrom",
	KindList:          "List",
	KindWith:          "With",
	KindLetIn:         "LetIn",
	KindLambda:        "Lambda",
	KindPattern:       "Pattern",
	KindPatEntry:      "PatEntry",
	KindPatBind:       "PatBind",
	KindApply:         "Apply",
	KindSelect:        "Select",
	KindHasAttr:       "HasAttr",
	KindParen:         "Paren",
	KindLiteral:       "Literal",
	KindPath:          "Path",
	KindBinOp:         "BinOp",
	KindUnaryOp:       "UnaryOp",
	KindIfElse:        "IfElse",
	KindAssert:        "Assert",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
