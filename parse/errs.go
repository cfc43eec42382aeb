package parse

import (
	"errors"
	"fmt"

	"github.com/hdn-nix/hdn/token"
)

var (
	ErrParse  = errors.New("parse error")
	ErrSyntax = fmt.Errorf("%w: syntax", ErrParse)
)

// SyntaxError describes input the parser had to recover from. The tree is
// still built: the offending text sits in an Error node.
type SyntaxError struct {
	Msg string
	Pos token.Pos
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrSyntax, e.Msg, e.Pos.String())
}
