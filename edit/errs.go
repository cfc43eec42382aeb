package edit

import (
	"errors"
	"fmt"
)

var (
	// ErrParse means the document has no attribute set to edit.
	ErrParse = errors.New("no attribute set found")
	// ErrNoAttr means the attribute path does not resolve to a binding.
	ErrNoAttr = errors.New("attribute not found")
	// ErrArray means the attribute value is not a list.
	ErrArray = errors.New("attribute value is not a list")
)

// Error records the operation and attribute path that failed.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func newError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Err: err}
}
