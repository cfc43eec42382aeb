package config

import (
	"errors"
	"fmt"
)

var (
	ErrInvalid     = errors.New("invalid configuration")
	ErrFormat      = errors.New("unsupported configuration format")
	ErrNoConfigDir = errors.New("neither $XDG_CONFIG_HOME nor $HOME is set")
)

// ParseError is a configuration file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
