package attrpath

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmpty        = errors.New("empty attribute path")
	ErrEmptySegment = errors.New("empty attribute path segment")
	ErrUnterminated = errors.New("unterminated attribute path segment")
)

// Path is a non-empty sequence of attribute names.
type Path []string

// Parse splits s on the dots that are outside double quotes and outside
// ${...} interpolations.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, ErrEmpty
	}
	var (
		res     Path
		start   int
		quoted  bool
		depth   int
		escaped bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case quoted && c == '\\':
			escaped = true
		case c == '$' && i+1 < len(s) && s[i+1] == '{':
			depth++
			i++
		case depth > 0 && c == '{':
			depth++
		case depth > 0 && c == '}':
			depth--
		case depth > 0:
		case c == '"':
			quoted = !quoted
		case !quoted && c == '.':
			if i == start {
				return nil, fmt.Errorf("%w at offset %d in %q", ErrEmptySegment, i, s)
			}
			res = append(res, s[start:i])
			start = i + 1
		}
	}
	if quoted || depth > 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnterminated, s)
	}
	if start == len(s) {
		return nil, fmt.Errorf("%w at end of %q", ErrEmptySegment, s)
	}
	return append(res, s[start:]), nil
}

func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

func (p Path) Len() int {
	return len(p)
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	return p.HasPrefix(o)
}

// HasPrefix reports whether the first segments of p are those of prefix.
// Every path has itself as a prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if !SegmentEqual(p[i], prefix[i]) {
			return false
		}
	}
	return true
}

// Head returns the first n segments of p.
func (p Path) Head(n int) Path {
	return p[:n:n]
}

// TrimPrefix drops the first n segments of p.
func (p Path) TrimPrefix(n int) Path {
	return p[n:]
}

// SegmentEqual compares two attribute names as Nix would without evaluating
// anything: "a" and a are the same name, "${a}" and a are not.
func SegmentEqual(a, b string) bool {
	return normalize(a) == normalize(b)
}

func normalize(seg string) string {
	if len(seg) < 2 || seg[0] != '"' || seg[len(seg)-1] != '"' {
		return seg
	}
	inner := seg[1 : len(seg)-1]
	if strings.ContainsAny(inner, "\\\"") || strings.Contains(inner, "${") {
		return seg
	}
	return inner
}
