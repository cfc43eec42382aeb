package token

import (
	"unicode/utf8"
)

type scanner struct {
	d    []byte
	i    int
	doc  *PosDoc
	errs []error
}

// Tokenize splits src into tokens, appending them to dst. The bytes of the
// returned tokens concatenate to exactly src: whitespace and comments are
// kept as tokens and input that cannot be recognised becomes TError tokens.
// Tokenize never fails, the second result lists the problems it met.
func Tokenize(dst []Token, src []byte) ([]Token, []error) {
	s := &scanner{d: src, doc: NewPosDoc(src)}
	for s.i < len(s.d) {
		start := s.i
		tt := s.next()
		dst = append(dst, Token{
			Type:  tt,
			Pos:   s.doc.Pos(start),
			Bytes: s.d[start:s.i],
		})
	}
	return dst, s.errs
}

func (s *scanner) at(j int) byte {
	if j < len(s.d) {
		return s.d[j]
	}
	return 0
}

func (s *scanner) errorf(err error) {
	s.errs = append(s.errs, err)
}

// next scans one token starting at s.i and advances past it. It always
// consumes at least one byte.
func (s *scanner) next() TokenType {
	c := s.d[s.i]
	switch {
	case isSpace(c):
		for s.i < len(s.d) && isSpace(s.d[s.i]) {
			s.i++
		}
		return TWhitespace
	case c == '#':
		for s.i < len(s.d) && s.d[s.i] != '\n' {
			s.i++
		}
		return TComment
	case c == '/' && s.at(s.i+1) == '*':
		return s.blockComment()
	case c == '"':
		return s.str()
	case c == '\'' && s.at(s.i+1) == '\'':
		return s.indStr()
	case c == '~' && s.at(s.i+1) == '/':
		s.i++
		if s.pathTail() {
			return TPath
		}
		s.i--
	case c == '<':
		if s.searchPath() {
			return TSearchPath
		}
	}
	if s.path() {
		return TPath
	}
	if isIdentStart(c) {
		if s.uri() {
			return TURI
		}
		start := s.i
		for s.i < len(s.d) && isIdentChar(s.d[s.i]) {
			s.i++
		}
		if kw, ok := keywords[string(s.d[start:s.i])]; ok {
			return kw
		}
		return TIdent
	}
	if isDigit(c) {
		return s.number()
	}
	return s.punct()
}

func (s *scanner) blockComment() TokenType {
	start := s.i
	s.i += 2
	for s.i < len(s.d) {
		if s.d[s.i] == '*' && s.at(s.i+1) == '/' {
			s.i += 2
			return TComment
		}
		s.i++
	}
	s.errorf(UnterminatedErr("comment", s.doc.Pos(start)))
	return TComment
}

func (s *scanner) str() TokenType {
	start := s.i
	s.i++
	for s.i < len(s.d) {
		c := s.d[s.i]
		switch {
		case c == '\\':
			s.i = min(s.i+2, len(s.d))
		case c == '"':
			s.i++
			return TString
		case c == '$' && s.at(s.i+1) == '$':
			s.i += 2
		case c == '$' && s.at(s.i+1) == '{':
			s.i += 2
			s.interpolation()
		default:
			s.i++
		}
	}
	s.errorf(UnterminatedErr("string", s.doc.Pos(start)))
	return TString
}

func (s *scanner) indStr() TokenType {
	start := s.i
	s.i += 2
	for s.i < len(s.d) {
		c := s.d[s.i]
		switch {
		case c == '\'' && s.at(s.i+1) == '\'':
			switch s.at(s.i + 2) {
			case '\'', '$':
				s.i += 3
			case '\\':
				s.i = min(s.i+4, len(s.d))
			default:
				s.i += 2
				return TIndString
			}
		case c == '$' && s.at(s.i+1) == '$':
			s.i += 2
		case c == '$' && s.at(s.i+1) == '{':
			s.i += 2
			s.interpolation()
		default:
			s.i++
		}
	}
	s.errorf(UnterminatedErr("indented string", s.doc.Pos(start)))
	return TIndString
}

// interpolation skips the body of a ${ ... } whose opening has already been
// consumed, including nested braces, strings and comments.
func (s *scanner) interpolation() {
	start := s.i
	depth := 1
	for s.i < len(s.d) {
		switch s.next() {
		case TLCurl, TInterpol:
			depth++
		case TRCurl:
			depth--
			if depth == 0 {
				return
			}
		}
	}
	s.errorf(UnterminatedErr("interpolation", s.doc.Pos(start)))
}

func (s *scanner) searchPath() bool {
	j := s.i + 1
	segStart := j
	for j < len(s.d) {
		c := s.d[j]
		switch {
		case isPathChar(c):
			j++
			continue
		case c == '/' && j > segStart:
			j++
			segStart = j
			continue
		case c == '>' && j > segStart:
			s.i = j + 1
			return true
		}
		return false
	}
	return false
}

// path scans a relative or absolute path such as ./a, ../b/c, /etc or
// foo/bar. It leaves s.i untouched when no path starts here.
func (s *scanner) path() bool {
	j := s.i
	for j < len(s.d) && isPathChar(s.d[j]) {
		j++
	}
	save := s.i
	s.i = j
	if s.pathTail() {
		return true
	}
	s.i = save
	return false
}

// pathTail scans one or more /segment parts starting at s.i.
func (s *scanner) pathTail() bool {
	n := 0
	for s.at(s.i) == '/' {
		c := s.at(s.i + 1)
		if !isPathChar(c) && !(c == '$' && s.at(s.i+2) == '{') {
			break
		}
		s.i++
		for s.i < len(s.d) {
			c := s.d[s.i]
			if isPathChar(c) {
				s.i++
				continue
			}
			if c == '$' && s.at(s.i+1) == '{' {
				s.i += 2
				s.interpolation()
				continue
			}
			break
		}
		n++
	}
	return n > 0
}

func (s *scanner) uri() bool {
	j := s.i
	for j < len(s.d) && isURISchemeChar(s.d[j]) {
		j++
	}
	if s.at(j) != ':' || !isURIChar(s.at(j+1)) {
		return false
	}
	j++
	for j < len(s.d) && isURIChar(s.d[j]) {
		j++
	}
	s.i = j
	return true
}

func (s *scanner) number() TokenType {
	for s.i < len(s.d) && isDigit(s.d[s.i]) {
		s.i++
	}
	tt := TInteger
	if s.at(s.i) == '.' && isDigit(s.at(s.i+1)) {
		tt = TFloat
		s.i++
		for s.i < len(s.d) && isDigit(s.d[s.i]) {
			s.i++
		}
	}
	if c := s.at(s.i); c == 'e' || c == 'E' {
		j := s.i + 1
		if c := s.at(j); c == '+' || c == '-' {
			j++
		}
		if isDigit(s.at(j)) {
			tt = TFloat
			s.i = j
			for s.i < len(s.d) && isDigit(s.d[s.i]) {
				s.i++
			}
		}
	}
	return tt
}

var operators = []struct {
	text string
	tt   TokenType
}{
	{"...", TEllipsis},
	{"${", TInterpol},
	{"->", TImplies},
	{"||", TOrOp},
	{"&&", TAnd},
	{"==", TEqual},
	{"!=", TNotEqual},
	{"<=", TLessEq},
	{">=", TMoreEq},
	{"//", TUpdate},
	{"++", TConcat},
	{"{", TLCurl},
	{"}", TRCurl},
	{"[", TLSquare},
	{"]", TRSquare},
	{"(", TLParen},
	{")", TRParen},
	{"=", TAssign},
	{";", TSemicolon},
	{":", TColon},
	{",", TComma},
	{".", TDot},
	{"@", TAt},
	{"?", TQuestion},
	{"+", TAdd},
	{"-", TSub},
	{"*", TMul},
	{"/", TDiv},
	{"!", TNot},
	{"<", TLess},
	{">", TMore},
}

func (s *scanner) punct() TokenType {
	rest := s.d[s.i:]
	for _, op := range operators {
		if len(rest) >= len(op.text) && string(rest[:len(op.text)]) == op.text {
			s.i += len(op.text)
			return op.tt
		}
	}
	start := s.i
	r, sz := utf8.DecodeRune(rest)
	s.i += sz
	if r == utf8.RuneError && sz <= 1 {
		s.errorf(NewTokenizeErr(ErrBadUTF8, s.doc.Pos(start)))
		return TError
	}
	s.errorf(NewTokenizeErr(ErrUnexpected, s.doc.Pos(start)))
	return TError
}
