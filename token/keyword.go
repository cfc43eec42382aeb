package token

var keywords = map[string]TokenType{
	"if":      TIf,
	"then":    TThen,
	"else":    TElse,
	"assert":  TAssert,
	"with":    TWith,
	"let":     TLet,
	"in":      TIn,
	"rec":     TRec,
	"inherit": TInherit,
	"or":      TOr,
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '\'' || c == '-'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isPathChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '.' || c == '_' || c == '-' || c == '+'
}

func isURISchemeChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '+' || c == '.' || c == '-'
}

func isURIChar(c byte) bool {
	if isIdentStart(c) || isDigit(c) {
		return true
	}
	switch c {
	case '%', '/', '?', ':', '@', '&', '=', '+', '$', ',', '-', '_', '.', '!', '~', '*', '\'':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
