package chtl

import (
	"strings"
	"unicode/utf8"

	"chtlc/scope"
)

var keywords = map[string]TokenKind{
	"text":   TokenKindKeywordText,
	"style":  TokenKindKeywordStyle,
	"script": TokenKindKeywordScript,
}

// lexer produces tokens on demand. Whether "text", "style" and "script" are
// keywords depends on the state machine shared with the parser: they are
// keywords only in document or element state and only when followed by "{".
type lexer struct {
	src  string
	off  int
	line int
	col  int
	m    *scope.Machine
}

func newLexer(src string, m *scope.Machine) *lexer {
	return &lexer{src: src, line: 1, col: 1, m: m}
}

func (l *lexer) pos() Pos {
	return Pos{Offset: l.off, Line: l.line, Column: l.col}
}

// advance moves n bytes forward keeping line and column.
func (l *lexer) advance(n int) {
	for end := l.off + n; l.off < end && l.off < len(l.src); l.off++ {
		c := l.src[l.off]
		switch {
		case c == '\n':
			l.line++
			l.col = 1
		case utf8.RuneStart(c):
			l.col++
		}
	}
}

func (l *lexer) skipTrivia() {
	for l.off < len(l.src) {
		rest := l.src[l.off:]
		switch {
		case isSpace(rest[0]):
			l.advance(1)
		case strings.HasPrefix(rest, "//"):
			end := strings.IndexByte(rest, '\n')
			if end < 0 {
				end = len(rest)
			}
			l.advance(end)
		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				l.advance(len(rest))
			} else {
				l.advance(end + 4)
			}
		default:
			return
		}
	}
}

// Next returns next significant token.
func (l *lexer) Next() Token {
	l.skipTrivia()
	start := l.pos()
	if l.off >= len(l.src) {
		return Token{Kind: TokenKindEof, Pos: start}
	}

	tok := func(kind TokenKind, n int) Token {
		lexeme := l.src[l.off : l.off+n]
		l.advance(n)
		return Token{Kind: kind, Lexeme: lexeme, Pos: start}
	}

	rest := l.src[l.off:]
	c := rest[0]
	switch {
	case c == '{':
		return tok(TokenKindLeftBrace, 1)
	case c == '}':
		return tok(TokenKindRightBrace, 1)
	case c == '[':
		return tok(TokenKindLeftBracket, 1)
	case c == ']':
		return tok(TokenKindRightBracket, 1)
	case c == ':':
		return tok(TokenKindColon, 1)
	case c == '=':
		return tok(TokenKindEquals, 1)
	case c == ';':
		return tok(TokenKindSemicolon, 1)
	case c == '@':
		return tok(TokenKindAt, 1)
	case strings.HasPrefix(rest, "--"):
		end := strings.IndexByte(rest, '\n')
		if end < 0 {
			end = len(rest)
		}
		t := tok(TokenKindComment, end)
		t.Lexeme = strings.TrimSpace(strings.TrimPrefix(t.Lexeme, "--"))
		return t
	case c == '"' || c == '\'':
		return tok(TokenKindString, quotedLen(rest))
	case isDigit(c):
		n := 1
		for n < len(rest) && (isDigit(rest[n]) || rest[n] == '.') {
			n++
		}
		return tok(TokenKindNumber, n)
	case isIdentStart(c):
		n := 1
		for n < len(rest) && isIdentPart(rest[n]) {
			n++
		}
		kind := TokenKindIdentifier
		if kw, ok := keywords[rest[:n]]; ok && l.keywordsAllowed() && l.braceFollows(n) {
			kind = kw
		}
		return tok(kind, n)
	default:
		_, n := utf8.DecodeRuneInString(rest)
		return tok(TokenKindIllegal, n)
	}
}

func (l *lexer) keywordsAllowed() bool {
	switch l.m.Current() {
	case scope.StateDocument, scope.StateElement:
		return true
	}
	return false
}

// braceFollows reports whether the first significant byte after n bytes
// from current offset is "{".
func (l *lexer) braceFollows(n int) bool {
	for i := l.off + n; i < len(l.src); i++ {
		if !isSpace(l.src[i]) {
			return l.src[i] == '{'
		}
	}
	return false
}

// Raw captures text up to the brace matching the one just consumed and
// consumes closing brace. Nested brace pairs are kept in the body. In style,
// script and template states braces inside quoted strings and comments do
// not count. It returns false when input ends before matching brace.
func (l *lexer) Raw() (Token, bool) {
	start := l.pos()
	quotes, lineComments := l.rawSyntax()
	depth := 1
	for i := l.off; i < len(l.src); i++ {
		rest := l.src[i:]
		switch c := rest[0]; {
		case strings.IndexByte(quotes, c) >= 0:
			i += quotedLen(rest) - 1
		case quotes != "" && strings.HasPrefix(rest, "/*"):
			if end := strings.Index(rest[2:], "*/"); end >= 0 {
				i += end + 3
			} else {
				i = len(l.src)
			}
		case lineComments && strings.HasPrefix(rest, "//"):
			if end := strings.IndexByte(rest, '\n'); end >= 0 {
				i += end
			} else {
				i = len(l.src)
			}
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				body := l.src[l.off:i]
				l.advance(i - l.off + 1)
				return Token{Kind: TokenKindRaw, Lexeme: body, Pos: start}, true
			}
		}
	}
	body := l.src[l.off:]
	l.advance(len(body))
	return Token{Kind: TokenKindRaw, Lexeme: body, Pos: start}, false
}

// rawSyntax returns quote characters which open strings in current state and
// whether "//" starts a comment there. Text keeps every byte literal.
func (l *lexer) rawSyntax() (quotes string, lineComments bool) {
	switch l.m.Current() {
	case scope.StateScript:
		return "\"'`", true
	case scope.StateStyle, scope.StateTemplate:
		return "\"'", false
	}
	return "", false
}

// Value captures attribute value up to ";" or "}" outside of quotes. The
// terminator is not consumed.
func (l *lexer) Value() Token {
	start := l.pos()
	var quote byte
	i := l.off
	for ; i < len(l.src); i++ {
		c := l.src[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		if c == '"' || c == '\'' {
			quote = c
			continue
		}
		if c == ';' || c == '}' || c == '\n' {
			break
		}
	}
	if i > len(l.src) {
		i = len(l.src)
	}
	body := l.src[l.off:i]
	l.advance(len(body))
	return Token{Kind: TokenKindRaw, Lexeme: body, Pos: start}
}

func quotedLen(s string) int {
	q := s[0]
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case q:
			return i + 1
		}
	}
	return len(s)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c >= utf8.RuneSelf
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-'
}
