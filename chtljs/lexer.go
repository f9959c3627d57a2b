package chtljs

import (
	"fmt"
	"strings"
)

// Kind of enhanced script token.
// ENUM(eof, selector-open, selector-close, arrow, dot, identifier, left-paren, right-paren, comma, string, number, other)
type TokenKind int

type Token struct {
	Kind   TokenKind
	Lexeme string
	Offset int
}

// SyntaxError reports malformed chain, Offset is relative to the text being
// parsed.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

type lexer struct {
	src string
	off int
}

func (l *lexer) skipSpace() {
	for l.off < len(l.src) && isSpace(l.src[l.off]) {
		l.off++
	}
}

// peek returns next token without consuming it.
func (l *lexer) peek() Token {
	save := l.off
	t := l.next()
	l.off = save
	return t
}

func (l *lexer) next() Token {
	l.skipSpace()
	start := l.off
	if l.off >= len(l.src) {
		return Token{Kind: TokenKindEof, Offset: start}
	}
	tok := func(kind TokenKind, n int) Token {
		l.off += n
		return Token{Kind: kind, Lexeme: l.src[start:l.off], Offset: start}
	}

	rest := l.src[l.off:]
	c := rest[0]
	switch {
	case strings.HasPrefix(rest, "{{"):
		return tok(TokenKindSelectorOpen, 2)
	case strings.HasPrefix(rest, "}}"):
		return tok(TokenKindSelectorClose, 2)
	case strings.HasPrefix(rest, "->"):
		return tok(TokenKindArrow, 2)
	case c == '.':
		return tok(TokenKindDot, 1)
	case c == '(':
		return tok(TokenKindLeftParen, 1)
	case c == ')':
		return tok(TokenKindRightParen, 1)
	case c == ',':
		return tok(TokenKindComma, 1)
	case c == '"' || c == '\'' || c == '`':
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
		return tok(TokenKindIdentifier, n)
	default:
		return tok(TokenKindOther, 1)
	}
}

// selector captures raw text after "{{" up to "}}" which is consumed.
func (l *lexer) selector() (string, bool) {
	end := strings.Index(l.src[l.off:], "}}")
	if end < 0 {
		return "", false
	}
	raw := l.src[l.off : l.off+end]
	l.off += end + 2
	return strings.TrimSpace(raw), true
}

// args captures argument list after "(" up to matching ")" which is
// consumed. Arguments are split on top level commas and trimmed.
func (l *lexer) args() ([]string, bool) {
	var (
		args  []string
		depth int
		quote byte
		start = l.off
	)
	for i := l.off; i < len(l.src); i++ {
		c := l.src[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
				continue
			}
			if c != ')' {
				return nil, false
			}
			if last := strings.TrimSpace(l.src[start:i]); last != "" || len(args) > 0 {
				args = append(args, last)
			}
			l.off = i + 1
			return args, true
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(l.src[start:i]))
				start = i + 1
			}
		}
	}
	return nil, false
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
	return c == '_' || c == '$' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
