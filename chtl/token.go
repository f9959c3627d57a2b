package chtl

import "fmt"

// Kind of CHTL token.
// ENUM(eof, illegal, identifier, string, number, left-brace, right-brace, left-bracket, right-bracket, colon, equals, semicolon, at, comment, keyword-text, keyword-style, keyword-script, raw)
type TokenKind int

// Pos is token position, Line and Column are 1-based, Column counts runes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Kind   TokenKind
	Lexeme string
	Pos    Pos
}

func (t Token) String() string {
	if t.Kind == TokenKindEof {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}

// ParseError is fatal structural error, it aborts parsing of the whole
// document.
type ParseError struct {
	Expected TokenKind
	Found    Token
	Msg      string
}

func (e *ParseError) Error() string {
	s := fmt.Sprintf("%s: expected %s, found %s", e.Found.Pos, e.Expected, e.Found)
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
