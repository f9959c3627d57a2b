package chtljs

import (
	"strings"
)

// ParseChain parses text made of a single chain. Trailing semicolon is
// allowed.
func ParseChain(src string) (*Chain, error) {
	l := &lexer{src: src}
	chain, err := parseChain(l)
	if err != nil {
		return nil, err
	}
	if l.peek().Kind == TokenKindOther && l.peek().Lexeme == ";" {
		l.next()
	}
	if t := l.next(); t.Kind != TokenKindEof {
		return nil, &SyntaxError{Offset: t.Offset, Msg: "unexpected " + t.Kind.String() + " " + t.Lexeme}
	}
	return chain, nil
}

// parseChain reads optional selector and as many invocations as follow it.
// Chain operator not followed by a call ends the chain and is left
// unconsumed.
func parseChain(l *lexer) (*Chain, error) {
	chain := &Chain{}
	if l.peek().Kind == TokenKindSelectorOpen {
		open := l.next()
		raw, ok := l.selector()
		if !ok {
			return nil, &SyntaxError{Offset: open.Offset, Msg: "unterminated selector"}
		}
		if raw == "" {
			return nil, &SyntaxError{Offset: open.Offset, Msg: "empty selector"}
		}
		chain.Selector = &Selector{Raw: raw}
	}

	for {
		save := l.off
		inv, ok, err := parseInvocation(l)
		if err != nil {
			return nil, err
		}
		if !ok {
			l.off = save
			return chain, nil
		}
		chain.Invocations = append(chain.Invocations, inv)
	}
}

func parseInvocation(l *lexer) (Invocation, bool, error) {
	op := l.peek()
	if op.Kind != TokenKindArrow && op.Kind != TokenKindDot {
		return Invocation{}, false, nil
	}
	l.next()
	name := l.next()
	if name.Kind != TokenKindIdentifier || l.peek().Kind != TokenKindLeftParen {
		return Invocation{}, false, nil
	}
	l.next()
	args, ok := l.args()
	if !ok {
		return Invocation{}, false, &SyntaxError{Offset: name.Offset, Msg: "unterminated argument list of " + name.Lexeme}
	}
	return Invocation{
		Name: name.Lexeme,
		Args: args,
		Raw:  strings.TrimSpace(l.src[op.Offset:l.off]),
	}, true, nil
}
