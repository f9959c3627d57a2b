// Package chtl parses structural documents, resolves templates referenced
// from them and renders resolved documents into HTML.
package chtl

import (
	"fmt"
	"strings"

	"chtlc/ast"
	"chtlc/registry"
	"chtlc/scope"
)

// Parser is recursive descent parser of structural documents. It holds one
// token of lookahead: the lexer never runs ahead of the current token, so
// raw bodies can be captured right after opening brace.
type Parser struct {
	lex *lexer
	m   *scope.Machine
	tok Token
}

func NewParser(src string) *Parser {
	m := scope.New()
	p := &Parser{lex: newLexer(src, m), m: m}
	p.tok = p.lex.Next()
	return p
}

// Parse parses complete structural document. Returned error is always
// *ParseError.
func Parse(src string) (*ast.Document, error) {
	return NewParser(src).Parse()
}

func (p *Parser) Parse() (*ast.Document, error) {
	doc := &ast.Document{}
	for p.peek().Kind != TokenKindEof {
		n, err := p.parseTopLevel()
		if err != nil {
			return nil, err
		}
		if n != nil {
			doc.Children = append(doc.Children, n)
		}
	}
	return doc, nil
}

func (p *Parser) peek() Token {
	return p.tok
}

func (p *Parser) advance() Token {
	t := p.tok
	p.tok = p.lex.Next()
	return t
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind TokenKind) (Token, error) {
	if p.tok.Kind != kind {
		return p.tok, &ParseError{Expected: kind, Found: p.tok}
	}
	return p.advance(), nil
}

// expectLexeme is expect which also checks token text.
func (p *Parser) expectLexeme(kind TokenKind, lexeme string) (Token, error) {
	if p.tok.Kind != kind || p.tok.Lexeme != lexeme {
		return p.tok, &ParseError{Expected: kind, Found: p.tok, Msg: fmt.Sprintf("want %q", lexeme)}
	}
	return p.advance(), nil
}

// raw must be called while current token is "{" which opens the block. The
// body is captured in state s, which is released before the token after
// closing "}" is lexed.
func (p *Parser) raw(s scope.State) (string, error) {
	if p.tok.Kind != TokenKindLeftBrace {
		return "", &ParseError{Expected: TokenKindLeftBrace, Found: p.tok}
	}
	g := p.m.Enter(s)
	body, ok := p.lex.Raw()
	g.Release()
	if !ok {
		return "", &ParseError{Expected: TokenKindRightBrace, Found: Token{Kind: TokenKindEof, Pos: p.lex.pos()}, Msg: "unterminated block"}
	}
	p.tok = p.lex.Next()
	return body.Lexeme, nil
}

func (p *Parser) parseTopLevel() (ast.Node, error) {
	switch p.peek().Kind {
	case TokenKindLeftBracket:
		return p.parseBracket()
	case TokenKindKeywordStyle:
		p.advance()
		body, err := p.raw(scope.StateStyle)
		if err != nil {
			return nil, err
		}
		return &ast.GlobalStyle{Body: body}, nil
	case TokenKindKeywordScript:
		p.advance()
		body, err := p.raw(scope.StateScript)
		if err != nil {
			return nil, err
		}
		return &ast.GlobalScript{Code: body}, nil
	case TokenKindIdentifier, TokenKindKeywordText, TokenKindAt, TokenKindComment:
		return p.parseItem()
	case TokenKindSemicolon:
		p.advance()
		return nil, nil
	default:
		return nil, &ParseError{Expected: TokenKindIdentifier, Found: p.peek()}
	}
}

// parseItem parses single body item other than attribute or local style.
func (p *Parser) parseItem() (ast.Node, error) {
	switch p.peek().Kind {
	case TokenKindKeywordText:
		p.advance()
		body, err := p.raw(scope.StateText)
		if err != nil {
			return nil, err
		}
		return &ast.Text{Content: unquote(body)}, nil
	case TokenKindKeywordScript:
		p.advance()
		body, err := p.raw(scope.StateScript)
		if err != nil {
			return nil, err
		}
		return &ast.Script{Code: body}, nil
	case TokenKindAt:
		return p.parseUse()
	case TokenKindLeftBracket:
		return p.parseBracket()
	case TokenKindComment:
		return &ast.Comment{Content: p.advance().Lexeme}, nil
	case TokenKindIdentifier:
		return p.parseElement(p.advance())
	default:
		return nil, &ParseError{Expected: TokenKindIdentifier, Found: p.peek()}
	}
}

func (p *Parser) parseElement(name Token) (ast.Node, error) {
	el := &ast.Element{Tag: name.Lexeme}

	g := p.m.Enter(scope.StateElement)
	defer g.Release()

	if _, err := p.expect(TokenKindLeftBrace); err != nil {
		return nil, err
	}
	for !p.match(TokenKindRightBrace, TokenKindEof) {
		switch p.peek().Kind {
		case TokenKindKeywordStyle:
			p.advance()
			body, err := p.raw(scope.StateStyle)
			if err != nil {
				return nil, err
			}
			el.StyleBlocks = append(el.StyleBlocks, body)
		case TokenKindSemicolon:
			p.advance()
		case TokenKindIdentifier:
			name := p.advance()
			if p.match(TokenKindColon, TokenKindEquals) {
				el.Attributes = append(el.Attributes, p.parseAttribute(name))
				continue
			}
			child, err := p.parseElement(name)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		default:
			child, err := p.parseItem()
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		}
	}
	if _, err := p.expect(TokenKindRightBrace); err != nil {
		return nil, err
	}
	return el, nil
}

// parseAttribute is called with ":" or "=" as current token.
func (p *Parser) parseAttribute(name Token) ast.Attribute {
	g := p.m.Enter(scope.StateAttribute)
	value := p.lex.Value()
	g.Release()
	p.tok = p.lex.Next()
	if p.match(TokenKindSemicolon) {
		p.advance()
	}
	return ast.Attribute{Name: name.Lexeme, Value: unquote(value.Lexeme)}
}

var quoteEscapes = strings.NewReplacer(`\\`, `\`, `\"`, `"`, `\'`, `'`)

// unquote trims s and removes one pair of surrounding quotes. Escaped quotes
// and backslashes of quoted value are unescaped.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	u := registry.Unquote(s)
	if len(u) == len(s) {
		return u
	}
	return quoteEscapes.Replace(u)
}

func (p *Parser) parseUse() (ast.Node, error) {
	p.advance()
	if _, err := p.expectLexeme(TokenKindIdentifier, "Element"); err != nil {
		return nil, err
	}
	name, err := p.expect(TokenKindIdentifier)
	if err != nil {
		return nil, err
	}
	if p.match(TokenKindSemicolon) {
		p.advance()
	}
	return &ast.Use{Kind: ast.TemplateKindElement, Name: name.Lexeme}, nil
}

// parseBracket parses declarations opened by "[": templates, custom styles
// and origin blocks. Templates may only be declared at top level, origin
// blocks may appear anywhere an element may.
func (p *Parser) parseBracket() (ast.Node, error) {
	section, kind, name, err := p.parseHeader()
	if err != nil {
		return nil, err
	}
	if section.Lexeme == "Origin" {
		return p.parseOrigin(kind, name)
	}
	if p.m.Within(scope.StateElement) {
		return nil, &ParseError{Expected: TokenKindIdentifier, Found: section, Msg: "templates must be declared at top level"}
	}
	return p.parseTemplate(section.Lexeme == "Custom", kind, name)
}

// parseHeader parses "[Section] @Kind Name" leaving token after the header
// as current token. Name is optional.
func (p *Parser) parseHeader() (section, kind Token, name string, err error) {
	g := p.m.Enter(scope.StateTemplate)
	defer g.Release()

	p.advance()
	if section, err = p.expect(TokenKindIdentifier); err != nil {
		return
	}
	switch section.Lexeme {
	case "Template", "Custom", "Origin":
	default:
		err = &ParseError{Expected: TokenKindIdentifier, Found: section, Msg: "want Template, Custom or Origin"}
		return
	}
	if _, err = p.expect(TokenKindRightBracket); err != nil {
		return
	}
	if _, err = p.expect(TokenKindAt); err != nil {
		return
	}
	if kind, err = p.expect(TokenKindIdentifier); err != nil {
		return
	}
	if p.match(TokenKindIdentifier) {
		name = p.advance().Lexeme
	}
	return
}

func (p *Parser) parseTemplate(custom bool, kindTok Token, name string) (ast.Node, error) {
	kind, err := ast.ParseTemplateKind(strings.ToLower(kindTok.Lexeme))
	if err != nil {
		return nil, &ParseError{Expected: TokenKindIdentifier, Found: kindTok, Msg: "template kind must be Style, Element or Var"}
	}
	if custom && kind != ast.TemplateKindStyle {
		return nil, &ParseError{Expected: TokenKindIdentifier, Found: kindTok, Msg: "only @Style may be custom"}
	}
	if name == "" {
		return nil, &ParseError{Expected: TokenKindIdentifier, Found: p.peek(), Msg: "template name"}
	}
	decl := &ast.TemplateDecl{Kind: kind, Name: name, Custom: custom}

	if decl.Kind != ast.TemplateKindElement {
		if decl.Body, err = p.raw(scope.StateTemplate); err != nil {
			return nil, err
		}
		return decl, nil
	}

	g := p.m.Enter(scope.StateElement)
	defer g.Release()

	if _, err := p.expect(TokenKindLeftBrace); err != nil {
		return nil, err
	}
	for !p.match(TokenKindRightBrace, TokenKindEof) {
		if p.match(TokenKindSemicolon) {
			p.advance()
			continue
		}
		n, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		decl.Elements = append(decl.Elements, n)
	}
	if _, err := p.expect(TokenKindRightBrace); err != nil {
		return nil, err
	}
	return decl, nil
}

var originStates = map[ast.OriginKind]scope.State{
	ast.OriginKindHtml:       scope.StateText,
	ast.OriginKindStyle:      scope.StateStyle,
	ast.OriginKindJavascript: scope.StateScript,
}

// parseOrigin parses body of "[Origin] @Kind Name { ... }" or reference
// "[Origin] @Kind Name;".
func (p *Parser) parseOrigin(kindTok Token, name string) (ast.Node, error) {
	kind, err := ast.ParseOriginKind(strings.ToLower(kindTok.Lexeme))
	if err != nil {
		return nil, &ParseError{Expected: TokenKindIdentifier, Found: kindTok, Msg: "origin kind must be Html, Style or JavaScript"}
	}
	o := &ast.Origin{Kind: kind, Name: name}
	if p.match(TokenKindSemicolon) {
		if name == "" {
			return nil, &ParseError{Expected: TokenKindIdentifier, Found: p.peek(), Msg: "origin reference needs a name"}
		}
		p.advance()
		o.Ref = true
		return o, nil
	}
	if o.Body, err = p.raw(originStates[kind]); err != nil {
		return nil, err
	}
	return o, nil
}

// IsStructural reports whether source looks like CHTL: its first significant
// token is an identifier followed by "{", "[", "@" or a "--" comment.
func IsStructural(src string) bool {
	l := newLexer(src, scope.New())
	t := l.Next()
	switch t.Kind {
	case TokenKindIdentifier:
		return l.Next().Kind == TokenKindLeftBrace
	case TokenKindKeywordText, TokenKindKeywordStyle, TokenKindKeywordScript:
		return true
	case TokenKindLeftBracket, TokenKindAt, TokenKindComment:
		return true
	}
	return false
}
