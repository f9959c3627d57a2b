// Package lint runs tree-sitter grammars over generated output and reports
// syntax errors. It never changes what it checks.
package lint

import (
	"fmt"
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// Grammar used to check text.
// ENUM(html, css, javascript)
type Language int

// Issue is a syntax problem, Line and Column are 1-based.
type Issue struct {
	Line    uint
	Column  uint
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%d:%d: %s", i.Line, i.Column, i.Message)
}

var (
	languages = map[Language]*sitter.Language{
		LanguageHtml:       sitter.NewLanguage(tree_sitter_html.Language()),
		LanguageCss:        sitter.NewLanguage(tree_sitter_css.Language()),
		LanguageJavascript: sitter.NewLanguage(tree_sitter_javascript.Language()),
	}
	pools = map[Language]*sync.Pool{}
)

func init() {
	for lang, grammar := range languages {
		pools[lang] = &sync.Pool{
			New: func() any {
				p := sitter.NewParser()
				if err := p.SetLanguage(grammar); err != nil {
					panic(fmt.Sprintf("failed to set %s language: %v", lang, err))
				}
				return p
			},
		}
	}
}

// Check parses src with grammar of lang and returns issues in document
// order.
func Check(lang Language, src string) []Issue {
	pool, ok := pools[lang]
	if !ok || strings.TrimSpace(src) == "" {
		return nil
	}
	p := pool.Get().(*sitter.Parser)
	defer pool.Put(p)
	p.Reset()

	source := []byte(src)
	tree := p.Parse(source, nil)
	if tree == nil {
		return []Issue{{Line: 1, Column: 1, Message: "unable to parse " + lang.String()}}
	}
	defer tree.Close()

	var issues []Issue
	collect(tree.RootNode(), source, &issues)
	return issues
}

func collect(node *sitter.Node, source []byte, issues *[]Issue) {
	if node == nil {
		return
	}
	pos := node.StartPosition()
	switch {
	case node.IsMissing():
		*issues = append(*issues, Issue{Line: pos.Row + 1, Column: pos.Column + 1, Message: "missing " + node.Kind()})
		return
	case node.IsError():
		*issues = append(*issues, Issue{Line: pos.Row + 1, Column: pos.Column + 1, Message: "unexpected " + snippet(source[node.StartByte():node.EndByte()])})
		return
	case !node.HasError():
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		collect(node.Child(i), source, issues)
	}
}

func snippet(b []byte) string {
	const limit = 24
	s := strings.Join(strings.Fields(string(b)), " ")
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return fmt.Sprintf("%q", s)
}
