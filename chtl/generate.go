package chtl

import (
	"strings"

	"chtlc/ast"
	"chtlc/scope"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Generator renders documents into HTML. Text content is emitted as is,
// only attribute values are escaped.
type Generator struct {
	m      *scope.Machine
	script func(string) string
	style  func(string) string
	sb     strings.Builder
}

type GenerateOption func(*Generator)

// WithScriptFilter sets function applied to trimmed code of every script
// before it is written.
func WithScriptFilter(f func(string) string) GenerateOption {
	return func(g *Generator) {
		g.script = f
	}
}

// WithStyleFilter sets function applied to value of style attribute of
// every element carrying inline style from local style blocks.
func WithStyleFilter(f func(string) string) GenerateOption {
	return func(g *Generator) {
		g.style = f
	}
}

func NewGenerator(opts ...GenerateOption) *Generator {
	g := &Generator{m: scope.New()}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate renders document with a fresh generator.
func Generate(doc *ast.Document, opts ...GenerateOption) string {
	return NewGenerator(opts...).Generate(doc)
}

func (g *Generator) Generate(doc *ast.Document) string {
	g.sb.Reset()
	for _, n := range doc.Children {
		g.node(n)
	}
	return g.sb.String()
}

func (g *Generator) node(n ast.Node) {
	switch v := n.(type) {
	case *ast.Element:
		g.element(v)
	case *ast.Text:
		gd := g.m.Enter(scope.StateText)
		g.sb.WriteString(v.Content)
		gd.Release()
	case *ast.Script:
		g.scriptBlock(v.Code)
	case *ast.GlobalScript:
		g.scriptBlock(v.Code)
	case *ast.GlobalStyle:
		gd := g.m.Enter(scope.StateStyle)
		g.sb.WriteString("<style>")
		g.sb.WriteString(strings.TrimSpace(v.Body))
		g.sb.WriteString("</style>")
		gd.Release()
	case *ast.Origin:
		g.sb.WriteString(strings.TrimSpace(v.Body))
	case *ast.Comment:
		g.sb.WriteString("<!-- ")
		g.sb.WriteString(v.Content)
		g.sb.WriteString(" -->")
	case *ast.Use, *ast.TemplateDecl:
		// templates are expanded by Resolve, leftovers render nothing
	}
}

func (g *Generator) element(el *ast.Element) {
	gd := g.m.Enter(scope.StateElement)
	defer gd.Release()

	g.sb.WriteByte('<')
	g.sb.WriteString(el.Tag)

	inline := InlineStyle(el.InlineStyle)
	styled := false
	for _, a := range el.Attributes {
		value := a.Value
		if a.Name == "style" && inline != "" && !styled {
			value = g.styleValue(mergeStyle(value, inline))
			styled = true
		}
		g.attr(a.Name, value)
	}
	if inline != "" && !styled {
		g.attr("style", g.styleValue(inline))
	}
	g.sb.WriteByte('>')

	if voidElements[strings.ToLower(el.Tag)] {
		return
	}
	for _, c := range el.Children {
		g.node(c)
	}
	g.sb.WriteString("</")
	g.sb.WriteString(el.Tag)
	g.sb.WriteByte('>')
}

func (g *Generator) styleValue(value string) string {
	if g.style == nil {
		return value
	}
	return g.style(value)
}

func (g *Generator) attr(name, value string) {
	g.sb.WriteByte(' ')
	g.sb.WriteString(name)
	g.sb.WriteString(`="`)
	g.sb.WriteString(strings.ReplaceAll(value, `"`, "&quot;"))
	g.sb.WriteByte('"')
}

func (g *Generator) scriptBlock(code string) {
	gd := g.m.Enter(scope.StateScript)
	defer gd.Release()

	code = strings.TrimSpace(code)
	if g.script != nil {
		code = g.script(code)
	}
	g.sb.WriteString("<script>")
	g.sb.WriteString(code)
	g.sb.WriteString("</script>")
}

// InlineStyle renders properties as "k:v; k2:v2" in declaration order.
func InlineStyle(props []ast.Property) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p.Key+":"+p.Value)
	}
	return strings.Join(parts, "; ")
}

func mergeStyle(explicit, inline string) string {
	explicit = strings.TrimSpace(explicit)
	if explicit == "" {
		return inline
	}
	if !strings.HasSuffix(explicit, ";") {
		explicit += ";"
	}
	return explicit + " " + inline
}

// RenderRules renders hoisted rules as stylesheet text.
func RenderRules(rules []ast.Rule) string {
	var sb strings.Builder
	for _, r := range rules {
		sb.WriteString(r.Selector)
		sb.WriteString(" {\n")
		for _, p := range r.Properties {
			sb.WriteString("  ")
			sb.WriteString(p.Key)
			sb.WriteString(": ")
			sb.WriteString(p.Value)
			sb.WriteString(";\n")
		}
		sb.WriteString("}\n")
	}
	return sb.String()
}
