package chtl

import (
	"errors"
	"fmt"
	"strings"

	"chtlc/ast"
	"chtlc/registry"
	"chtlc/scope"
)

var (
	ErrTemplateCycle   = errors.New("template references itself")
	ErrUnknownTemplate = errors.New("unknown template")
	ErrUnknownOrigin   = errors.New("unknown origin block")
	ErrNotCustom       = errors.New("only custom style may be changed")
)

// ResolveOptions tunes template resolution.
type ResolveOptions struct {
	// Color, when set, is applied to every resolved property value.
	Color func(string) string
	// ClassPrefix is used for classes generated for elements referenced by
	// "&" in local style rules.
	ClassPrefix string
}

// Resolved is document with all templates expanded. Rules are hoisted from
// local style blocks, GlobalStyles and GlobalScripts keep bodies of top
// level style and script blocks and of style and script origin blocks in
// document order. Warnings carry references which contributed nothing.
type Resolved struct {
	Document      *ast.Document
	Rules         []ast.Rule
	GlobalStyles  []string
	GlobalScripts []GlobalScript
	Warnings      []error
}

// GlobalScript is code of top level script. Raw code comes from origin
// blocks and is emitted without any processing.
type GlobalScript struct {
	Code string
	Raw  bool
}

type resolver struct {
	reg       *registry.Registry
	opts      ResolveOptions
	m         *scope.Machine
	visiting  map[string]bool
	generated int
	out       *Resolved
}

// Resolve returns new document where local style blocks are resolved into
// inline style and hoisted rules, element templates are spliced in place and
// template declarations are dropped. Source document is not modified.
func Resolve(doc *ast.Document, reg *registry.Registry, opts ResolveOptions) *Resolved {
	if opts.ClassPrefix == "" {
		opts.ClassPrefix = "chtl"
	}
	r := &resolver{
		reg:      reg,
		opts:     opts,
		m:        scope.New(),
		visiting: make(map[string]bool),
		out:      &Resolved{},
	}
	r.out.Document = &ast.Document{Children: r.nodes(doc.Children)}
	return r.out
}

func (r *resolver) nodes(in []ast.Node) []ast.Node {
	var res []ast.Node
	for _, n := range in {
		switch v := n.(type) {
		case *ast.Element:
			res = append(res, r.element(v))
		case *ast.Use:
			res = append(res, r.use(v)...)
		case *ast.Origin:
			if o := r.origin(v); o != nil {
				res = append(res, o)
			}
		case *ast.TemplateDecl:
		case *ast.GlobalStyle:
			r.out.GlobalStyles = append(r.out.GlobalStyles, r.reg.Substitute(v.Body))
		case *ast.GlobalScript:
			r.out.GlobalScripts = append(r.out.GlobalScripts, GlobalScript{Code: v.Code})
		case *ast.Text, *ast.Script, *ast.Comment:
			res = append(res, ast.Clone(v))
		}
	}
	return res
}

func (r *resolver) use(u *ast.Use) []ast.Node {
	if r.visiting[u.Name] {
		r.warn(fmt.Errorf("%w: @Element %s", ErrTemplateCycle, u.Name))
		return nil
	}
	elems, ok := r.reg.Element(u.Name)
	if !ok {
		r.warn(fmt.Errorf("%w: @Element %s", ErrUnknownTemplate, u.Name))
		return nil
	}
	r.visiting[u.Name] = true
	defer delete(r.visiting, u.Name)
	return r.nodes(elems)
}

// origin returns html origin block to be rendered in place. Style and script
// blocks go to global output.
func (r *resolver) origin(o *ast.Origin) ast.Node {
	body := o.Body
	if o.Ref {
		var ok bool
		if body, ok = r.reg.Origin(o.Kind, o.Name); !ok {
			r.warn(fmt.Errorf("%w: @%s %s", ErrUnknownOrigin, o.Kind, o.Name))
			return nil
		}
	}
	switch o.Kind {
	case ast.OriginKindStyle:
		r.out.GlobalStyles = append(r.out.GlobalStyles, body)
	case ast.OriginKindJavascript:
		r.out.GlobalScripts = append(r.out.GlobalScripts, GlobalScript{Code: body, Raw: true})
	default:
		return &ast.Origin{Kind: o.Kind, Name: o.Name, Body: body}
	}
	return nil
}

func (r *resolver) element(src *ast.Element) *ast.Element {
	g := r.m.Enter(scope.StateElement)
	defer g.Release()
	r.m.PushFrame()
	defer r.m.PopFrame()

	el := &ast.Element{Tag: src.Tag}
	for _, a := range src.Attributes {
		el.Attributes = append(el.Attributes, ast.Attribute{Name: a.Name, Value: r.reg.Substitute(a.Value)})
	}
	// shadow reference of the enclosing element
	r.m.Set("&", "")

	for _, block := range src.StyleBlocks {
		res := r.reg.Resolve(block)
		for _, name := range res.Cycles {
			r.warn(fmt.Errorf("%w: @Style %s in <%s>", ErrTemplateCycle, name, el.Tag))
		}
		for _, name := range res.Unknown {
			r.warn(fmt.Errorf("%w: @Style %s in <%s>", ErrUnknownTemplate, name, el.Tag))
		}
		for _, text := range res.NotCustom {
			r.warn(fmt.Errorf("%w: %s in <%s>", ErrNotCustom, text, el.Tag))
		}
		el.InlineStyle = append(el.InlineStyle, r.props(res.Properties)...)
		for _, rule := range res.Rules {
			r.hoist(el, rule)
		}
	}

	el.Children = r.nodes(src.Children)
	return el
}

// hoist moves local style rule into global rules. Leading class or id
// selector is added to the element, "&" is replaced with element reference.
func (r *resolver) hoist(el *ast.Element, rule ast.Rule) {
	sel := rule.Selector
	switch {
	case strings.HasPrefix(sel, "."):
		name := leadingName(sel[1:])
		if name != "" && !hasClass(el, name) {
			addClass(el, name)
		}
	case strings.HasPrefix(sel, "#"):
		name := leadingName(sel[1:])
		if _, ok := el.Attr("id"); !ok && name != "" {
			el.SetAttr("id", name)
		}
	}
	if strings.Contains(sel, "&") {
		sel = strings.ReplaceAll(sel, "&", r.reference(el))
	}
	r.out.Rules = append(r.out.Rules, ast.Rule{Selector: sel, Properties: r.props(rule.Properties)})
}

// reference returns selector addressing element, generating class for it
// when element has neither id nor class. Reference is bound in element frame
// so it is computed once per element.
func (r *resolver) reference(el *ast.Element) string {
	if ref, _ := r.m.Get("&"); ref != "" {
		return ref
	}
	var ref string
	if id, ok := el.Attr("id"); ok && id != "" {
		ref = "#" + id
	} else if cls, ok := el.Attr("class"); ok && strings.TrimSpace(cls) != "" {
		ref = "." + strings.Fields(cls)[0]
	} else {
		r.generated++
		name := fmt.Sprintf("%s-%s-%d", r.opts.ClassPrefix, el.Tag, r.generated)
		addClass(el, name)
		ref = "." + name
	}
	r.m.Set("&", ref)
	return ref
}

func (r *resolver) props(in []ast.Property) []ast.Property {
	if r.opts.Color == nil || len(in) == 0 {
		return in
	}
	res := make([]ast.Property, len(in))
	for i, p := range in {
		res[i] = ast.Property{Key: p.Key, Value: r.opts.Color(p.Value)}
	}
	return res
}

func (r *resolver) warn(err error) {
	r.out.Warnings = append(r.out.Warnings, err)
}

func leadingName(s string) string {
	for i := 0; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return s[:i]
		}
	}
	return s
}

func hasClass(el *ast.Element, name string) bool {
	cls, _ := el.Attr("class")
	for _, c := range strings.Fields(cls) {
		if c == name {
			return true
		}
	}
	return false
}

func addClass(el *ast.Element, name string) {
	if cls, ok := el.Attr("class"); ok && strings.TrimSpace(cls) != "" {
		el.SetAttr("class", strings.TrimSpace(cls)+" "+name)
		return
	}
	el.SetAttr("class", name)
}
