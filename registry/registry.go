// Package registry stores named style, element and var templates together
// with named origin blocks.
//
// Templates are defined on a Builder. Freeze converts builder into read only
// Registry which may then be shared between goroutines: nothing in Registry
// mutates after Freeze.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"chtlc/ast"
	"chtlc/utils/debug"
)

type (
	// StyleTemplate body may delete properties and be specialized where
	// used only when Custom is set.
	StyleTemplate struct {
		Name   string
		Body   string
		Custom bool
	}

	ElementTemplate struct {
		Name     string
		Elements []ast.Node
	}

	VarTemplate struct {
		Name     string
		Bindings map[string]string
	}
)

// Builder collects template definitions. Redefining name replaces previous
// definition of the same kind.
type Builder struct {
	styles   map[string]StyleTemplate
	elements map[string]ElementTemplate
	vars     map[string]VarTemplate
	origins  map[originKey]string
}

type originKey struct {
	kind ast.OriginKind
	name string
}

func NewBuilder() *Builder {
	return &Builder{
		styles:   make(map[string]StyleTemplate),
		elements: make(map[string]ElementTemplate),
		vars:     make(map[string]VarTemplate),
		origins:  make(map[originKey]string),
	}
}

func (b *Builder) DefineStyle(name, body string) {
	b.styles[name] = StyleTemplate{Name: name, Body: body}
}

func (b *Builder) DefineCustomStyle(name, body string) {
	b.styles[name] = StyleTemplate{Name: name, Body: body, Custom: true}
}

// DefineOrigin stores body of named origin block. Anonymous blocks and
// references are ignored.
func (b *Builder) DefineOrigin(o *ast.Origin) {
	if o.Name == "" || o.Ref {
		return
	}
	b.origins[originKey{o.Kind, o.Name}] = o.Body
}

// DefineElement stores deep copy of elements.
func (b *Builder) DefineElement(name string, elements []ast.Node) {
	b.elements[name] = ElementTemplate{Name: name, Elements: ast.CloneAll(elements)}
}

func (b *Builder) DefineVar(name string, bindings map[string]string) {
	b.vars[name] = VarTemplate{Name: name, Bindings: maps.Clone(bindings)}
}

// Define stores parsed template declaration.
func (b *Builder) Define(decl *ast.TemplateDecl) {
	switch decl.Kind {
	case ast.TemplateKindStyle:
		if decl.Custom {
			b.DefineCustomStyle(decl.Name, decl.Body)
		} else {
			b.DefineStyle(decl.Name, decl.Body)
		}
	case ast.TemplateKindElement:
		b.DefineElement(decl.Name, decl.Elements)
	case ast.TemplateKindVar:
		b.DefineVar(decl.Name, ParseBindings(decl.Body))
	}
}

// Freeze returns registry holding snapshot of everything defined so far.
// Builder may be reused afterwards without affecting returned registry.
func (b *Builder) Freeze() *Registry {
	r := &Registry{
		styles:   maps.Clone(b.styles),
		elements: make(map[string]ElementTemplate, len(b.elements)),
		vars:     make(map[string]VarTemplate, len(b.vars)),
		origins:  maps.Clone(b.origins),
	}
	for k, v := range b.elements {
		r.elements[k] = ElementTemplate{Name: v.Name, Elements: ast.CloneAll(v.Elements)}
	}
	for k, v := range b.vars {
		r.vars[k] = VarTemplate{Name: v.Name, Bindings: maps.Clone(v.Bindings)}
	}
	return r
}

// Registry is read only set of templates.
type Registry struct {
	styles   map[string]StyleTemplate
	elements map[string]ElementTemplate
	vars     map[string]VarTemplate
	origins  map[originKey]string
}

// Empty returns registry without templates.
func Empty() *Registry {
	return NewBuilder().Freeze()
}

// Origin returns body of named origin block of the given kind.
func (r *Registry) Origin(kind ast.OriginKind, name string) (string, bool) {
	body, ok := r.origins[originKey{kind, name}]
	return body, ok
}

func (r *Registry) Style(name string) (StyleTemplate, bool) {
	t, ok := r.styles[name]
	return t, ok
}

func (r *Registry) Var(name string) (VarTemplate, bool) {
	t, ok := r.vars[name]
	return t, ok
}

// Element returns deep copy of element template body, so callers are free to
// modify result.
func (r *Registry) Element(name string) ([]ast.Node, bool) {
	t, ok := r.elements[name]
	if !ok {
		return nil, false
	}
	return ast.CloneAll(t.Elements), true
}

// Names returns naturally sorted names of templates of the given kind.
func (r *Registry) Names(kind ast.TemplateKind) []string {
	var names []string
	switch kind {
	case ast.TemplateKindStyle:
		names = slices.Collect(maps.Keys(r.styles))
	case ast.TemplateKindElement:
		names = slices.Collect(maps.Keys(r.elements))
	case ast.TemplateKindVar:
		names = slices.Collect(maps.Keys(r.vars))
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// Len returns total number of templates and named origin blocks.
func (r *Registry) Len() int {
	return len(r.styles) + len(r.elements) + len(r.vars) + len(r.origins)
}

// String returns readable dump of registry content for debugging.
func (r *Registry) String() string {
	if r == nil {
		return "<nil Registry>"
	}
	tw := debug.NewTreeWriter()
	tw.Line(0, "Registry (%d templates)", r.Len())
	for _, name := range r.Names(ast.TemplateKindStyle) {
		if r.styles[name].Custom {
			tw.Line(1, "Custom Style[%q]", name)
		} else {
			tw.Line(1, "Style[%q]", name)
		}
		for _, p := range r.ResolveStyleProperties(name) {
			tw.Pair(2, p.Key, p.Value)
		}
	}
	for _, name := range r.Names(ast.TemplateKindElement) {
		tw.Line(1, "Element[%q] nodes[%d]", name, len(r.elements[name].Elements))
	}
	for _, name := range r.Names(ast.TemplateKindVar) {
		t := r.vars[name]
		tw.Line(1, "Var[%q]", name)
		keys := slices.Collect(maps.Keys(t.Bindings))
		sort.Sort(natural.StringSlice(keys))
		for _, k := range keys {
			tw.Pair(2, k, t.Bindings[k])
		}
	}
	origins := slices.Collect(maps.Keys(r.origins))
	slices.SortFunc(origins, func(a, b originKey) int {
		if a.kind != b.kind {
			return int(a.kind) - int(b.kind)
		}
		if natural.Less(a.name, b.name) {
			return -1
		}
		if natural.Less(b.name, a.name) {
			return 1
		}
		return 0
	})
	for _, k := range origins {
		tw.TextBlock(1, fmt.Sprintf("Origin[@%s %q]", k.kind, k.name), r.origins[k])
	}
	return tw.String()
}
