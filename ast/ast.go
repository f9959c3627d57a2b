// Package ast defines the closed set of nodes a structural document parses
// into. Node is sealed: only types in this package implement it, so every
// type switch over nodes can be checked for completeness.
package ast

// Kind of template declaration or use.
// ENUM(style, element, var)
type TemplateKind int

// Kind of raw embedded block.
// ENUM(html, style, javascript)
type OriginKind int

// Node is any item which may appear in a document or element body.
type Node interface {
	node()
}

type (
	// Attribute is element attribute in declaration order.
	Attribute struct {
		Name  string
		Value string
	}

	// Property is single CSS declaration.
	Property struct {
		Key   string
		Value string
	}

	// Rule is CSS rule hoisted out of element local style block.
	Rule struct {
		Selector   string
		Properties []Property
	}
)

// Document is the root of a parsed structural fragment.
type Document struct {
	Children []Node
}

// Element is a tag with its body. StyleBlocks keep raw local style bodies as
// parsed, InlineStyle is filled when templates are resolved. Children hold
// texts, scripts, comments, uses and nested elements in declaration order.
type Element struct {
	Tag         string
	Attributes  []Attribute
	StyleBlocks []string
	InlineStyle []Property
	Children    []Node
}

type Text struct {
	Content string
}

type Script struct {
	Code string
}

// Comment is a generator comment which is rendered into output.
type Comment struct {
	Content string
}

// Use references element template to be spliced in place.
type Use struct {
	Kind TemplateKind
	Name string
}

// TemplateDecl is a "[Template] @Kind Name { ... }" declaration. Body keeps
// raw text for style and var templates, Elements is parsed body of element
// templates. Custom is set for "[Custom] @Style" declarations, which may
// delete properties and be specialized where used.
type TemplateDecl struct {
	Kind     TemplateKind
	Name     string
	Body     string
	Elements []Node
	Custom   bool
}

// Origin is "[Origin] @Kind Name { ... }" raw block emitted without any
// processing. Name is optional. Ref is set for "[Origin] @Kind Name;" which
// emits body of the named block declared elsewhere.
type Origin struct {
	Kind OriginKind
	Name string
	Body string
	Ref  bool
}

// GlobalStyle is a top level style block.
type GlobalStyle struct {
	Body string
}

// GlobalScript is a top level script block.
type GlobalScript struct {
	Code string
}

func (*Element) node()      {}
func (*Text) node()         {}
func (*Script) node()       {}
func (*Comment) node()      {}
func (*Use) node()          {}
func (*TemplateDecl) node() {}
func (*Origin) node()       {}
func (*GlobalStyle) node()  {}
func (*GlobalScript) node() {}

// Texts returns text children in order.
func (e *Element) Texts() []*Text {
	return childrenOf[*Text](e)
}

// Scripts returns script children in order.
func (e *Element) Scripts() []*Script {
	return childrenOf[*Script](e)
}

// Elements returns nested elements in order.
func (e *Element) Elements() []*Element {
	return childrenOf[*Element](e)
}

func childrenOf[T Node](e *Element) []T {
	var res []T
	for _, c := range e.Children {
		if v, ok := c.(T); ok {
			res = append(res, v)
		}
	}
	return res
}

// Attr returns value of the first attribute with given name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr replaces value of existing attribute or appends new one.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			e.Attributes[i].Value = value
			return
		}
	}
	e.Attributes = append(e.Attributes, Attribute{Name: name, Value: value})
}

// Clone returns deep copy of node.
func Clone(n Node) Node {
	switch v := n.(type) {
	case *Element:
		c := &Element{
			Tag:         v.Tag,
			Attributes:  append([]Attribute(nil), v.Attributes...),
			StyleBlocks: append([]string(nil), v.StyleBlocks...),
			InlineStyle: append([]Property(nil), v.InlineStyle...),
		}
		c.Children = CloneAll(v.Children)
		return c
	case *Text:
		c := *v
		return &c
	case *Script:
		c := *v
		return &c
	case *Comment:
		c := *v
		return &c
	case *Use:
		c := *v
		return &c
	case *TemplateDecl:
		c := *v
		c.Elements = CloneAll(v.Elements)
		return &c
	case *Origin:
		c := *v
		return &c
	case *GlobalStyle:
		c := *v
		return &c
	case *GlobalScript:
		c := *v
		return &c
	default:
		// this should never happen
		panic("unknown node type")
	}
}

// CloneAll deep copies list of nodes.
func CloneAll(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	res := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, Clone(n))
	}
	return res
}
