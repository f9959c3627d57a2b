package ast

import (
	"strings"
	"testing"
)

func sample() *Element {
	return &Element{
		Tag:         "div",
		Attributes:  []Attribute{{Name: "id", Value: "app"}},
		StyleBlocks: []string{"color: red;"},
		Children: []Node{
			&Text{Content: "Hi"},
			&Script{Code: "go();"},
			&Element{Tag: "span", Children: []Node{&Text{Content: "inner"}}},
			&Comment{Content: "note"},
			&Text{Content: "bye"},
		},
	}
}

func TestElement_Views(t *testing.T) {
	e := sample()

	texts := e.Texts()
	if len(texts) != 2 || texts[0].Content != "Hi" || texts[1].Content != "bye" {
		t.Errorf("Texts() = %v, want [Hi bye]", texts)
	}
	if scripts := e.Scripts(); len(scripts) != 1 || scripts[0].Code != "go();" {
		t.Errorf("Scripts() = %v, want [go();]", scripts)
	}
	if elems := e.Elements(); len(elems) != 1 || elems[0].Tag != "span" {
		t.Errorf("Elements() = %v, want [span]", elems)
	}
}

func TestElement_Attr(t *testing.T) {
	e := sample()

	if v, ok := e.Attr("id"); !ok || v != "app" {
		t.Errorf("Attr(id) = %q, %v, want app, true", v, ok)
	}
	if _, ok := e.Attr("class"); ok {
		t.Error("Attr(class) found, want missing")
	}

	e.SetAttr("id", "main")
	e.SetAttr("class", "box")
	if len(e.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(e.Attributes))
	}
	if e.Attributes[0].Value != "main" || e.Attributes[1].Name != "class" {
		t.Errorf("Attributes = %v", e.Attributes)
	}
}

func TestClone_Deep(t *testing.T) {
	orig := sample()
	c := Clone(orig).(*Element)

	c.Attributes[0].Value = "changed"
	c.StyleBlocks[0] = "changed"
	c.Children[0].(*Text).Content = "changed"
	c.Elements()[0].Tag = "p"

	if orig.Attributes[0].Value != "app" {
		t.Error("clone shares attributes")
	}
	if orig.StyleBlocks[0] != "color: red;" {
		t.Error("clone shares style blocks")
	}
	if orig.Texts()[0].Content != "Hi" {
		t.Error("clone shares text nodes")
	}
	if orig.Elements()[0].Tag != "span" {
		t.Error("clone shares nested elements")
	}
}

func TestCloneAll_Nil(t *testing.T) {
	if got := CloneAll(nil); got != nil {
		t.Errorf("CloneAll(nil) = %v, want nil", got)
	}
}

func TestDocument_String(t *testing.T) {
	doc := &Document{Children: []Node{
		sample(),
		&TemplateDecl{Kind: TemplateKindStyle, Name: "Base", Body: "color: red;"},
		&Use{Kind: TemplateKindElement, Name: "Card"},
		&TemplateDecl{Kind: TemplateKindStyle, Name: "Box", Body: "delete color;", Custom: true},
		&Origin{Kind: OriginKindHtml, Name: "Banner", Body: "<b>x</b>"},
		&Origin{Kind: OriginKindStyle, Name: "Reset", Ref: true},
	}}

	out := doc.String()
	for _, want := range []string{
		"Document (6 nodes)\n",
		"  Custom @style Box\n",
		"  Origin @html Banner\n",
		"    body: \"<b>x</b>\"\n",
		"  Origin @style Reset (ref)\n",
		"  Element <div> attrs[1] styles[1] children[5]\n",
		"    @id = \"app\"\n",
		"    Text: \"Hi\"\n",
		"    Element <span> attrs[0] styles[0] children[1]\n",
		"  Template @style Base\n",
		"  Use @element Card\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q in:\n%s", want, out)
		}
	}

	var nilDoc *Document
	if nilDoc.String() != "<nil Document>" {
		t.Error("nil document dump")
	}
}
