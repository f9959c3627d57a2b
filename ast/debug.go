package ast

import (
	"chtlc/utils/debug"
)

// String returns readable tree of the document. It exists solely for
// manual inspection during debugging and for report dumps.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}
	tw := debug.NewTreeWriter()
	tw.Line(0, "Document (%d nodes)", len(d.Children))
	dumpNodes(tw, 1, d.Children)
	return tw.String()
}

func dumpNodes(tw *debug.TreeWriter, depth int, nodes []Node) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Element:
			tw.Line(depth, "Element <%s> attrs[%d] styles[%d] children[%d]",
				v.Tag, len(v.Attributes), len(v.StyleBlocks), len(v.Children))
			for _, a := range v.Attributes {
				tw.Pair(depth+1, "@"+a.Name, a.Value)
			}
			for _, s := range v.StyleBlocks {
				tw.TextBlock(depth+1, "style", s)
			}
			for _, p := range v.InlineStyle {
				tw.Pair(depth+1, p.Key, p.Value)
			}
			dumpNodes(tw, depth+1, v.Children)
		case *Text:
			tw.TextBlock(depth, "Text", v.Content)
		case *Script:
			tw.TextBlock(depth, "Script", v.Code)
		case *Comment:
			tw.TextBlock(depth, "Comment", v.Content)
		case *Use:
			tw.Line(depth, "Use @%s %s", v.Kind, v.Name)
		case *TemplateDecl:
			if v.Custom {
				tw.Line(depth, "Custom @%s %s", v.Kind, v.Name)
			} else {
				tw.Line(depth, "Template @%s %s", v.Kind, v.Name)
			}
			if v.Kind == TemplateKindElement {
				dumpNodes(tw, depth+1, v.Elements)
			} else {
				tw.TextBlock(depth+1, "body", v.Body)
			}
		case *Origin:
			if v.Ref {
				tw.Line(depth, "Origin @%s %s (ref)", v.Kind, v.Name)
			} else {
				tw.Line(depth, "Origin @%s %s", v.Kind, v.Name)
				tw.TextBlock(depth+1, "body", v.Body)
			}
		case *GlobalStyle:
			tw.TextBlock(depth, "GlobalStyle", v.Body)
		case *GlobalScript:
			tw.TextBlock(depth, "GlobalScript", v.Code)
		}
	}
}
