package chtljs

import (
	"strings"
)

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// Expression returns DOM lookup for selector. Selector starting with "#" is
// looked up by id, anything else is passed to querySelector unchanged.
func (s *Selector) Expression() string {
	if id, ok := strings.CutPrefix(s.Raw, "#"); ok {
		return "document.getElementById('" + quoteEscaper.Replace(id) + "')"
	}
	return "document.querySelector('" + quoteEscaper.Replace(s.Raw) + "')"
}

// Generate renders chain into JS expression.
func Generate(c *Chain) string {
	var sb strings.Builder
	if c.Selector != nil {
		sb.WriteString(c.Selector.Expression())
	}
	for _, inv := range c.Invocations {
		sb.WriteByte('.')
		sb.WriteString(inv.Name)
		sb.WriteByte('(')
		sb.WriteString(strings.Join(inv.Args, ","))
		sb.WriteByte(')')
	}
	return sb.String()
}
