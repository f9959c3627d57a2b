package registry

import (
	"slices"
	"strings"

	"chtlc/ast"
)

// Resolution is the result of resolving raw style body. Cycles and Unknown
// list template names which were referenced but contributed nothing,
// NotCustom lists deletions and specializations which were ignored because
// they target something other than a custom style, all in encounter order.
type Resolution struct {
	Properties []ast.Property
	Rules      []ast.Rule
	Cycles     []string
	Unknown    []string
	NotCustom  []string
}

// ResolveStyleProperties returns properties of named style template in
// encounter order with all composition directives expanded. Unknown name
// yields nil.
func (r *Registry) ResolveStyleProperties(name string) []ast.Property {
	return r.ResolveTemplate(name).Properties
}

// ResolveTemplate resolves named style template keeping diagnostics.
func (r *Registry) ResolveTemplate(name string) Resolution {
	rs := resolver{reg: r, visiting: make(map[string]bool)}
	rs.res.Properties, rs.res.Rules = rs.splice(name)
	return rs.res
}

// Resolve parses raw style body left to right. "inherit @Style Name;" and
// "@Style Name;" splice full resolution of Name in place, "@Style Name { ... }"
// splices custom style Name specialized by the block, "selector { ... }"
// blocks become rules and "Name(key)" calls in values are substituted.
func (r *Registry) Resolve(body string) Resolution {
	rs := resolver{reg: r, visiting: make(map[string]bool)}
	rs.res.Properties, rs.res.Rules = rs.run(nil, body, false)
	return rs.res
}

// resolver lives for a single top level call. Name is in visiting while its
// body is being resolved, so the same template may still be reached through
// independent branches.
type resolver struct {
	reg      *Registry
	visiting map[string]bool
	res      Resolution
}

// run resolves body on top of props. In custom bodies "delete" statements
// remove properties collected so far and declarations replace value of an
// already present property instead of repeating it.
func (rs *resolver) run(props []ast.Property, body string, custom bool) ([]ast.Property, []ast.Rule) {
	var rules []ast.Rule
	for _, st := range splitStatements(body) {
		if st.block {
			sel := strings.TrimSpace(st.text)
			if name, ok := styleDirective(sel); ok {
				p, rl := rs.specialize(name, st.body)
				props = append(props, p...)
				rules = append(rules, rl...)
				continue
			}
			p, nested := rs.run(nil, st.body, false)
			if sel == "" {
				props = append(props, p...)
				continue
			}
			rules = append(rules, ast.Rule{Selector: sel, Properties: p})
			for _, n := range nested {
				rules = append(rules, ast.Rule{Selector: sel + " " + n.Selector, Properties: n.Properties})
			}
			continue
		}

		text := strings.TrimSpace(st.text)
		if text == "" {
			continue
		}
		if targets, ok := deletion(text); ok {
			if !custom {
				rs.res.NotCustom = append(rs.res.NotCustom, text)
				continue
			}
			props = rs.remove(props, targets)
			continue
		}
		if name, ok := styleDirective(text); ok {
			p, rl := rs.splice(name)
			props = append(props, p...)
			rules = append(rules, rl...)
			continue
		}
		key, value, ok := strings.Cut(text, ":")
		if !ok {
			continue
		}
		if key = strings.TrimSpace(key); key == "" {
			continue
		}
		prop := ast.Property{Key: key, Value: rs.reg.Substitute(strings.TrimSpace(value))}
		if custom {
			if i := slices.IndexFunc(props, func(p ast.Property) bool { return p.Key == key }); i >= 0 {
				props[i] = prop
				continue
			}
		}
		props = append(props, prop)
	}
	return props, rules
}

func (rs *resolver) splice(name string) ([]ast.Property, []ast.Rule) {
	if rs.visiting[name] {
		rs.res.Cycles = append(rs.res.Cycles, name)
		return nil, nil
	}
	t, ok := rs.reg.Style(name)
	if !ok {
		rs.res.Unknown = append(rs.res.Unknown, name)
		return nil, nil
	}
	rs.visiting[name] = true
	defer delete(rs.visiting, name)
	return rs.run(nil, t.Body, t.Custom)
}

// specialize splices style name and applies body of the use site block to
// it. Only custom styles may be specialized, the block is ignored for other
// templates.
func (rs *resolver) specialize(name, body string) ([]ast.Property, []ast.Rule) {
	props, rules := rs.splice(name)
	t, ok := rs.reg.Style(name)
	if !ok || rs.visiting[name] {
		return props, rules
	}
	if !t.Custom {
		rs.res.NotCustom = append(rs.res.NotCustom, "@Style "+name)
		return props, rules
	}
	props, more := rs.run(props, body, true)
	return props, append(rules, more...)
}

// remove drops properties named by targets. "@Style Name" target drops every
// property Name resolves to.
func (rs *resolver) remove(props []ast.Property, targets []string) []ast.Property {
	keys := make(map[string]bool)
	for _, t := range targets {
		if name, ok := styleDirective(t); ok {
			p, _ := rs.splice(name)
			for _, prop := range p {
				keys[prop.Key] = true
			}
			continue
		}
		keys[t] = true
	}
	return slices.DeleteFunc(props, func(p ast.Property) bool { return keys[p.Key] })
}

// deletion recognizes "delete a, b, @Style Name" returning its targets.
func deletion(text string) ([]string, bool) {
	rest, ok := strings.CutPrefix(text, "delete")
	if !ok || rest == "" || !isSpaceByte(rest[0]) {
		return nil, false
	}
	var targets []string
	for t := range strings.SplitSeq(rest, ",") {
		if t = strings.Join(strings.Fields(t), " "); t != "" {
			targets = append(targets, t)
		}
	}
	return targets, len(targets) > 0
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// styleDirective recognizes "inherit @Style Name" and "@Style Name".
func styleDirective(text string) (string, bool) {
	fields := strings.Fields(text)
	if len(fields) > 0 && fields[0] == "inherit" {
		fields = fields[1:]
	}
	if len(fields) != 2 || fields[0] != "@Style" {
		return "", false
	}
	return fields[1], true
}

type statement struct {
	text  string
	block bool
	body  string
}

// splitStatements cuts style body into ";" terminated statements and
// "selector { body }" blocks. Quotes and parentheses are respected so
// url(data:...;...) or "a;b" do not end statement.
func splitStatements(body string) []statement {
	body = stripComments(body)

	var (
		res   []statement
		start int
		quote byte
		paren int
	)
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			paren++
		case c == ')':
			if paren > 0 {
				paren--
			}
		case paren > 0:
		case c == ';' || c == '}':
			res = append(res, statement{text: body[start:i]})
			start = i + 1
		case c == '{':
			end := matchBrace(body, i)
			inner := body[i+1:]
			next := len(body)
			if end >= 0 {
				inner = body[i+1 : end]
				next = end + 1
			}
			res = append(res, statement{text: body[start:i], block: true, body: inner})
			start = next
			i = next - 1
		}
	}
	if start < len(body) {
		res = append(res, statement{text: body[start:]})
	}
	return res
}

// matchBrace returns index of the brace closing one at open, or -1.
func matchBrace(s string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// stripComments removes /* */ comments and // comments which start a line.
func stripComments(s string) string {
	if !strings.Contains(s, "/*") && !strings.Contains(s, "//") {
		return s
	}
	var (
		sb        strings.Builder
		quote     byte
		lineStart = true
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			sb.WriteByte(c)
			if c == '\\' && i+1 < len(s) {
				i++
				sb.WriteByte(s[i])
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch {
		case c == '"' || c == '\'':
			quote = c
		case strings.HasPrefix(s[i:], "/*"):
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return sb.String()
			}
			i += end + 3
			continue
		case lineStart && strings.HasPrefix(s[i:], "//"):
			end := strings.IndexByte(s[i:], '\n')
			if end < 0 {
				return sb.String()
			}
			i += end - 1
			continue
		}
		sb.WriteByte(c)
		switch c {
		case '\n':
			lineStart = true
		case ' ', '\t', '\r':
		default:
			lineStart = false
		}
	}
	return sb.String()
}
