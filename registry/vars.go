package registry

import (
	"regexp"
	"strings"
)

var callRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_-]*)\(\s*([A-Za-z_][A-Za-z0-9_-]*)\s*\)`)

// Substitute replaces every "Name(key)" call where Name is a var template
// with value bound to key, or empty string when key is absent. Calls to
// unknown names and member calls (".Name(key)", "->Name(key)") stay as is.
func (r *Registry) Substitute(value string) string {
	if len(r.vars) == 0 || !strings.Contains(value, "(") {
		return value
	}

	var (
		sb   strings.Builder
		last int
	)
	for _, m := range callRe.FindAllStringSubmatchIndex(value, -1) {
		name, key := value[m[2]:m[3]], value[m[4]:m[5]]
		t, ok := r.Var(name)
		if !ok || memberCall(value, m[0]) {
			continue
		}
		sb.WriteString(value[last:m[0]])
		sb.WriteString(t.Bindings[key])
		last = m[1]
	}
	if last == 0 {
		return value
	}
	sb.WriteString(value[last:])
	return sb.String()
}

func memberCall(s string, at int) bool {
	return at > 0 && (s[at-1] == '.' || s[at-1] == '>')
}

// ParseBindings parses var template body made of "key: value" (or
// "key = value") entries separated by semicolons or new lines. Values are
// trimmed and one pair of surrounding quotes is removed.
func ParseBindings(body string) map[string]string {
	res := make(map[string]string)
	for _, entry := range strings.FieldsFunc(stripComments(body), func(r rune) bool { return r == ';' || r == '\n' }) {
		sep := strings.IndexAny(entry, ":=")
		if sep < 0 {
			continue
		}
		key := strings.TrimSpace(entry[:sep])
		if key == "" {
			continue
		}
		res[key] = Unquote(strings.TrimSpace(entry[sep+1:]))
	}
	return res
}

// Unquote removes one pair of matching surrounding quotes.
func Unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
