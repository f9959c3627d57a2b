package css

import (
	"strings"

	"github.com/mazznoer/csscolorparser"
)

var colorFuncs = []string{"rgb(", "rgba(", "hsl(", "hsla(", "hwb("}

// NormalizeColor converts every color found in property value into
// lower case hex form. Anything which is not a color is kept as is.
func NormalizeColor(value string) string {
	parts := splitValue(value)
	changed := false
	for i, part := range parts {
		if !colorLike(part) {
			continue
		}
		c, err := csscolorparser.Parse(part)
		if err != nil {
			continue
		}
		parts[i] = c.HexString()
		changed = true
	}
	if !changed {
		return value
	}
	return strings.Join(parts, " ")
}

// colorLike filters candidates, csscolorparser accepts bare hex digits and
// words like "add" or "bed" must stay words.
func colorLike(s string) bool {
	ls := strings.ToLower(s)
	if strings.HasPrefix(ls, "#") {
		return true
	}
	for _, f := range colorFuncs {
		if strings.HasPrefix(ls, f) && strings.HasSuffix(ls, ")") {
			return true
		}
	}
	hexOnly := true
	for i := 0; i < len(ls); i++ {
		c := ls[i]
		if c < 'a' || c > 'z' {
			return false
		}
		if c > 'f' {
			hexOnly = false
		}
	}
	return len(ls) > 0 && !hexOnly
}

// splitValue splits on whitespace outside of parentheses.
func splitValue(s string) []string {
	var (
		parts []string
		depth int
		start = -1
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && (c == ' ' || c == '\t' || c == '\n'):
			if start >= 0 {
				parts = append(parts, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		parts = append(parts, s[start:])
	}
	return parts
}
