package lint

import (
	"strings"
	"testing"
)

func TestCheck_Valid(t *testing.T) {
	tests := []struct {
		lang Language
		src  string
	}{
		{LanguageHtml, `<div class="a">Hi<script>go();</script></div>`},
		{LanguageCss, "body { color: red; }\n.a > b { margin: 0 auto; }"},
		{LanguageJavascript, "document.getElementById('app').textContent(\"Hi\");"},
		{LanguageJavascript, "   "},
	}
	for _, tt := range tests {
		if issues := Check(tt.lang, tt.src); len(issues) != 0 {
			t.Errorf("Check(%s, %q) = %v, want no issues", tt.lang, tt.src, issues)
		}
	}
}

func TestCheck_Errors(t *testing.T) {
	tests := []struct {
		lang Language
		src  string
	}{
		{LanguageJavascript, "function f( {\n  return 1;\n}"},
		{LanguageCss, "a { color: red; \n"},
		{LanguageJavascript, "let = ;"},
	}
	for _, tt := range tests {
		issues := Check(tt.lang, tt.src)
		if len(issues) == 0 {
			t.Errorf("Check(%s, %q) found no issues", tt.lang, tt.src)
			continue
		}
		if issues[0].Line == 0 || issues[0].Column == 0 {
			t.Errorf("issue position %v is not 1-based", issues[0])
		}
	}
}

func TestCheck_Concurrent(t *testing.T) {
	done := make(chan []Issue)
	for range 8 {
		go func() {
			done <- Check(LanguageJavascript, "a(;")
		}()
	}
	for range 8 {
		if issues := <-done; len(issues) == 0 {
			t.Error("concurrent Check() lost issues")
		}
	}
}

func TestIssue_String(t *testing.T) {
	s := Issue{Line: 2, Column: 5, Message: "missing ;"}.String()
	if !strings.HasPrefix(s, "2:5: ") {
		t.Errorf("String() = %q", s)
	}
}
