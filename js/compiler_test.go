package js

import (
	"testing"

	"chtlc/common"
)

func TestCompiler_Compile(t *testing.T) {
	tests := []struct {
		name string
		mode common.JSMode
		in   string
		want string
	}{
		{
			name: "passthrough",
			mode: common.JSModePassthrough,
			in:   "a(); // note",
			want: "a(); // note",
		},
		{
			name: "strip comments",
			mode: common.JSModeStripComments,
			in:   "a(); // note\nb(); /* x */ c();",
			want: "a(); \nb();  c();",
		},
		{
			name: "multiline comment keeps line break",
			mode: common.JSModeStripComments,
			in:   "a()/* one\ntwo */b()",
			want: "a()\nb()",
		},
		{
			name: "comment between tokens",
			mode: common.JSModeStripComments,
			in:   "var/* t */x = 1; return/**/x",
			want: "var x = 1; return x",
		},
		{
			name: "compact comment between tokens",
			mode: common.JSModeCompact,
			in:   "var/* t */x = 1; return/**/x",
			want: "var x = 1; return x",
		},
		{
			name: "compact",
			mode: common.JSModeCompact,
			in:   "function f(a,  b) {\n\n    return a / b; // div\n}\nvar r = /ab+c/g;",
			want: "function f(a, b) {\nreturn a / b;\n}\nvar r = /ab+c/g;",
		},
		{
			name: "strings kept",
			mode: common.JSModeCompact,
			in:   "s = \"a  // b\";   t = `x   ${y}   z`;",
			want: "s = \"a  // b\"; t = `x   ${y}   z`;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewCompiler(tt.mode, nil).Compile(tt.in); got != tt.want {
				t.Errorf("Compile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompiler_FailSoft(t *testing.T) {
	in := "var s = \"unterminated\n;"
	if got := NewCompiler(common.JSModeCompact, nil).Compile(in); got != in {
		t.Errorf("Compile() = %q, want input unchanged", got)
	}
}

func TestRegexpAllowed(t *testing.T) {
	c := NewCompiler(common.JSModeCompact, nil)
	in := "x = a / b / c; if (ok) return /re/.test(s);"
	want := "x = a / b / c; if (ok) return /re/.test(s);"
	if got := c.Compile(in); got != want {
		t.Errorf("Compile() = %q, want %q", got, want)
	}
}
