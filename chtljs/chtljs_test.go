package chtljs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Expression(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"#app", "document.getElementById('app')"},
		{".box", "document.querySelector('.box')"},
		{"div > p", "document.querySelector('div > p')"},
		{`[data-x='a\b']`, `document.querySelector('[data-x=\'a\\b\']')`},
		{"#it's", `document.getElementById('it\'s')`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, (&Selector{Raw: tt.raw}).Expression(), "selector %q", tt.raw)
	}
}

func TestGenerate_Chain(t *testing.T) {
	chain := &Chain{
		Selector: &Selector{Raw: "#app"},
		Invocations: []Invocation{
			{Name: "foo", Args: []string{"1", "2"}},
			{Name: "bar"},
		},
	}
	assert.Equal(t, "document.getElementById('app').foo(1,2).bar()", Generate(chain))
	assert.Equal(t, "document.querySelector('.x')", Generate(&Chain{Selector: &Selector{Raw: ".x"}}))
}

func TestParseChain(t *testing.T) {
	chain, err := ParseChain(`{{ #app }}->foo(1, g(2, 3), "a,b") . bar();`)
	require.NoError(t, err)
	require.NotNil(t, chain.Selector)
	assert.Equal(t, "#app", chain.Selector.Raw)
	require.Len(t, chain.Invocations, 2)
	assert.Equal(t, "foo", chain.Invocations[0].Name)
	assert.Equal(t, []string{"1", "g(2, 3)", `"a,b"`}, chain.Invocations[0].Args)
	assert.Equal(t, `->foo(1, g(2, 3), "a,b")`, chain.Invocations[0].Raw)
	assert.Empty(t, chain.Invocations[1].Args)

	noSel, err := ParseChain("->show()")
	require.NoError(t, err)
	assert.Nil(t, noSel.Selector)
	assert.Equal(t, ".show()", Generate(noSel))
}

func TestParseChain_Errors(t *testing.T) {
	for _, src := range []string{
		"{{#app",
		"{{}}->x()",
		"{{#a}}->x(1, 2",
		"{{#a}} garbage",
	} {
		_, err := ParseChain(src)
		var se *SyntaxError
		assert.True(t, errors.As(err, &se), "ParseChain(%q) error = %v, want *SyntaxError", src, err)
	}
}

func TestTranspile(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "end to end",
			in:   `{{#app}}->textContent("Hi");`,
			want: `document.getElementById('app').textContent("Hi");`,
		},
		{
			name: "query selector",
			in:   `const el = {{.box}};`,
			want: `const el = document.querySelector('.box');`,
		},
		{
			name: "property access left alone",
			in:   `{{#in}}.value = 1;`,
			want: `document.getElementById('in').value = 1;`,
		},
		{
			name: "stray arrow",
			in:   `obj->method();`,
			want: `obj.method();`,
		},
		{
			name: "strings and comments untouched",
			in:   "s = \"{{#a}}->x()\"; // {{#b}}->y()\n/* -> */ t = `->`;",
			want: "s = \"{{#a}}->x()\"; // {{#b}}->y()\n/* -> */ t = `->`;",
		},
		{
			name: "nested chain in callback",
			in:   `{{#btn}}->listen("click", () => { {{#box}}->hide(); });`,
			want: `document.getElementById('btn').listen("click",() => { document.getElementById('box').hide(); });`,
		},
		{
			name: "decrement compare",
			in:   `while (n-->0) {}`,
			want: `while (n-->0) {}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := Transpile(tt.in)
			assert.Empty(t, errs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranspile_Malformed(t *testing.T) {
	got, errs := Transpile(`a(); {{#broken`)
	assert.Equal(t, `a(); {{#broken`, got)
	require.Len(t, errs, 1)

	var se *SyntaxError
	require.True(t, errors.As(errs[0], &se))
	assert.Equal(t, 5, se.Offset)
}
