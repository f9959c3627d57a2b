package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chtlc/chtl"
	"chtlc/common"
	"chtlc/scanner"
)

func compile(t *testing.T, opts Options, src string) *Result {
	t.Helper()
	res, err := New(opts, nil).Compile(context.Background(), src)
	require.NoError(t, err)
	return res
}

func TestCompile_Routing(t *testing.T) {
	src := `div { text { Hi } }<style>a{color:red}</style><script>{{#app}}->show();</script>`
	res := compile(t, Options{}, src)

	require.Len(t, res.Fragments, 3)
	assert.Equal(t, []string{
		`<div>Hi</div>`,
		`<style>a{color:red}</style>`,
		`<script>document.getElementById('app').show();</script>`,
	}, res.Outputs)
	assert.Equal(t, strings.Join(res.Outputs, ""), res.Body)
	assert.Empty(t, res.Diagnostics)
	assert.NotNil(t, res.Documents[0])
	assert.Nil(t, res.Documents[1])
}

func TestCompile_StructuralModes(t *testing.T) {
	plain := `<p>hello</p>`
	chtlSrc := `p { text { hello } }`

	assert.Equal(t, plain, compile(t, Options{}, plain).Body)
	assert.Equal(t, `<p>hello</p>`, compile(t, Options{}, chtlSrc).Body)
	assert.Equal(t, chtlSrc, compile(t, Options{Structural: common.StructuralModePassthrough}, chtlSrc).Body)

	res := compile(t, Options{Structural: common.StructuralModeChtl}, plain)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, common.SeverityError, res.Diagnostics[0].Severity)
}

func TestCompile_ScopedStyle(t *testing.T) {
	scoped := `<style scoped>p{margin:0}</style>`
	res := compile(t, Options{}, `div { }`+scoped+`<style>q{}</style>`)

	require.Len(t, res.Outputs, 3)
	assert.Equal(t, `<style scoped data-chtl-scope="`+ScopeID(scoped)+`">p{margin:0}</style>`, res.Outputs[1])
	assert.Equal(t, `<style>q{}</style>`, res.Outputs[2])

	res = compile(t, Options{ScopeAttr: "data-s"}, scoped)
	assert.Contains(t, res.Body, `data-s="`+ScopeID(scoped)+`"`)
}

func TestScopeID(t *testing.T) {
	id := ScopeID("<style scoped>a{}</style>")
	assert.Len(t, id, 8)
	assert.Equal(t, id, ScopeID("<style scoped>a{}</style>"))
	assert.NotEqual(t, id, ScopeID("<style scoped>b{}</style>"))
}

func TestCompile_ParseErrorIsolated(t *testing.T) {
	res := compile(t, Options{}, `div { text { Hi }<style>a{}</style>`)

	require.Len(t, res.Outputs, 2)
	assert.True(t, strings.HasPrefix(res.Outputs[0], "<!-- chtl: "), res.Outputs[0])
	assert.True(t, strings.HasSuffix(res.Outputs[0], " -->"), res.Outputs[0])
	assert.Equal(t, `<style>a{}</style>`, res.Outputs[1])

	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.Equal(t, 0, d.Fragment)
	assert.Equal(t, common.SeverityError, d.Severity)
	var perr *chtl.ParseError
	assert.True(t, errors.As(d.Err, &perr))
}

func TestCompile_Strict(t *testing.T) {
	res, err := New(Options{Strict: true}, nil).Compile(context.Background(), `div {`)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Contains(t, err.Error(), "fragment 0")

	_, err = New(Options{Strict: true}, nil).Compile(context.Background(), `div { }`)
	assert.NoError(t, err)
}

func TestCompile_TemplatesAcrossFragments(t *testing.T) {
	src := "[Template] @Style Base { color: red; }\n" +
		"[Template] @Var Theme { primary: \"#336\"; }\n" +
		"<style>x{}</style>" +
		"p { style { @Style Base; } }" +
		"<script>let c = Theme(primary);</script>"
	res := compile(t, Options{}, src)

	require.Len(t, res.Outputs, 4)
	assert.Equal(t, "", strings.TrimSpace(res.Outputs[0]))
	assert.Equal(t, `<p style="color:red"></p>`, res.Outputs[2])
	assert.Equal(t, `<script>let c = #336;</script>`, res.Outputs[3])
	assert.Equal(t, 2, res.Registry.Len())
}

func TestCompile_Warnings(t *testing.T) {
	res := compile(t, Options{}, `div { style { @Style Missing; } }<script>{{#a</script>`)

	assert.Equal(t, 2, Count(res.Diagnostics, common.SeverityWarning))
	assert.Equal(t, 0, Count(res.Diagnostics, common.SeverityError))
	assert.Contains(t, res.Outputs[1], "{{#a")
	assert.Equal(t, 0, res.Diagnostics[0].Fragment)
	assert.Equal(t, 1, res.Diagnostics[1].Fragment)
}

func TestCompile_GlobalOutputs(t *testing.T) {
	src := `div { style { .card { color: red; } } }
style { body { margin: 0; } }
script { {{.x}}->hide(); }`
	res := compile(t, Options{}, src)

	assert.Contains(t, res.Body, `<div class="card"></div>`)
	assert.NotContains(t, res.Body, "margin")
	assert.Contains(t, res.GlobalCSS, ".card {\n  color: red;\n}")
	assert.Contains(t, res.GlobalCSS, "body { margin: 0; }")
	assert.Equal(t, "document.querySelector('.x').hide();", res.GlobalJS)
}

func TestCompile_CompilerModes(t *testing.T) {
	opts := Options{CSS: common.CSSModeMinify, JS: common.JSModeStripComments}
	res := compile(t, opts, "<style>a {\n  color: red;\n}</style><script>go(); // later\n</script>")

	assert.Equal(t, "<style>a{color:red;}</style>", res.Outputs[0])
	assert.NotContains(t, res.Outputs[1], "later")
	assert.Contains(t, res.Outputs[1], "go();")
}

func TestCompile_InlineStyleModes(t *testing.T) {
	src := `p { style { color: red; margin: 0 auto; } }`
	assert.Equal(t, `<p style="color:red; margin:0 auto"></p>`, compile(t, Options{}, src).Body)
	assert.Equal(t, `<p style="color:red;margin:0 auto"></p>`, compile(t, Options{CSS: common.CSSModeMinify}, src).Body)
	assert.Equal(t, `<p style="color:red; margin:0 auto"></p>`, compile(t, Options{CSS: common.CSSModeNormalize}, src).Body)
}

func TestCompile_QuotedBraces(t *testing.T) {
	res := compile(t, Options{}, `div{ script{ var s = "}"; } }`)
	assert.Equal(t, `<div><script>var s = "}";</script></div>`, res.Body)
	assert.Empty(t, res.Diagnostics)
}

func TestCompile_Origins(t *testing.T) {
	src := "[Origin] @Html Banner { <b>hi</b> }\n" +
		"<style>x{}</style>" +
		"p { [Origin] @Html Banner; [Origin] @JavaScript { go(   ) ; } }"
	res := compile(t, Options{JS: common.JSModeCompact}, src)

	require.Len(t, res.Outputs, 3)
	assert.Equal(t, "<b>hi</b>", strings.TrimSpace(res.Outputs[0]))
	assert.Equal(t, "<p><b>hi</b></p>", res.Outputs[2])
	assert.Equal(t, "go(   ) ;", res.GlobalJS)
	assert.Equal(t, 1, res.Registry.Len())
	assert.Empty(t, res.Diagnostics)
}

func TestCompile_NormalizeColors(t *testing.T) {
	res := compile(t, Options{NormalizeColors: true}, `p { style { color: red; } }`)
	assert.Equal(t, `<p style="color:#ff0000"></p>`, res.Body)
}

func TestCompile_Validate(t *testing.T) {
	res := compile(t, Options{Validate: true}, `<script>let = ;</script>`)
	assert.Positive(t, Count(res.Diagnostics, common.SeverityWarning))

	res = compile(t, Options{Validate: true}, `<script>go();</script>`)
	assert.Empty(t, res.Diagnostics)
}

func TestCompile_StableUnderWorkers(t *testing.T) {
	var sb strings.Builder
	for i := range 20 {
		sb.WriteString("div { text { x } }<style scoped>p{}</style><script>{{#a}}->b();</script>")
		if i%3 == 0 {
			sb.WriteString("[Template] @Style S { margin: 0; }")
		}
	}
	src := sb.String()

	one := compile(t, Options{Workers: 1}, src)
	many := compile(t, Options{Workers: 16}, src)
	assert.Equal(t, one.Body, many.Body)
	assert.Equal(t, one.Outputs, many.Outputs)
}

func TestCompileAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frags := scanner.Scan(`div { }<style>a{}</style>`)
	outs, diags := New(Options{}, nil).CompileAll(ctx, frags)
	require.Len(t, outs, 2)
	assert.Equal(t, frags[0].Text, outs[0])
	assert.Len(t, diags, 2)
	assert.True(t, errors.Is(diags[0].Err, context.Canceled))

	_, err := New(Options{}, nil).Compile(ctx, `div { }`)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMerge(t *testing.T) {
	frags := scanner.Scan(`a<style>b</style>c`)
	assert.Equal(t, "123", Merge(frags, []string{"1", "2", "3"}))
	assert.Panics(t, func() { Merge(frags, []string{"1"}) })
	assert.Equal(t, "", Merge(nil, nil))
}

func TestErrors(t *testing.T) {
	diags := []Diagnostic{
		{Fragment: 0, Severity: common.SeverityWarning, Message: "w"},
		{Fragment: 1, Severity: common.SeverityError, Message: "first"},
		{Fragment: 2, Severity: common.SeverityError, Err: errors.New("second")},
	}
	err := Errors(diags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fragment 1: first")
	assert.Contains(t, err.Error(), "fragment 2: second")
	assert.NoError(t, Errors(diags[:1]))
	assert.Equal(t, "fragment 0: warning: w", diags[0].String())
}

func TestResult_Dump(t *testing.T) {
	res := compile(t, Options{}, `div { style { @Style X; } }<style>a{}</style>`)
	dump := res.Dump()

	assert.Contains(t, dump, "Fragments (2)\n")
	assert.Contains(t, dump, "  [0] structural 0..")
	assert.Contains(t, dump, "  [1] global-style ")
	assert.Contains(t, dump, `    Output: "<style>a{}</style>"`)
	assert.Contains(t, dump, "Diagnostics (1)\n  fragment 0: warning: ")

	var nilResult *Result
	assert.Equal(t, "<nil Result>", nilResult.Dump())
}
