// Package dispatch routes scanned fragments to compilers, runs them over a
// bounded worker pool and merges compiled fragments back in source order.
package dispatch

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"chtlc/ast"
	"chtlc/chtl"
	"chtlc/chtljs"
	"chtlc/common"
	"chtlc/css"
	"chtlc/js"
	"chtlc/lint"
	"chtlc/registry"
	"chtlc/scanner"
)

const DefaultScopeAttr = "data-chtl-scope"

// Options configure Dispatcher. Zero value is usable.
type Options struct {
	Structural      common.StructuralMode
	CSS             common.CSSMode
	JS              common.JSMode
	ScopeAttr       string
	Workers         int
	Strict          bool
	Validate        bool
	NormalizeColors bool
	ClassPrefix     string
	Library         *Library
}

// Dispatcher compiles fragments. It is safe to use from several goroutines,
// every compilation builds its own registry.
type Dispatcher struct {
	opts Options
	css  *css.Compiler
	js   *js.Compiler
	log  *zap.Logger
}

func New(opts Options, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.ScopeAttr == "" {
		opts.ScopeAttr = DefaultScopeAttr
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Dispatcher{
		opts: opts,
		css:  css.NewCompiler(opts.CSS, log),
		js:   js.NewCompiler(opts.JS, log),
		log:  log.Named("dispatch"),
	}
}

// Result holds everything produced by single compilation. Outputs are
// parallel to Fragments, Documents holds parsed structural fragments (nil
// for fragments which were not parsed).
type Result struct {
	Fragments   []scanner.Fragment
	Outputs     []string
	Body        string
	GlobalCSS   string
	GlobalJS    string
	Diagnostics []Diagnostic
	Registry    *registry.Registry
	Documents   []*ast.Document
}

// Compile scans source, compiles all fragments and merges them. Returned
// error is not nil when context was canceled before dispatch, or, in strict
// mode, when any fragment produced error diagnostic. Result is returned in
// both cases.
func (d *Dispatcher) Compile(ctx context.Context, source string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := d.run(ctx, scanner.Scan(source))
	res.Body = Merge(res.Fragments, res.Outputs)

	if d.opts.Strict {
		if err := Errors(res.Diagnostics); err != nil {
			return res, fmt.Errorf("compilation failed: %w", err)
		}
	}
	return res, nil
}

// CompileAll compiles fragments returning outputs of the same length and
// order as input together with all diagnostics in fragment order.
func (d *Dispatcher) CompileAll(ctx context.Context, frags []scanner.Fragment) ([]string, []Diagnostic) {
	res := d.run(ctx, frags)
	return res.Outputs, res.Diagnostics
}

// unit is state of single fragment compilation, owned by one worker.
type unit struct {
	diags   collector
	doc     *ast.Document
	rules   []ast.Rule
	styles  []string
	scripts []string
}

func (d *Dispatcher) run(ctx context.Context, frags []scanner.Fragment) *Result {
	res := &Result{
		Fragments: frags,
		Outputs:   make([]string, len(frags)),
		Documents: make([]*ast.Document, len(frags)),
	}
	units := make([]*unit, len(frags))
	for i := range frags {
		units[i] = &unit{diags: collector{fragment: i}}
	}
	if err := ctx.Err(); err != nil {
		for i, f := range frags {
			res.Outputs[i] = f.Text
			units[i].diags.add(common.SeverityError, fmt.Errorf("not compiled: %w", err))
			res.Diagnostics = append(res.Diagnostics, units[i].diags.list...)
		}
		res.Registry = registry.Empty()
		return res
	}

	// parse first so that every template declaration is known before any
	// fragment is resolved
	failed := make([]error, len(frags))
	d.each(frags, func(i int, f scanner.Fragment) {
		if f.Kind != scanner.KindStructural || !d.structural(f.Text) {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				failed[i] = fmt.Errorf("parser panic: %v", r)
			}
		}()
		doc, err := chtl.Parse(f.Text)
		if err != nil {
			failed[i] = err
			return
		}
		units[i].doc = doc
	})

	b := registry.NewBuilder()
	d.opts.Library.Apply(b)
	for i, u := range units {
		if u.doc == nil {
			continue
		}
		res.Documents[i] = u.doc
		for _, n := range u.doc.Children {
			switch v := n.(type) {
			case *ast.TemplateDecl:
				b.Define(v)
			case *ast.Origin:
				b.DefineOrigin(v)
			}
		}
	}
	res.Registry = b.Freeze()
	d.log.Debug("Registry frozen", zap.Int("templates", res.Registry.Len()))

	d.each(frags, func(i int, f scanner.Fragment) {
		u := units[i]
		if err := failed[i]; err != nil {
			res.Outputs[i] = placeholder(err)
			u.diags.add(common.SeverityError, err)
			return
		}
		res.Outputs[i] = d.compileFragment(u, f, res.Registry)
	})

	var globalCSS, globalJS []string
	for _, u := range units {
		res.Diagnostics = append(res.Diagnostics, u.diags.list...)
		if len(u.rules) > 0 {
			globalCSS = append(globalCSS, chtl.RenderRules(u.rules))
		}
		globalCSS = append(globalCSS, u.styles...)
		globalJS = append(globalJS, u.scripts...)
	}
	if len(globalCSS) > 0 {
		res.GlobalCSS = d.css.Compile(strings.Join(globalCSS, "\n"))
	}
	res.GlobalJS = strings.Join(globalJS, "\n")
	return res
}

// each runs f for every fragment over worker pool and waits for all of them.
func (d *Dispatcher) each(frags []scanner.Fragment, f func(int, scanner.Fragment)) {
	var g errgroup.Group
	g.SetLimit(d.opts.Workers)
	for i, frag := range frags {
		g.Go(func() error {
			f(i, frag)
			return nil
		})
	}
	_ = g.Wait()
}

// compileFragment never panics: failure of one fragment turns into
// placeholder output and error diagnostic of that fragment only.
func (d *Dispatcher) compileFragment(u *unit, f scanner.Fragment, reg *registry.Registry) (out string) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("compiler panic: %v", r)
			d.log.Error("Fragment compilation failed", zap.Int("fragment", u.diags.fragment), zap.Error(err))
			u.diags.add(common.SeverityError, err)
			out = placeholder(err)
		}
	}()

	d.log.Debug("Compiling fragment", zap.Int("fragment", u.diags.fragment), zap.Stringer("kind", f.Kind), zap.Int("start", f.Start), zap.Int("end", f.End))

	switch f.Kind {
	case scanner.KindStructural:
		out = d.compileStructural(u, f.Text, reg)
		if u.doc != nil {
			d.lint(u, lint.LanguageHtml, out)
		}
	case scanner.KindLocalStyle:
		out = d.scopeStyle(f.Text)
	case scanner.KindGlobalStyle:
		open, body, close := scanner.SplitTags(f.Text)
		compiled := d.css.Compile(body)
		d.lint(u, lint.LanguageCss, compiled)
		out = open + compiled + close
	case scanner.KindScript:
		open, body, close := scanner.SplitTags(f.Text)
		compiled := d.script(u, body, reg)
		d.lint(u, lint.LanguageJavascript, compiled)
		out = open + compiled + close
	default:
		out = f.Text
	}
	return out
}

func (d *Dispatcher) compileStructural(u *unit, text string, reg *registry.Registry) string {
	if u.doc == nil {
		return text
	}
	opts := chtl.ResolveOptions{ClassPrefix: d.opts.ClassPrefix}
	if d.opts.NormalizeColors {
		opts.Color = css.NormalizeColor
	}
	resolved := chtl.Resolve(u.doc, reg, opts)
	for _, w := range resolved.Warnings {
		u.diags.add(common.SeverityWarning, w)
	}
	u.rules = resolved.Rules
	u.styles = resolved.GlobalStyles
	for _, s := range resolved.GlobalScripts {
		code := strings.TrimSpace(s.Code)
		if !s.Raw {
			code = d.script(u, code, reg)
		}
		u.scripts = append(u.scripts, code)
	}
	return chtl.Generate(resolved.Document,
		chtl.WithScriptFilter(func(code string) string {
			return d.script(u, code, reg)
		}),
		chtl.WithStyleFilter(d.css.CompileInline))
}

// script runs code through variable substitution, enhanced script transpiler
// and JS compiler. Malformed chains are kept verbatim and reported.
func (d *Dispatcher) script(u *unit, code string, reg *registry.Registry) string {
	out, errs := chtljs.Transpile(reg.Substitute(code))
	for _, err := range errs {
		u.diags.add(common.SeverityWarning, err)
	}
	return d.js.Compile(out)
}

// scopeStyle marks opening tag of scoped local style with attribute carrying
// id derived from fragment text.
func (d *Dispatcher) scopeStyle(text string) string {
	open, body, close := scanner.SplitTags(text)
	if !scanner.HasScopedFlag(open) {
		return text
	}
	attr := fmt.Sprintf(` %s="%s"`, d.opts.ScopeAttr, ScopeID(text))
	at := len(open)
	if strings.HasSuffix(open, "/>") {
		at -= 2
	} else if strings.HasSuffix(open, ">") {
		at--
	}
	return open[:at] + attr + open[at:] + body + close
}

func (d *Dispatcher) structural(text string) bool {
	switch d.opts.Structural {
	case common.StructuralModeChtl:
		return true
	case common.StructuralModePassthrough:
		return false
	}
	return chtl.IsStructural(text)
}

func (d *Dispatcher) lint(u *unit, lang lint.Language, text string) {
	if !d.opts.Validate {
		return
	}
	for _, issue := range lint.Check(lang, text) {
		u.diags.note(common.SeverityWarning, "%s %s", lang, issue)
	}
}

// ScopeID returns stable 8 hex digit id of text.
func ScopeID(text string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(text)).String()[:8]
}

func placeholder(err error) string {
	return "<!-- chtl: " + strings.ReplaceAll(err.Error(), "--", "- -") + " -->"
}

// Merge concatenates outputs in fragment order. Slices of different length
// is a programming error.
func Merge(frags []scanner.Fragment, outputs []string) string {
	if len(frags) != len(outputs) {
		panic(fmt.Sprintf("merge: %d fragments but %d outputs", len(frags), len(outputs)))
	}
	var sb strings.Builder
	for _, o := range outputs {
		sb.WriteString(o)
	}
	return sb.String()
}
