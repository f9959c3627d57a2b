package compile

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"chtlc/config"
	"chtlc/state"
)

const page = "div { style { .card { color: red; } } text { Hi } }\nscript { {{.card}}->hide(); }\n"

func newContext(t *testing.T, mutate func(*config.Config)) (context.Context, *state.LocalEnv) {
	t.Helper()
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if mutate != nil {
		mutate(cfg)
	}
	env.Cfg, env.Log = cfg, zap.NewNop()
	if err := env.Setup(); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	return ctx, env
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func writeZip(t *testing.T, name string, files map[string]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w := zip.NewWriter(f)
	for n, content := range files {
		fw, err := w.Create(n)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func names(sources []Source) []string {
	var res []string
	for _, s := range sources {
		res = append(res, filepath.ToSlash(s.Name))
	}
	slices.Sort(res)
	return res
}

func TestDiscover(t *testing.T) {
	ctx, env := newContext(t, nil)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.chtl"), "html { }")
	writeFile(t, filepath.Join(dir, "pages", "about.chtl"), "div { }")
	writeFile(t, filepath.Join(dir, "pages", "notes.txt"), "notes")
	writeZip(t, filepath.Join(dir, "lib", "mod.zip"), map[string]string{
		"parts/card.chtl": "div { }",
		"parts/readme.md": "x",
	})

	tests := []struct {
		name string
		arg  string
		want []string
	}{
		{"directory", dir, []string{"index.chtl", "lib/parts/card.chtl", "pages/about.chtl"}},
		{"file", filepath.Join(dir, "pages", "about.chtl"), []string{"about.chtl"}},
		{"archive", filepath.Join(dir, "lib", "mod.zip"), []string{"parts/card.chtl"}},
		{"path in archive", filepath.Join(dir, "lib", "mod.zip", "parts", "card.chtl"), []string{"parts/card.chtl"}},
		{"pattern", filepath.Join(dir, "**", "*.chtl"), []string{"index.chtl", "pages/about.chtl"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sources, err := Discover(ctx, tt.arg, env.Log)
			if err != nil {
				t.Fatalf("Discover() error = %v", err)
			}
			if got := names(sources); !slices.Equal(got, tt.want) {
				t.Errorf("Discover() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := Discover(ctx, filepath.Join(dir, "missing.chtl"), env.Log); err == nil {
		t.Error("Discover() of missing file should fail")
	}
	if _, err := Discover(ctx, filepath.Join(dir, "index.chtl", "inner"), env.Log); err == nil {
		t.Error("Discover() of path under regular file should fail")
	}
}

func TestSource_Read(t *testing.T) {
	ctx, env := newContext(t, nil)
	dir := t.TempDir()
	arc := filepath.Join(dir, "mod.zip")
	writeZip(t, arc, map[string]string{"a.chtl": "p { text { a } }"})

	sources, err := Discover(ctx, arc, env.Log)
	if err != nil || len(sources) != 1 {
		t.Fatalf("Discover() = %v, %v", sources, err)
	}
	text, err := sources[0].Read(env)
	if err != nil || text != "p { text { a } }" {
		t.Errorf("Read() = %q, %v", text, err)
	}

	writeFile(t, filepath.Join(dir, "cp.chtl"), "p { text { \xcf\xf0\xe8\xe2\xe5\xf2 } }")
	if err := env.SetCodePage("windows-1251"); err != nil {
		t.Fatal(err)
	}
	text, err = fileSource(filepath.Join(dir, "cp.chtl"), "cp.chtl").Read(env)
	if err != nil || !strings.Contains(text, "Привет") {
		t.Errorf("Read() = %q, %v", text, err)
	}
}

func TestBuildOutputPath(t *testing.T) {
	tests := []struct {
		name          string
		src           string
		nodirs        bool
		tmpl          string
		transliterate bool
		want          string
	}{
		{name: "default", src: "pages/about.chtl", want: "out/pages/about.html"},
		{name: "nodirs", src: "pages/about.chtl", nodirs: true, want: "out/about.html"},
		{name: "template", src: "pages/about.chtl", tmpl: "site/{{ .SourceFile | upper }}", want: "out/pages/site/ABOUT.html"},
		{name: "template source dir", src: "pages/about.chtl", nodirs: true, tmpl: "{{ .SourceDir }}-{{ .SourceFile }}", want: "out/pages-about.html"},
		{name: "empty expansion", src: "a.chtl", tmpl: "{{ if false }}x{{ end }}", want: "out/a.html"},
		{name: "broken template", src: "a.chtl", tmpl: "{{ .Missing }", want: "out/a.html"},
		{name: "transliterate", src: "docs/My Page!.chtl", transliterate: true, want: "out/docs/my-page.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, env := newContext(t, func(cfg *config.Config) {
				cfg.Output.OutputNameTemplate = tt.tmpl
				cfg.Output.FileNameTransliterate = tt.transliterate
			})
			env.NoDirs = tt.nodirs
			got := buildOutputPath(filepath.FromSlash(tt.src), "out", env)
			if filepath.ToSlash(got) != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", filepath.ToSlash(got), tt.want)
			}
		})
	}
}

func TestPageTitle(t *testing.T) {
	if got, err := pageTitle("docs/intro.chtl", "{{ .SourceFile | title }} ({{ .SourceDir }})"); err != nil || got != "Intro (docs)" {
		t.Errorf("pageTitle() = %q, %v", got, err)
	}
	if got, _ := pageTitle("docs/intro.chtl", ""); got != "intro" {
		t.Errorf("pageTitle() with empty template = %q", got)
	}
	if got, err := pageTitle("intro.chtl", "{{ .Nope }}"); err == nil || got != "intro" {
		t.Errorf("pageTitle() with broken template = %q, %v", got, err)
	}
}

func command(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:   "test",
		Action: action,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "nodirs"},
			&cli.BoolFlag{Name: "overwrite"},
			&cli.StringFlag{Name: "encoding"},
		},
	}
}

func TestRun(t *testing.T) {
	ctx, _ := newContext(t, nil)
	dir := t.TempDir()
	src := filepath.Join(dir, "src", "page.chtl")
	dst := filepath.Join(dir, "out")
	writeFile(t, src, page)

	if err := command(Run).Run(ctx, []string{"test", src, dst}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "page.html"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	for _, want := range []string{
		"<title>page</title>",
		`<div class="card">Hi</div>`,
		".card {\n  color: red;\n}",
		"document.querySelector('.card').hide();",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output = %q, missing %q", data, want)
		}
	}

	if err := command(Run).Run(ctx, []string{"test", src, dst}); err == nil {
		t.Error("Run() over existing output without --overwrite should fail")
	}
	if err := command(Run).Run(ctx, []string{"test", "--overwrite", src, dst}); err != nil {
		t.Errorf("Run() with --overwrite error = %v", err)
	}
}

func TestRun_NoShell(t *testing.T) {
	ctx, _ := newContext(t, func(cfg *config.Config) {
		cfg.Output.Shell.Enable = false
	})
	dir := t.TempDir()
	src := filepath.Join(dir, "page.chtl")
	writeFile(t, src, page)

	if err := command(Run).Run(ctx, []string{"test", "--nodirs", src, dir}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	files := map[string]string{
		"page.html": `<div class="card">Hi</div>`,
		"page.css":  ".card {",
		"page.js":   "document.querySelector('.card').hide();",
	}
	for name, want := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s not written: %v", name, err)
			continue
		}
		if !strings.Contains(string(data), want) {
			t.Errorf("%s = %q, missing %q", name, data, want)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	ctx, _ := newContext(t, nil)
	dir := t.TempDir()

	if err := command(Run).Run(ctx, []string{"test"}); err == nil {
		t.Error("Run() without sources should fail")
	}
	if err := command(Run).Run(ctx, []string{"test", filepath.Join(dir, "none.chtl"), dir}); err == nil {
		t.Error("Run() with missing source should fail")
	}
	if err := command(Run).Run(ctx, []string{"test", "--encoding", "bogus", dir, dir}); err == nil {
		t.Error("Run() with unknown encoding should fail")
	}
}

func TestRun_Strict(t *testing.T) {
	ctx, _ := newContext(t, func(cfg *config.Config) {
		cfg.Compiler.Strict = true
	})
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.chtl")
	writeFile(t, src, "div { text { Hi }")

	if err := command(Run).Run(ctx, []string{"test", src, dir}); err == nil {
		t.Error("Run() in strict mode should fail on parse error")
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.html")); !os.IsNotExist(err) {
		t.Error("output written despite strict failure")
	}
}

func TestCheck(t *testing.T) {
	ctx, env := newContext(t, nil)
	dir := t.TempDir()
	good := filepath.Join(dir, "good.chtl")
	bad := filepath.Join(dir, "bad.chtl")
	writeFile(t, good, page)
	writeFile(t, bad, "div { text { Hi }")

	if err := command(Check).Run(ctx, []string{"test", good}); err != nil {
		t.Errorf("Check() of valid source error = %v", err)
	}
	if !env.Cfg.Compiler.Validate {
		t.Error("Check() should enable validation")
	}
	if err := command(Check).Run(ctx, []string{"test", good, bad}); err == nil {
		t.Error("Check() with broken source should fail")
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 2 {
		t.Errorf("Check() wrote files: %v", entries)
	}
}
