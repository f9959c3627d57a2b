package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"chtlc/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	c := cfg.Compiler
	if c.Structural != common.StructuralModeAuto {
		t.Errorf("Structural = %s, want auto", c.Structural)
	}
	if c.CSS != common.CSSModePassthrough || c.JS != common.JSModePassthrough {
		t.Errorf("CSS = %s, JS = %s, want passthrough", c.CSS, c.JS)
	}
	if c.ScopeAttr != "data-chtl-scope" {
		t.Errorf("ScopeAttr = %q", c.ScopeAttr)
	}
	if c.ClassPrefix != "chtl" {
		t.Errorf("ClassPrefix = %q", c.ClassPrefix)
	}
	if c.Strict || c.Validate {
		t.Error("Strict and Validate should be off by default")
	}
	if cfg.Output.Extension != ".html" {
		t.Errorf("Extension = %q, want .html", cfg.Output.Extension)
	}
	if !cfg.Output.Shell.Enable || cfg.Output.Shell.Title != "{{ .SourceFile }}" {
		t.Errorf("Shell = %+v, want enabled with unexpanded title template", cfg.Output.Shell)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
compiler:
  structural: chtl
  css: minify
  js: strip-comments
  workers: 4
  strict: true
output:
  output_name_template: "{{ .SourceDir }}/{{ .SourceFile | lower }}"
  shell:
    enable: false
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Compiler.Structural != common.StructuralModeChtl {
		t.Errorf("Structural = %s, want chtl", cfg.Compiler.Structural)
	}
	if cfg.Compiler.CSS != common.CSSModeMinify {
		t.Errorf("CSS = %s, want minify", cfg.Compiler.CSS)
	}
	if cfg.Compiler.JS != common.JSModeStripComments {
		t.Errorf("JS = %s, want strip-comments", cfg.Compiler.JS)
	}
	if cfg.Compiler.Workers != 4 || !cfg.Compiler.Strict {
		t.Errorf("Workers = %d, Strict = %v", cfg.Compiler.Workers, cfg.Compiler.Strict)
	}
	if cfg.Output.Shell.Enable {
		t.Error("Expected shell to be disabled")
	}
	// values not present in the file keep defaults
	if cfg.Compiler.ScopeAttr != "data-chtl-scope" || cfg.Output.Shell.Lang != "en" {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("Console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ncompiler:\n  strict: true\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad enum", "version: 1\ncompiler:\n  css: pretty\n"},
		{"bad scope attribute", "version: 1\ncompiler:\n  scope_attr: scope\n"},
		{"too many workers", "version: 1\ncompiler:\n  workers: 1000\n"},
		{"bad extension", "version: 1\noutput:\n  extension: html\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}

	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}
	if cfg, err := LoadConfiguration("", option); err != nil || cfg == nil {
		t.Fatalf("LoadConfiguration() with options = %v, %v", cfg, err)
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Compiler.CSS = common.CSSModeNormalize

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "css: normalize") {
		t.Errorf("Dump() = %s, want enum names", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Compiler != cfg.Compiler {
		t.Errorf("Compiler after dump/load = %+v, want %+v", cfg2.Compiler, cfg.Compiler)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got: %v", err)
	}
}

func TestCompilerConfig_DispatchOptions(t *testing.T) {
	lib := filepath.Join(t.TempDir(), "lib.jsonc")
	if err := os.WriteFile(lib, []byte(`{"style": {"A": "color: red;"}} // lib`), 0644); err != nil {
		t.Fatal(err)
	}
	conf := CompilerConfig{CSS: common.CSSModeMinify, Workers: 3, ScopeAttr: "data-x", Library: lib}

	opts, err := conf.DispatchOptions()
	if err != nil {
		t.Fatalf("DispatchOptions() error = %v", err)
	}
	if opts.CSS != common.CSSModeMinify || opts.Workers != 3 || opts.ScopeAttr != "data-x" {
		t.Errorf("DispatchOptions() = %+v", opts)
	}
	if opts.Library == nil || opts.Library.Styles["A"] != "color: red;" {
		t.Errorf("Library = %+v, want loaded", opts.Library)
	}

	conf.Library = filepath.Join(t.TempDir(), "missing.jsonc")
	if _, err := conf.DispatchOptions(); err == nil {
		t.Error("Expected error for missing library")
	}
}

func TestCleanFileName(t *testing.T) {
	if got := CleanFileName("a" + string(os.PathListSeparator) + "b"); got != "ab" {
		t.Errorf("CleanFileName() = %q, want %q", got, "ab")
	}
	if got := CleanFileName(string(os.PathSeparator)); got != "_bad_file_name_" {
		t.Errorf("CleanFileName() = %q, want placeholder", got)
	}
}
