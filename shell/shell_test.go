package shell

import (
	"strings"
	"testing"
)

func TestDefault_Wrap(t *testing.T) {
	out, err := Default().Wrap(Page{Title: "Demo", Body: "<p>Hi</p>", CSS: "p { color: red; }\n", JS: "go();"})
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Demo</title>",
		"<style>\np { color: red; }\n</style>",
		"<body>\n<p>Hi</p>\n<script>\ngo();\n</script>\n</body>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Wrap() = %q, missing %q", out, want)
		}
	}
}

func TestDefault_Empty(t *testing.T) {
	out, err := Default().Wrap(Page{Lang: "de", Body: "x"})
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	if strings.Contains(out, "<style>") || strings.Contains(out, "<script>") {
		t.Errorf("Wrap() = %q, want no style or script for empty globals", out)
	}
	if !strings.Contains(out, `<html lang="de">`) {
		t.Errorf("Wrap() = %q, want lang de", out)
	}
}

func TestNew(t *testing.T) {
	s, err := New(`{{ .Title | upper }}:{{ .Body }}`)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	out, err := s.Wrap(Page{Title: "t", Body: "b"})
	if err != nil || out != "T:b" {
		t.Errorf("Wrap() = %q, %v, want %q", out, err, "T:b")
	}

	if _, err := New(`{{ .Title `); err == nil {
		t.Error("New() with broken template succeeded")
	}
	s, _ = New(`{{ .Missing }}`)
	if _, err := s.Wrap(Page{}); err == nil {
		t.Error("Wrap() with unknown field succeeded")
	}
}
