// Package shell wraps compiled document body together with collected global
// CSS and JS into complete HTML page.
package shell

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
)

//go:embed page.html.tmpl
var defaultTemplate string

// Page is set of values available for template expansion.
type Page struct {
	Title string
	Lang  string
	Body  string
	CSS   string
	JS    string
}

type Shell struct {
	tmpl *template.Template
}

// New parses page template. Template has access to slim-sprig functions.
func New(text string) (*Shell, error) {
	tmpl, err := template.New("shell").Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse page template: %w", err)
	}
	return &Shell{tmpl: tmpl}, nil
}

// Default returns shell with built in page template.
func Default() *Shell {
	s, err := New(defaultTemplate)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Shell) Wrap(p Page) (string, error) {
	buf := new(bytes.Buffer)
	if err := s.tmpl.Execute(buf, p); err != nil {
		return "", fmt.Errorf("unable to expand page template: %w", err)
	}
	return buf.String(), nil
}
