package compile

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"chtlc/config"
)

// Values is a struct that holds variables we make available for template
// expansion.
type Values struct {
	Context    string
	SourceFile string
	SourceDir  string
	Title      string
}

func newValues(name config.TemplateFieldName, src string) Values {
	return Values{
		Context:    string(name),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		SourceDir:  filepath.ToSlash(filepath.Dir(src)),
	}
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", name, err)
	}
	return buf.String(), nil
}

// pageTitle expands configured title for source src. Failure is not fatal:
// base name of the source is used.
func pageTitle(src, field string) (string, error) {
	values := newValues(config.ShellTitleFieldName, src)
	if field == "" {
		return values.SourceFile, nil
	}
	title, err := expandTemplate(config.ShellTitleFieldName, field, values)
	if err != nil {
		return values.SourceFile, err
	}
	return strings.TrimSpace(title), nil
}
