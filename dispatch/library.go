package dispatch

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/maruel/natural"
	"github.com/tidwall/jsonc"

	"chtlc/ast"
	"chtlc/chtl"
	"chtlc/registry"
)

// Library is set of templates loaded from JSONC file and defined before any
// template declared in compiled sources:
//
//	{
//	  // style templates keep raw body
//	  "style":   {"Base": "color: #333; margin: 0;"},
//	  "var":     {"Theme": {"primary": "#336"}},
//	  // element templates are structural source
//	  "element": {"Card": "div { class: card; }"}
//	}
type Library struct {
	Styles   map[string]string            `json:"style"`
	Vars     map[string]map[string]string `json:"var"`
	Elements map[string]string            `json:"element"`

	parsed map[string][]ast.Node
}

// LoadLibrary reads library file. Element sources are parsed immediately so
// broken library is reported once, before anything is compiled.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read template library: %w", err)
	}
	lib, err := ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("template library '%s': %w", path, err)
	}
	return lib, nil
}

// ParseLibrary decodes library from JSON with comments.
func ParseLibrary(data []byte) (*Library, error) {
	lib := &Library{}
	if err := json.Unmarshal(jsonc.ToJSON(data), lib); err != nil {
		return nil, fmt.Errorf("unable to decode template library: %w", err)
	}
	lib.parsed = make(map[string][]ast.Node, len(lib.Elements))
	for name, src := range lib.Elements {
		doc, err := chtl.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("element template '%s': %w", name, err)
		}
		lib.parsed[name] = doc.Children
	}
	return lib, nil
}

// Apply defines every library template on builder. Nil library defines
// nothing.
func (l *Library) Apply(b *registry.Builder) {
	if l == nil {
		return
	}
	for _, name := range sortedKeys(l.Styles) {
		b.DefineStyle(name, l.Styles[name])
	}
	for _, name := range sortedKeys(l.Vars) {
		b.DefineVar(name, l.Vars[name])
	}
	for _, name := range sortedKeys(l.parsed) {
		b.DefineElement(name, l.parsed[name])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
	return keys
}
