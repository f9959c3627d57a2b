// Package css re-emits plain stylesheets using tdewolff CSS grammar parser.
// Compilation never fails: when grammar parser reports an error the input is
// returned unchanged.
package css

import (
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"chtlc/common"
)

// Compiler formats stylesheets according to requested mode.
type Compiler struct {
	mode common.CSSMode
	log  *zap.Logger
}

func NewCompiler(mode common.CSSMode, log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{mode: mode, log: log.Named("css")}
}

// Compile returns stylesheet re-emitted in compiler mode.
func (c *Compiler) Compile(text string) string {
	if !c.mode.Transforms() || strings.TrimSpace(text) == "" {
		return text
	}
	out, err := c.emit(text)
	if err != nil {
		c.log.Debug("CSS left as is", zap.Error(err), zap.Int("bytes", len(text)))
		return text
	}
	return out
}

// CompileInline formats declaration list of style attribute.
func (c *Compiler) CompileInline(text string) string {
	if !c.mode.Transforms() || strings.TrimSpace(text) == "" {
		return text
	}
	out, err := c.emitInline(text)
	if err != nil {
		c.log.Debug("inline CSS left as is", zap.Error(err))
		return text
	}
	return out
}

type writer struct {
	sb     strings.Builder
	depth  int
	minify bool
}

func (w *writer) indent() {
	if w.minify {
		return
	}
	for range w.depth {
		w.sb.WriteString("  ")
	}
}

func (w *writer) newline() {
	if !w.minify {
		w.sb.WriteByte('\n')
	}
}

func (w *writer) tokens(values []css.Token) {
	for _, v := range values {
		w.sb.Write(v.Data)
	}
}

func (w *writer) open(data []byte, values []css.Token) {
	w.indent()
	w.sb.Write(data)
	w.tokens(values)
	if w.minify {
		w.sb.WriteByte('{')
	} else {
		w.sb.WriteString(" {\n")
	}
	w.depth++
}

func (w *writer) close() {
	if w.depth > 0 {
		w.depth--
	}
	w.indent()
	w.sb.WriteByte('}')
	w.newline()
}

func (w *writer) declaration(name []byte, value string) {
	w.indent()
	w.sb.Write(name)
	w.sb.WriteByte(':')
	if !w.minify {
		w.sb.WriteByte(' ')
	}
	w.sb.WriteString(value)
	w.sb.WriteByte(';')
	w.newline()
}

func value(values []css.Token) string {
	var sb strings.Builder
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}

func (c *Compiler) emit(text string) (string, error) {
	w := &writer{minify: c.mode == common.CSSModeMinify}
	p := css.NewParser(parse.NewInputString(text), false)

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return strings.TrimSpace(w.sb.String()) + c.trailer(), nil
		case css.CommentGrammar:
			if !w.minify {
				w.indent()
				w.sb.Write(data)
				w.newline()
			}
		case css.AtRuleGrammar:
			w.indent()
			w.sb.Write(data)
			w.tokens(p.Values())
			w.sb.WriteByte(';')
			w.newline()
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			w.open(data, p.Values())
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			w.close()
		case css.QualifiedRuleGrammar:
			w.indent()
			w.sb.Write(data)
			w.tokens(p.Values())
			w.sb.WriteByte(',')
		case css.DeclarationGrammar:
			w.declaration(data, value(p.Values()))
		case css.CustomPropertyGrammar:
			w.declaration(data, value(p.Values()))
		case css.TokenGrammar:
			w.sb.Write(data)
		}
	}
}

func (c *Compiler) emitInline(text string) (string, error) {
	var parts []string
	p := css.NewParser(parse.NewInputString(text), true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			sep := "; "
			if c.mode == common.CSSModeMinify {
				sep = ";"
			}
			return strings.Join(parts, sep), nil
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			parts = append(parts, string(data)+":"+value(p.Values()))
		}
	}
}

func (c *Compiler) trailer() string {
	if c.mode == common.CSSModeMinify {
		return ""
	}
	return "\n"
}
