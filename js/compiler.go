// Package js re-emits plain JavaScript using tdewolff JS lexer. Like the CSS
// counterpart it is fail-soft: lexer errors leave the input untouched.
package js

import (
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
	"go.uber.org/zap"

	"chtlc/common"
)

// Compiler formats scripts according to requested mode.
type Compiler struct {
	mode common.JSMode
	log  *zap.Logger
}

func NewCompiler(mode common.JSMode, log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{mode: mode, log: log.Named("js")}
}

// Compile returns script re-emitted in compiler mode.
func (c *Compiler) Compile(text string) string {
	if !c.mode.Transforms() || strings.TrimSpace(text) == "" {
		return text
	}
	out, err := c.emit(text)
	if err != nil {
		c.log.Debug("JS left as is", zap.Error(err), zap.Int("bytes", len(text)))
		return text
	}
	return out
}

// keywords after which slash starts regular expression
var regexpKeywords = map[js.TokenType]bool{
	js.ReturnToken: true, js.TypeofToken: true, js.CaseToken: true, js.DoToken: true,
	js.ElseToken: true, js.InToken: true, js.InstanceofToken: true, js.NewToken: true,
	js.DeleteToken: true, js.VoidToken: true, js.ThrowToken: true, js.YieldToken: true,
	js.AwaitToken: true,
}

func regexpAllowed(prev js.TokenType) bool {
	switch prev {
	case js.ErrorToken:
		return true
	case js.CloseParenToken, js.CloseBracketToken, js.CloseBraceToken:
		return false
	}
	return js.IsPunctuator(prev) || regexpKeywords[prev]
}

func (c *Compiler) emit(text string) (string, error) {
	var (
		sb        strings.Builder
		prev      js.TokenType
		space     bool
		gap       bool
		lineStart = true
	)
	compact := c.mode == common.JSModeCompact

	newline := func() {
		if compact && lineStart {
			space = false
			return
		}
		sb.WriteByte('\n')
		lineStart, space = true, false
	}

	l := js.NewLexer(parse.NewInputString(text))
	for {
		tt, data := l.Next()
		if (tt == js.DivToken || tt == js.DivEqToken) && regexpAllowed(prev) {
			tt, data = l.RegExp()
		}

		switch tt {
		case js.ErrorToken:
			if err := l.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			out := sb.String()
			if compact {
				out = strings.TrimSpace(out)
			}
			return out, nil
		case js.CommentToken:
			// dropped comment still separates tokens around it
			if compact {
				space = !lineStart
			} else if out := sb.String(); out != "" && !isSpace(out[len(out)-1]) {
				gap = true
			}
			continue
		case js.CommentLineTerminatorToken:
			newline()
			continue
		case js.WhitespaceToken:
			gap = false
			if compact {
				space = !lineStart
			} else {
				sb.Write(data)
			}
			continue
		case js.LineTerminatorToken:
			gap = false
			if compact {
				newline()
			} else {
				sb.Write(data)
			}
			continue
		}

		if space || gap {
			sb.WriteByte(' ')
			space, gap = false, false
		}
		sb.Write(data)
		lineStart = false
		prev = tt
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
