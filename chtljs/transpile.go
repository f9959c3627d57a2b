package chtljs

import (
	"errors"
	"strings"
)

// Transpile rewrites every enhanced chain found in JS text outside of
// strings and comments. Stray "->" becomes ".". Malformed chains are left
// verbatim and reported, so result is always usable.
func Transpile(js string) (string, []error) {
	var (
		sb   strings.Builder
		errs []error
	)
	sb.Grow(len(js))

	for i := 0; i < len(js); {
		rest := js[i:]
		switch c := rest[0]; {
		case c == '"' || c == '\'' || c == '`':
			n := quotedLen(rest)
			sb.WriteString(rest[:n])
			i += n
		case strings.HasPrefix(rest, "//"):
			n := strings.IndexByte(rest, '\n')
			if n < 0 {
				n = len(rest)
			}
			sb.WriteString(rest[:n])
			i += n
		case strings.HasPrefix(rest, "/*"):
			n := strings.Index(rest[2:], "*/")
			if n < 0 {
				n = len(rest)
			} else {
				n += 4
			}
			sb.WriteString(rest[:n])
			i += n
		case strings.HasPrefix(rest, "{{"):
			l := &lexer{src: rest}
			chain, err := parseChain(l)
			if err != nil {
				errs = append(errs, shift(err, i))
				sb.WriteString("{{")
				i += 2
				continue
			}
			for k := range chain.Invocations {
				args, aerrs := transpileArgs(chain.Invocations[k].Args)
				chain.Invocations[k].Args = args
				for _, e := range aerrs {
					errs = append(errs, shift(e, i))
				}
			}
			sb.WriteString(Generate(chain))
			i += l.off
		case strings.HasPrefix(rest, "->") && (i == 0 || js[i-1] != '-'):
			sb.WriteByte('.')
			i += 2
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), errs
}

// transpileArgs handles chains nested in arguments, for instance inside
// callbacks.
func transpileArgs(args []string) ([]string, []error) {
	var errs []error
	for i, a := range args {
		if !strings.Contains(a, "{{") && !strings.Contains(a, "->") {
			continue
		}
		var aerrs []error
		args[i], aerrs = Transpile(a)
		errs = append(errs, aerrs...)
	}
	return args, errs
}

func shift(err error, by int) error {
	var se *SyntaxError
	if errors.As(err, &se) {
		return &SyntaxError{Offset: se.Offset + by, Msg: se.Msg}
	}
	return err
}
