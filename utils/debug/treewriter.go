// Package debug has helpers producing human readable dumps of compiler
// structures for logs and debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// Text blocks longer than this are elided in the middle.
const maxTextBlock = 512

// TreeWriter accumulates indented lines, two spaces per level.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

// Line writes formatted line at depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes label followed by quoted value.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Pair writes key = value line, used for attributes and properties.
func (tw TreeWriter) Pair(depth int, key, value string) {
	tw.indent(depth)
	tw.w.WriteString(key)
	tw.w.WriteString(" = ")
	tw.w.WriteString(strconv.Quote(value))
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	if len(raw) > maxTextBlock {
		half := maxTextBlock / 2
		return strconv.Quote(raw[:half]) + fmt.Sprintf(" ...%d bytes... ", len(raw)-2*half) + strconv.Quote(raw[len(raw)-half:])
	}
	return strconv.Quote(raw)
}
