// Package scanner partitions hybrid source text into ordered fragments.
//
// Scan never fails: every byte of the input ends up in exactly one fragment
// and concatenating fragment texts in order reproduces the input. Closing
// tags are found by plain substring search, so a "</script>" inside a JS
// string literal ends the block early.
package scanner

import (
	"strings"

	"golang.org/x/net/html"
)

// Type of source fragment.
// ENUM(structural, local-style, global-style, script)
type Kind int

// Fragment is a contiguous slice of source text, Start and End are byte
// offsets into the scanned source.
type Fragment struct {
	Kind  Kind
	Start int
	End   int
	Text  string
}

type marker struct {
	open  string
	close string
	style bool
}

var markers = [...]marker{
	{open: "<style", close: "</style>", style: true},
	{open: "<script", close: "</script>"},
}

// Scan splits source into fragments. Input without any style or script
// markers (including empty input) produces single structural fragment.
func Scan(source string) []Fragment {
	var (
		frags []Fragment
		pos   int
	)

	emit := func(kind Kind, start, end int) {
		frags = append(frags, Fragment{Kind: kind, Start: start, End: end, Text: source[start:end]})
	}

	for pos < len(source) {
		idx, m := nextMarker(source, pos)
		if idx < 0 {
			break
		}
		if idx > pos {
			emit(KindStructural, pos, idx)
		}

		end := len(source)
		openEnd := strings.IndexByte(source[idx+len(m.open):], '>')
		if openEnd >= 0 {
			openEnd += idx + len(m.open) + 1
			if c := indexFold(source, m.close, openEnd); c >= 0 {
				end = c + len(m.close)
			}
		} else {
			openEnd = len(source)
		}

		kind := KindScript
		if m.style {
			kind = KindGlobalStyle
			if HasScopedFlag(source[idx:openEnd]) {
				kind = KindLocalStyle
			}
		}
		emit(kind, idx, end)
		pos = end
	}

	if pos < len(source) || len(frags) == 0 {
		emit(KindStructural, pos, len(source))
	}
	return frags
}

// nextMarker returns position of the earliest opening marker at or after
// from, or -1.
func nextMarker(source string, from int) (int, marker) {
	best, found := -1, marker{}
	for _, m := range markers {
		for at := from; ; {
			i := indexFold(source, m.open, at)
			if i < 0 {
				break
			}
			if boundary(source, i+len(m.open)) {
				if best < 0 || i < best {
					best, found = i, m
				}
				break
			}
			at = i + 1
		}
	}
	return best, found
}

// boundary reports whether tag name ends at i, so "<styles" or "<scripted"
// are not taken for markers.
func boundary(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	switch s[i] {
	case ' ', '\t', '\n', '\r', '\f', '/', '>':
		return true
	}
	return false
}

// HasScopedFlag reports whether opening tag carries "scoped" attribute. Tag
// which is not terminated is closed before tokenizing.
func HasScopedFlag(openTag string) bool {
	if !strings.HasSuffix(openTag, ">") {
		openTag += ">"
	}
	z := html.NewTokenizer(strings.NewReader(openTag))
	switch z.Next() {
	case html.StartTagToken, html.SelfClosingTagToken:
	default:
		return false
	}
	_, more := z.TagName()
	for more {
		var key []byte
		key, _, more = z.TagAttr()
		if string(key) == "scoped" {
			return true
		}
	}
	return false
}

// SplitTags separates style or script fragment text into opening tag, body
// and closing tag. Missing parts are returned empty.
func SplitTags(text string) (open, body, close string) {
	gt := strings.IndexByte(text, '>')
	if gt < 0 {
		return text, "", ""
	}
	open, rest := text[:gt+1], text[gt+1:]
	for _, m := range markers {
		if len(rest) >= len(m.close) && equalFold(rest[len(rest)-len(m.close):], m.close) {
			return open, rest[:len(rest)-len(m.close)], rest[len(rest)-len(m.close):]
		}
	}
	return open, rest, ""
}

// indexFold is ASCII case-insensitive strings.Index starting at from. Only
// ASCII letters are folded so byte offsets stay valid for the source.
func indexFold(s, sub string, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if equalFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
