// Package chtljs handles enhanced script: "{{selector}}" lookups followed by
// "->" or "." method chains, translated into plain DOM access code.
package chtljs

// Chain is optional selector followed by invocations in source order.
type Chain struct {
	Selector    *Selector
	Invocations []Invocation
}

// Selector keeps text between "{{" and "}}", trimmed.
type Selector struct {
	Raw string
}

// Invocation is a single chained call. Raw is source text of the call
// including chain operator.
type Invocation struct {
	Name string
	Args []string
	Raw  string
}
