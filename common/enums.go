// Package common keeps enumerations shared between configuration and the
// compiler packages. Keeping them here lets css, js and dispatch use them
// without pulling configuration loading in.
package common

// How structural (non style, non script) fragments are treated.
// ENUM(auto, chtl, passthrough)
type StructuralMode int

// Output form of the plain CSS compiler.
// ENUM(passthrough, normalize, minify)
type CSSMode int

// Output form of the plain JS compiler.
// ENUM(passthrough, strip-comments, compact)
type JSMode int

// Severity of compilation diagnostics.
// ENUM(info, warning, error)
type Severity int

// Transforms reports whether compiler in this mode rewrites its input at all.
func (m CSSMode) Transforms() bool {
	return m != CSSModePassthrough
}

// Transforms reports whether compiler in this mode rewrites its input at all.
func (m JSMode) Transforms() bool {
	return m != JSModePassthrough
}
