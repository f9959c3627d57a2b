package dispatch

import (
	"chtlc/utils/debug"
)

// Dump returns readable table of fragments with their outputs and
// diagnostics. Used for debug reports.
func (r *Result) Dump() string {
	if r == nil {
		return "<nil Result>"
	}
	tw := debug.NewTreeWriter()
	tw.Line(0, "Fragments (%d)", len(r.Fragments))
	for i, f := range r.Fragments {
		tw.Line(1, "[%d] %s %d..%d", i, f.Kind, f.Start, f.End)
		tw.TextBlock(2, "Source", f.Text)
		if i < len(r.Outputs) {
			tw.TextBlock(2, "Output", r.Outputs[i])
		}
	}
	tw.Line(0, "Diagnostics (%d)", len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		tw.Line(1, "%s", d)
	}
	if r.GlobalCSS != "" {
		tw.TextBlock(0, "GlobalCSS", r.GlobalCSS)
	}
	if r.GlobalJS != "" {
		tw.TextBlock(0, "GlobalJS", r.GlobalJS)
	}
	return tw.String()
}
