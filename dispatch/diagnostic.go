package dispatch

import (
	"fmt"

	"go.uber.org/multierr"

	"chtlc/common"
)

// Diagnostic is a problem found while compiling a single fragment.
type Diagnostic struct {
	Fragment int
	Severity common.Severity
	Message  string
	Err      error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("fragment %d: %s: %s", d.Fragment, d.Severity, d.Message)
}

func (d Diagnostic) Error() error {
	if d.Err != nil {
		return fmt.Errorf("fragment %d: %w", d.Fragment, d.Err)
	}
	return fmt.Errorf("fragment %d: %s", d.Fragment, d.Message)
}

// collector keeps diagnostics of one fragment. Each worker owns its own
// collector so no locking is needed.
type collector struct {
	fragment int
	list     []Diagnostic
}

func (c *collector) add(sev common.Severity, err error) {
	c.list = append(c.list, Diagnostic{Fragment: c.fragment, Severity: sev, Message: err.Error(), Err: err})
}

func (c *collector) note(sev common.Severity, format string, args ...any) {
	c.list = append(c.list, Diagnostic{Fragment: c.fragment, Severity: sev, Message: fmt.Sprintf(format, args...)})
}

// Errors combines all error level diagnostics into single error, nil when
// there are none.
func Errors(diags []Diagnostic) error {
	var err error
	for _, d := range diags {
		if d.Severity == common.SeverityError {
			err = multierr.Append(err, d.Error())
		}
	}
	return err
}

// Count returns number of diagnostics with given severity.
func Count(diags []Diagnostic, sev common.Severity) int {
	var n int
	for _, d := range diags {
		if d.Severity == sev {
			n++
		}
	}
	return n
}
