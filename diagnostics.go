package hexwall

import "fmt"

// Diagnostic records a non-fatal problem encountered while building a wall,
// tied to the source (path, URL, or package name) that produced it.
type Diagnostic struct {
	Source  string
	Message string
}

func (d Diagnostic) String() string {
	return d.Source + ": " + d.Message
}

// diagnostics collects warnings in emission order. It replaces ambient
// warning output: the collected entries travel with the fragment and the
// caller decides whether to log them.
type diagnostics struct {
	entries []Diagnostic
}

// Warnf records a formatted diagnostic for the given source.
func (d *diagnostics) Warnf(source, format string, args ...any) {
	d.entries = append(d.entries, Diagnostic{
		Source:  source,
		Message: fmt.Sprintf(format, args...),
	})
}

// all returns the collected diagnostics in emission order.
func (d *diagnostics) all() []Diagnostic {
	return d.entries
}
