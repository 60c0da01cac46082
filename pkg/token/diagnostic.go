package token

import "fmt"

// Severity of a Diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Diagnostic is a structured event produced during extraction, such as a skipped frame or a
// semantic token that references no primitive. The core never logs; callers decide what to do
// with the diagnostics returned next to each result.
type Diagnostic struct {
	Severity Severity
	Category string // token set or category being processed
	Node     string // raw name of the node involved, if any
	Message  string
}

func (d Diagnostic) String() string {
	if d.Node == "" {
		return fmt.Sprintf("%s: %s", d.Category, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Category, d.Node, d.Message)
}

type diagnostics []Diagnostic

func (ds *diagnostics) infof(category, node, format string, args ...any) {
	*ds = append(*ds, Diagnostic{Severity: SeverityInfo, Category: category, Node: node, Message: fmt.Sprintf(format, args...)})
}

func (ds *diagnostics) warnf(category, node, format string, args ...any) {
	*ds = append(*ds, Diagnostic{Severity: SeverityWarning, Category: category, Node: node, Message: fmt.Sprintf(format, args...)})
}
