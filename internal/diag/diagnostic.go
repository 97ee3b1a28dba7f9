package diag

import (
	"ryl/internal/source"
)

// Label is a secondary span with an explanatory message, rendered
// underneath the source line it points at.
type Label struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single rendered-ready message with a primary span,
// optional secondary labels, and free-text notes.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Labels   []Label
	Notes    []string
}
