package diagnostics

import (
	"strings"

	"github.com/compiscript/compiscript/internal/token"
)

// Reporter is an ordered, append-only collector of diagnostics.
// Insertion order is traversal order; nothing is deduplicated.
type Reporter struct {
	errors []*DiagnosticError
}

func NewReporter() *Reporter {
	return &Reporter{errors: []*DiagnosticError{}}
}

// Report records a diagnostic at the given position.
func (r *Reporter) Report(line, col int, code ErrorCode, args ...interface{}) {
	r.errors = append(r.errors, &DiagnosticError{
		Code:  code,
		Phase: PhaseAnalyzer,
		Args:  args,
		Token: token.Token{Line: line, Column: col},
	})
}

// Add appends an already-built diagnostic.
func (r *Reporter) Add(err *DiagnosticError) {
	r.errors = append(r.errors, err)
}

// Errors returns the recorded diagnostics in insertion order.
func (r *Reporter) Errors() []*DiagnosticError {
	return r.errors
}

// HasErrors reports whether any diagnostic was recorded.
func (r *Reporter) HasErrors() bool {
	return len(r.errors) > 0
}

// Count returns the number of recorded diagnostics.
func (r *Reporter) Count() int {
	return len(r.errors)
}

// Clear discards all recorded diagnostics.
func (r *Reporter) Clear() {
	r.errors = r.errors[:0]
}

func (r *Reporter) String() string {
	if len(r.errors) == 0 {
		return "No hay errores."
	}
	lines := make([]string, len(r.errors))
	for i, e := range r.errors {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}
