// Package diag is the shared diagnostic sink injected into both the
// lexer and the parser, replacing the two independent sticky error
// flags of the source with one collector both components report into.
package diag

import (
	"fmt"

	"github.com/go-pascal/pasfront/pkg/token"
)

// Category distinguishes where a diagnostic originated, which
// selects its message prefix.
type Category int

const (
	// TokenError is reported by the lexer.
	TokenError Category = iota
	// SyntaxError is reported by the parser.
	SyntaxError
)

func (c Category) prefix() string {
	if c == TokenError {
		return "Token Error:"
	}
	return "Syntax Error:"
}

// Diagnostic is one reported error, tagged with the component that
// raised it and the location it occurred at.
type Diagnostic struct {
	Category Category
	Pos      token.Position
	Message  string
}

// String formats a diagnostic as "file:line:column: <prefix> <msg>",
// the one-line format §6.3 requires.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s %s", d.Pos.String(), d.Category.prefix(), d.Message)
}

// Sink collects diagnostics from both the lexer and the parser over
// the lifetime of a single run. It is owned by the caller and passed
// by reference into both components.
type Sink struct {
	diagnostics []Diagnostic
	reportedBy  map[Category]bool
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{reportedBy: make(map[Category]bool)}
}

// Report records a diagnostic. Reports are kept in discovery order.
func (s *Sink) Report(cat Category, pos token.Position, msg string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Category: cat, Pos: pos, Message: msg})
	s.reportedBy[cat] = true
}

// Reportf is Report with printf-style message formatting.
func (s *Sink) Reportf(cat Category, pos token.Position, format string, args ...any) {
	s.Report(cat, pos, fmt.Sprintf(format, args...))
}

// Any reports whether any diagnostic has been recorded, by any
// component.
func (s *Sink) Any() bool {
	return len(s.diagnostics) > 0
}

// AnyFrom reports whether a specific category has ever reported,
// backing the per-component ErrorFlag() accessor §4.2/§4.3 require
// without reintroducing an independent boolean.
func (s *Sink) AnyFrom(cat Category) bool {
	return s.reportedBy[cat]
}

// Diagnostics returns every recorded diagnostic, in discovery order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}
