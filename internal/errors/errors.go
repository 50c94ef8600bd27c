// Package errors formats diag.Diagnostic values with source context:
// the offending line plus a caret pointing at the column, optionally
// in color. The lexer and parser themselves only ever produce plain
// diag.Diagnostic values; this package is where a caller that wants a
// terminal-friendly rendering goes to get one.
package errors

import (
	"fmt"
	"strings"

	"github.com/go-pascal/pasfront/internal/diag"
)

// Format renders one diagnostic with its source line and a caret.
// If color is true, ANSI codes highlight the caret.
func Format(d diag.Diagnostic, source string, color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", d.String()))

	line := sourceLine(source, d.Pos.Line)
	if line == "" {
		return sb.String()
	}

	lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
	sb.WriteString(lineNumStr)
	sb.WriteString(line)
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^")
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// FormatAll renders every diagnostic in diags, in report order,
// separated by blank lines.
func FormatAll(diags []diag.Diagnostic, source string, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return Format(diags[0], source, color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d diagnostic(s):\n\n", len(diags)))
	for i, d := range diags {
		sb.WriteString(Format(d, source, color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
