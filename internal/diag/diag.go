// Package diag formats diagnostics with source context, line/column
// information and visual indicators pointing at the error location. The
// core reports positions as byte offsets and spans; this package turns
// them into human-readable output for the CLI.
package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cwbudde/go-exp/internal/ast"
)

// Diagnostic is a single renderable error with position and context.
// Start and End are byte offsets into Source; End == Start renders a
// single caret, a wider span renders an underline.
type Diagnostic struct {
	Message string
	Source  string
	File    string
	Start   int
	End     int
}

// New creates a diagnostic for a byte index.
func New(source, file, message string, index int) *Diagnostic {
	return &Diagnostic{Message: message, Source: source, File: file, Start: index, End: index}
}

// FromSpan creates a diagnostic for a node span.
func FromSpan(source, file, message string, span ast.Span) *Diagnostic {
	return &Diagnostic{Message: message, Source: source, File: file, Start: span.Start, End: span.End}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format formats the diagnostic with source context.
// If color is true, ANSI color codes are used for terminal output.
func (d *Diagnostic) Format(color bool) string {
	start := d.Start
	if start < 0 {
		start = 0
	}
	if start > len(d.Source) {
		start = len(d.Source)
	}

	line, column, lineStart, lineEnd := d.locate(start)

	var sb strings.Builder

	if d.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", d.File, line, column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", line, column))
	}

	sourceLine := d.Source[lineStart:lineEnd]
	if sourceLine != "" {
		gutter := fmt.Sprintf("%4d | ", line)
		sb.WriteString(gutter)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		width := d.underlineWidth(start, lineEnd)
		sb.WriteString(strings.Repeat(" ", len(gutter)+column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString(strings.Repeat("^", width))
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// locate maps a byte offset to 1-based line and rune column, and returns
// the byte range of the containing line.
func (d *Diagnostic) locate(offset int) (line, column, lineStart, lineEnd int) {
	line = 1
	lineStart = 0
	for i := 0; i < offset && i < len(d.Source); i++ {
		if d.Source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	column = utf8.RuneCountInString(d.Source[lineStart:offset]) + 1
	lineEnd = len(d.Source)
	for i := offset; i < len(d.Source); i++ {
		if d.Source[i] == '\n' || d.Source[i] == '\r' {
			lineEnd = i
			break
		}
	}
	return line, column, lineStart, lineEnd
}

// underlineWidth returns the width of the indicator in runes, truncated at
// the end of the source line and never less than one caret.
func (d *Diagnostic) underlineWidth(start, lineEnd int) int {
	end := d.End
	if end > lineEnd {
		end = lineEnd
	}
	if end <= start {
		return 1
	}
	return utf8.RuneCountInString(d.Source[start:end])
}
