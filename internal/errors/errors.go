// Package errors formats any phase's error (lex, parse, analyze) with
// source context: a header naming the file and line, the offending source
// line itself, and a caret gutter.
package errors

import (
	"fmt"
	"strings"
)

// SourceError wraps an underlying phase error with the source text and
// (optionally) the file it came from, so it can render a header plus
// source-line-and-caret regardless of which phase produced it. Quill's
// Token carries only a line number, not a column, so the caret always
// points at the start of the line rather than a specific character.
type SourceError struct {
	Err    error
	Source string
	File   string
	Line   int // 0-based, matching token.Token.Line
}

func (e *SourceError) Error() string {
	return e.Format(false)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Format renders the full diagnostic: header, source line, caret, message.
// When color is true, the message and caret are wrapped in ANSI escapes for
// terminal output (the CLI's run command enables this; lex and parse do not).
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	displayLine := e.Line + 1
	if e.File != "" {
		fmt.Fprintf(&sb, "error in %s:%d\n", e.File, displayLine)
	} else {
		fmt.Fprintf(&sb, "error at line %d\n", displayLine)
	}

	if src := e.sourceLine(); src != "" {
		gutter := fmt.Sprintf("%4d | ", displayLine)
		sb.WriteString(gutter)
		sb.WriteString(src)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(gutter)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Err.Error())
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *SourceError) sourceLine() string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if e.Line < 0 || e.Line >= len(lines) {
		return ""
	}
	return lines[e.Line]
}

// Wrap attaches source context to err at the given line, leaving err itself
// untouched (accessible via Unwrap / errors.As).
func Wrap(err error, source, file string, line int) *SourceError {
	return &SourceError{Err: err, Source: source, File: file, Line: line}
}

// Located is implemented by every phase's own error type (lexer.LexError,
// parser.UnexpectedToken, the analyzer's taxonomy) so this package can
// locate them without importing any of those packages.
type Located interface {
	ErrorLine() int
}

// WrapLocated attaches source context using err's own reported line,
// falling back to line 0 if err does not implement Located.
func WrapLocated(err error, source, file string) *SourceError {
	line := 0
	if located, ok := err.(Located); ok {
		line = located.ErrorLine()
	}
	return Wrap(err, source, file, line)
}
