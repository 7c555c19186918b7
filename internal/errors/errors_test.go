package errors_test

import (
	"fmt"
	"strings"
	"testing"

	qerrors "github.com/quill-lang/quill/internal/errors"
)

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	src := "let x = 1;\nlet y = nope;\n"
	err := qerrors.Wrap(fmt.Errorf("undefined variable nope"), src, "main.ql", 1)
	out := err.Format(false)

	if !strings.Contains(out, "main.ql:2") {
		t.Errorf("output missing header with 1-based line: %q", out)
	}
	if !strings.Contains(out, "let y = nope;") {
		t.Errorf("output missing source line: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("output missing caret: %q", out)
	}
	if !strings.Contains(out, "undefined variable nope") {
		t.Errorf("output missing message: %q", out)
	}
}

func TestFormatWithoutFileOmitsFilename(t *testing.T) {
	err := qerrors.Wrap(fmt.Errorf("boom"), "x = 1;", "", 0)
	out := err.Format(false)
	if !strings.Contains(out, "error at line 1") {
		t.Errorf("output = %q, want a fileless header", out)
	}
}

func TestFormatOutOfRangeLineOmitsSourceContext(t *testing.T) {
	err := qerrors.Wrap(fmt.Errorf("boom"), "x = 1;", "", 99)
	out := err.Format(false)
	if strings.Contains(out, "|") {
		t.Errorf("output = %q, want no gutter for an out-of-range line", out)
	}
}

type fakeLocatedErr struct{ line int }

func (e *fakeLocatedErr) Error() string  { return "fake" }
func (e *fakeLocatedErr) ErrorLine() int { return e.line }

func TestWrapLocatedUsesReportedLine(t *testing.T) {
	err := qerrors.WrapLocated(&fakeLocatedErr{line: 3}, "a\nb\nc\nd\n", "f.ql")
	if err.Line != 3 {
		t.Errorf("Line = %d, want 3", err.Line)
	}
}

func TestUnwrapReturnsOriginalError(t *testing.T) {
	orig := fmt.Errorf("original")
	wrapped := qerrors.Wrap(orig, "", "", 0)
	if wrapped.Unwrap() != orig {
		t.Error("Unwrap did not return the original error")
	}
}
