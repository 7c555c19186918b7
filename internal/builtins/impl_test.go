package builtins_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/quill-lang/quill/internal/builtins"
	"github.com/quill-lang/quill/internal/value"
)

func TestImplPrintWritesNoNewline(t *testing.T) {
	var buf bytes.Buffer
	io := builtins.NewIO(&buf, strings.NewReader(""))
	if _, err := builtins.Impls["print"](io, []value.Value{value.String{Val: "hi"}}); err != nil {
		t.Fatalf("print: unexpected error: %v", err)
	}
	if buf.String() != "hi" {
		t.Errorf("output = %q, want %q", buf.String(), "hi")
	}
}

func TestImplPrintlnAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	io := builtins.NewIO(&buf, strings.NewReader(""))
	if _, err := builtins.Impls["println"](io, []value.Value{value.String{Val: "hi"}}); err != nil {
		t.Fatalf("println: unexpected error: %v", err)
	}
	if buf.String() != "hi\n" {
		t.Errorf("output = %q, want %q", buf.String(), "hi\n")
	}
}

func TestImplInputPreservesTrailingNewline(t *testing.T) {
	io := builtins.NewIO(&bytes.Buffer{}, strings.NewReader("hello\nworld\n"))
	v, err := builtins.Impls["input"](io, nil)
	if err != nil {
		t.Fatalf("input: unexpected error: %v", err)
	}
	if v.(value.String).Val != "hello\n" {
		t.Errorf("input = %q, want %q", v.(value.String).Val, "hello\n")
	}
}

func TestImplExitReturnsExitError(t *testing.T) {
	io := builtins.NewIO(&bytes.Buffer{}, strings.NewReader(""))
	_, err := builtins.Impls["exit"](io, []value.Value{value.Integer{Val: 7}})
	exitErr, ok := err.(*builtins.ExitError)
	if !ok {
		t.Fatalf("err = %#v, want *builtins.ExitError", err)
	}
	if exitErr.Code != 7 {
		t.Errorf("Code = %d, want 7", exitErr.Code)
	}
}

func TestImplStrToIntTrimsWhitespace(t *testing.T) {
	io := builtins.NewIO(&bytes.Buffer{}, strings.NewReader(""))
	v, err := builtins.Impls["strtoint"](io, []value.Value{value.String{Val: "  42  "}})
	if err != nil {
		t.Fatalf("strtoint: unexpected error: %v", err)
	}
	if v.(value.Integer).Val != 42 {
		t.Errorf("strtoint = %v, want 42", v)
	}
}

func TestImplStrLenIsByteLength(t *testing.T) {
	io := builtins.NewIO(&bytes.Buffer{}, strings.NewReader(""))
	v, err := builtins.Impls["strlen"](io, []value.Value{value.String{Val: "hello"}})
	if err != nil {
		t.Fatalf("strlen: unexpected error: %v", err)
	}
	if v.(value.Integer).Val != 5 {
		t.Errorf("strlen = %v, want 5", v)
	}
}

func TestImplIntToStrAndFloatToStr(t *testing.T) {
	io := builtins.NewIO(&bytes.Buffer{}, strings.NewReader(""))
	v, err := builtins.Impls["inttostr"](io, []value.Value{value.Integer{Val: -3}})
	if err != nil {
		t.Fatalf("inttostr: unexpected error: %v", err)
	}
	if v.(value.String).Val != "-3" {
		t.Errorf("inttostr = %v, want -3", v)
	}

	v, err = builtins.Impls["floattostr"](io, []value.Value{value.Decimal{Val: 3.5}})
	if err != nil {
		t.Fatalf("floattostr: unexpected error: %v", err)
	}
	if v.(value.String).Val != "3.5" {
		t.Errorf("floattostr = %v, want 3.5", v)
	}
}
