package builtins

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/quill-lang/quill/internal/value"
)

// ExitError is returned by the exit built-in instead of calling os.Exit
// directly: the analyzer only signals the request and the command driver
// decides what to do with it.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit(%d)", e.Code)
}

// IO is the pair of streams the IO-module built-ins read and write. A fresh
// IO is constructed once per interpreter run and threaded through every
// sub-analyzer alongside the shared Environment.
type IO struct {
	Output io.Writer
	input  *bufio.Reader
}

// NewIO wraps the given streams for use by the IO built-ins.
func NewIO(out io.Writer, in io.Reader) *IO {
	return &IO{Output: out, input: bufio.NewReader(in)}
}

// Impl is the signature every built-in's Go implementation follows: it
// receives already arity- and type-checked arguments and returns the result
// value or a (non-language) execution error such as ExitError.
type Impl func(io *IO, args []value.Value) (value.Value, error)

// Impls maps each registered name to its Go implementation. Kept separate
// from the YAML-sourced type signatures in Registry so the signature table
// can be data and the behavior stays code.
var Impls = map[string]Impl{
	"print":      implPrint,
	"println":    implPrintln,
	"input":      implInput,
	"exit":       implExit,
	"strtoint":   implStrToInt,
	"strtofloat": implStrToFloat,
	"strlen":     implStrLen,
	"inttostr":   implIntToStr,
	"floattostr": implFloatToStr,
}

func implPrint(io *IO, args []value.Value) (value.Value, error) {
	s := args[0].(value.String)
	fmt.Fprint(io.Output, s.Val)
	return value.String{}, nil
}

func implPrintln(io *IO, args []value.Value) (value.Value, error) {
	s := args[0].(value.String)
	fmt.Fprintln(io.Output, s.Val)
	return value.String{}, nil
}

func implInput(io *IO, args []value.Value) (value.Value, error) {
	line, err := io.input.ReadString('\n')
	if err != nil && line == "" {
		return value.String{}, nil
	}
	return value.String{Val: line}, nil
}

func implExit(_ *IO, args []value.Value) (value.Value, error) {
	code := args[0].(value.Integer)
	return nil, &ExitError{Code: int(code.Val)}
}

func implStrToInt(_ *IO, args []value.Value) (value.Value, error) {
	s := strings.TrimSpace(args[0].(value.String).Val)
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("strtoint: %w", err)
	}
	return value.Integer{Val: int32(n)}, nil
}

func implStrToFloat(_ *IO, args []value.Value) (value.Value, error) {
	s := strings.TrimSpace(args[0].(value.String).Val)
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return nil, fmt.Errorf("strtofloat: %w", err)
	}
	return value.Decimal{Val: float32(f)}, nil
}

func implStrLen(_ *IO, args []value.Value) (value.Value, error) {
	s := args[0].(value.String).Val
	return value.Integer{Val: int32(len(s))}, nil
}

func implIntToStr(_ *IO, args []value.Value) (value.Value, error) {
	i := args[0].(value.Integer)
	return value.String{Val: i.String()}, nil
}

func implFloatToStr(_ *IO, args []value.Value) (value.Value, error) {
	f := args[0].(value.Decimal)
	return value.String{Val: f.String()}, nil
}
