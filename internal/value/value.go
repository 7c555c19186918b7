// Package value defines the run-time values the analyzer produces while
// evaluating expressions: the dynamic counterpart to the static types in
// package types.
package value

import (
	"fmt"
	"strconv"

	"github.com/quill-lang/quill/internal/types"
)

// Value is any run-time value the evaluator can produce. Each
// implementation pairs with exactly one types.Kind; Type reports which.
type Value interface {
	// Type returns the static type this value inhabits.
	Type() types.Type
	// String renders the value the way print/println/inttostr would.
	String() string
}

// Integer is a 32-bit signed integer value.
type Integer struct {
	Val int32
}

func (i Integer) Type() types.Type { return types.IntegerType }
func (i Integer) String() string   { return strconv.FormatInt(int64(i.Val), 10) }

// Decimal is a 32-bit floating point value.
type Decimal struct {
	Val float32
}

func (d Decimal) Type() types.Type { return types.DecimalType }
func (d Decimal) String() string   { return strconv.FormatFloat(float64(d.Val), 'g', -1, 32) }

// String is a text value.
type String struct {
	Val string
}

func (s String) Type() types.Type { return types.StringType }
func (s String) String() string   { return s.Val }

// Bool is a boolean value.
type Bool struct {
	Val bool
}

func (b Bool) Type() types.Type { return types.BoolType }
func (b Bool) String() string   { return strconv.FormatBool(b.Val) }

// Array is an ordered, homogeneously-typed sequence of values.
type Array struct {
	Elem     types.Type
	Elements []Value
}

func (a Array) Type() types.Type { return types.ArrayOf(a.Elem) }
func (a Array) String() string {
	out := "["
	for i, el := range a.Elements {
		if i > 0 {
			out += ", "
		}
		out += el.String()
	}
	return out + "]"
}

// ParseInteger parses a numeric literal's textual form (no '.') into a
// 32-bit Integer value, matching the analyzer's Number-literal evaluation
// rule.
func ParseInteger(text string) (Integer, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return Integer{}, fmt.Errorf("invalid integer literal %q: %w", text, err)
	}
	return Integer{Val: int32(n)}, nil
}

// ParseDecimal parses a numeric literal's textual form (containing '.')
// into a 32-bit Decimal value.
func ParseDecimal(text string) (Decimal, error) {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal literal %q: %w", text, err)
	}
	return Decimal{Val: float32(f)}, nil
}
