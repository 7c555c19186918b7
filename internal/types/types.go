// Package types defines the static type vocabulary the analyzer checks
// expressions and variable declarations against.
package types

import "fmt"

// Kind is the tag of a Type. Array is the only composite kind; it carries
// an element Type alongside the tag.
type Kind int

const (
	Integer Kind = iota
	Decimal
	String
	Bool
	Void
	Array
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Decimal:
		return "Decimal"
	case String:
		return "String"
	case Bool:
		return "Bool"
	case Void:
		return "Void"
	case Array:
		return "Array"
	default:
		return "Unknown"
	}
}

// Type is an immutable value type descriptor. Two Types are equal (use
// Equals, not ==, because Array wraps a pointer) when their Kind matches
// and, for Array, their element types are recursively equal.
type Type struct {
	Kind Kind
	Elem *Type // non-nil only when Kind == Array
}

// Scalar constructors for the five non-composite kinds.
var (
	IntegerType = Type{Kind: Integer}
	DecimalType = Type{Kind: Decimal}
	StringType  = Type{Kind: String}
	BoolType    = Type{Kind: Bool}
	VoidType    = Type{Kind: Void}
)

// ArrayOf builds an Array type with the given element type.
func ArrayOf(elem Type) Type {
	e := elem
	return Type{Kind: Array, Elem: &e}
}

// Equals reports whether t and other describe the same type.
func (t Type) Equals(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind != Array {
		return true
	}
	if t.Elem == nil || other.Elem == nil {
		return t.Elem == other.Elem
	}
	return t.Elem.Equals(*other.Elem)
}

// String renders the type the way diagnostics should display it, e.g.
// "Array(Integer)".
func (t Type) String() string {
	if t.Kind != Array {
		return t.Kind.String()
	}
	if t.Elem == nil {
		return "Array(?)"
	}
	return fmt.Sprintf("Array(%s)", t.Elem.String())
}
