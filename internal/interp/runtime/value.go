// Package runtime holds the values, declaration table, and environment
// that back Glossa program execution.
package runtime

import (
	"strconv"

	"github.com/papagiannakis/glossa/internal/ast"
)

// Value is any runtime value a Glossa expression can produce.
type Value interface {
	Type() ast.BaseType
	String() string
}

// Integer is a Glossa ΑΚΕΡΑΙΑ value.
type Integer int64

func (Integer) Type() ast.BaseType { return ast.IntegerType }
func (v Integer) String() string   { return strconv.FormatInt(int64(v), 10) }

// Real is a Glossa ΠΡΑΓΜΑΤΙΚΗ value.
type Real float64

func (Real) Type() ast.BaseType { return ast.RealType }
func (v Real) String() string   { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// String is a Glossa ΧΑΡΑΚΤΗΡΕΣ value.
type String string

func (String) Type() ast.BaseType { return ast.StringType }
func (v String) String() string   { return string(v) }

// Boolean is a Glossa ΛΟΓΙΚΗ value. It renders using the Greek boolean
// words (ΑΛΗΘΗΣ/ΨΕΥΔΗΣ) rather than Go's true/false, since String is used
// directly by the Write statement.
type Boolean bool

func (Boolean) Type() ast.BaseType { return ast.BooleanType }
func (v Boolean) String() string {
	if v {
		return "ΑΛΗΘΗΣ"
	}
	return "ΨΕΥΔΗΣ"
}

// DefaultValue returns the zero value for a base type: integer 0,
// real 0.0, string "", boolean false.
func DefaultValue(t ast.BaseType) Value {
	switch t {
	case ast.IntegerType:
		return Integer(0)
	case ast.RealType:
		return Real(0)
	case ast.StringType:
		return String("")
	case ast.BooleanType:
		return Boolean(false)
	default:
		panic("unknown base type")
	}
}
