package runtime

import (
	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errs"
)

// Coerce converts val to the target base type:
//
//	integer ← integer, real (truncate), boolean (false→0, true→1)
//	real    ← integer (widen), real, boolean (false→0.0, true→1.0)
//	boolean ← boolean only
//	string  ← string only
//
// Coercions that would silently cross a type family (string↔numeric,
// string↔boolean) error instead.
func Coerce(target ast.BaseType, val Value, line int) (Value, error) {
	switch target {
	case ast.IntegerType:
		switch v := val.(type) {
		case Integer:
			return v, nil
		case Real:
			return Integer(v), nil
		case Boolean:
			if v {
				return Integer(1), nil
			}
			return Integer(0), nil
		default:
			return nil, errs.NewRuntimeError(line, "Αναμενόταν ακέραιος")
		}
	case ast.RealType:
		switch v := val.(type) {
		case Real:
			return v, nil
		case Integer:
			return Real(v), nil
		case Boolean:
			if v {
				return Real(1), nil
			}
			return Real(0), nil
		default:
			return nil, errs.NewRuntimeError(line, "Αναμενόταν πραγματικός")
		}
	case ast.BooleanType:
		if v, ok := val.(Boolean); ok {
			return v, nil
		}
		return nil, errs.NewRuntimeError(line, "Αναμενόταν λογική τιμή")
	case ast.StringType:
		if v, ok := val.(String); ok {
			return v, nil
		}
		return nil, errs.NewRuntimeError(line, "Αναμενόταν αλφαριθμητικό")
	default:
		return nil, errs.NewRuntimeError(line, "Άγνωστος τύπος")
	}
}

// CoerceIndex converts an evaluated index expression's value to an int:
// integers pass, reals with an integral value pass, booleans count as
// 0/1, anything else errors.
func CoerceIndex(val Value, line int) (int, error) {
	switch v := val.(type) {
	case Integer:
		return int(v), nil
	case Boolean:
		if v {
			return 1, nil
		}
		return 0, nil
	case Real:
		if float64(v) == float64(int64(v)) {
			return int(v), nil
		}
		return 0, errs.NewRuntimeError(line, "Ο δείκτης πίνακα πρέπει να είναι ακέραιος")
	default:
		return 0, errs.NewRuntimeError(line, "Ο δείκτης πίνακα πρέπει να είναι ακέραιος")
	}
}
