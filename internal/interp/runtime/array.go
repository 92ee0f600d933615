package runtime

import (
	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errs"
)

// Array is a dense, row-major rectangular buffer backing a 1-D or 2-D
// Glossa array declaration. A flat buffer with explicit offset math is
// simpler to bounds-check than a nested-slice representation.
type Array struct {
	baseType ast.BaseType
	dims     []int
	data     []Value
}

// NewArray allocates an array with dims dimensions (1 or 2 entries, each
// positive), with every cell set to baseType's default value.
func NewArray(baseType ast.BaseType, dims []int) *Array {
	size := 1
	for _, d := range dims {
		size *= d
	}
	data := make([]Value, size)
	for i := range data {
		data[i] = DefaultValue(baseType)
	}
	return &Array{baseType: baseType, dims: append([]int(nil), dims...), data: data}
}

func (a *Array) Type() ast.BaseType { return a.baseType }
func (a *Array) String() string     { return "[πίνακας]" }

// Dims returns the declared dimensions.
func (a *Array) Dims() []int { return a.dims }

// offset converts 1-based indices (one per dimension) to a flat offset,
// validating bounds and arity. line is used for error reporting.
func (a *Array) offset(name string, indices []int, line int) (int, error) {
	if len(indices) != len(a.dims) {
		return 0, errs.NewRuntimeError(line, "Ο πίνακας '%s' αναμένει %d δείκτες", name, len(a.dims))
	}
	offset := 0
	for i, idx := range indices {
		size := a.dims[i]
		if idx < 1 || idx > size {
			return 0, errs.NewRuntimeError(line, "Η πρόσβαση στον πίνακα '%s' είναι εκτός ορίων", name)
		}
		offset = offset*size + (idx - 1)
	}
	return offset, nil
}

// Get returns the element at indices (1-based).
func (a *Array) Get(name string, indices []int, line int) (Value, error) {
	off, err := a.offset(name, indices, line)
	if err != nil {
		return nil, err
	}
	return a.data[off], nil
}

// Set stores val at indices (1-based).
func (a *Array) Set(name string, indices []int, val Value, line int) error {
	off, err := a.offset(name, indices, line)
	if err != nil {
		return err
	}
	a.data[off] = val
	return nil
}
