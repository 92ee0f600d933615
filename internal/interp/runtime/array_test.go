package runtime

import (
	"testing"

	"github.com/papagiannakis/glossa/internal/ast"
)

func TestNewArrayDefaultsAllCells(t *testing.T) {
	arr := NewArray(ast.IntegerType, []int{3})
	for i := 1; i <= 3; i++ {
		v, err := arr.Get("Α", []int{i}, 0)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if v != Integer(0) {
			t.Errorf("Get(%d) = %v, want 0", i, v)
		}
	}
}

func TestArraySetAndGetOneDim(t *testing.T) {
	arr := NewArray(ast.IntegerType, []int{5})
	if err := arr.Set("Α", []int{3}, Integer(42), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := arr.Get("Α", []int{3}, 0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != Integer(42) {
		t.Errorf("got %v", v)
	}
}

func TestArrayTwoDimRowMajorOffsets(t *testing.T) {
	arr := NewArray(ast.IntegerType, []int{2, 3})
	if err := arr.Set("Α", []int{1, 1}, Integer(11), 0); err != nil {
		t.Fatalf("Set(1,1): %v", err)
	}
	if err := arr.Set("Α", []int{2, 3}, Integer(23), 0); err != nil {
		t.Fatalf("Set(2,3): %v", err)
	}
	v, err := arr.Get("Α", []int{1, 1}, 0)
	if err != nil || v != Integer(11) {
		t.Errorf("Get(1,1) = %v, %v", v, err)
	}
	v, err = arr.Get("Α", []int{2, 3}, 0)
	if err != nil || v != Integer(23) {
		t.Errorf("Get(2,3) = %v, %v", v, err)
	}
	// (1,1) and (2,3) must not alias.
	v, err = arr.Get("Α", []int{1, 2}, 0)
	if err != nil || v != Integer(0) {
		t.Errorf("Get(1,2) = %v, %v, want untouched 0", v, err)
	}
}

func TestArrayOutOfBoundsErrors(t *testing.T) {
	arr := NewArray(ast.IntegerType, []int{3})
	if _, err := arr.Get("Α", []int{0}, 0); err == nil {
		t.Error("expected an error for index 0")
	}
	if _, err := arr.Get("Α", []int{4}, 0); err == nil {
		t.Error("expected an error for index past the end")
	}
}

func TestArrayWrongArityErrors(t *testing.T) {
	arr := NewArray(ast.IntegerType, []int{2, 2})
	if _, err := arr.Get("Α", []int{1}, 0); err == nil {
		t.Error("expected an arity error")
	}
}
