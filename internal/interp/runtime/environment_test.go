package runtime

import (
	"testing"

	"github.com/papagiannakis/glossa/internal/ast"
)

func TestRootEnvironmentDefaultsDeclaredNames(t *testing.T) {
	root := NewRootEnvironment([]ast.VarDecl{
		{Name: "χ", Type: ast.IntegerType},
		{Name: "σ", Type: ast.StringType},
	}, nil, nil)

	v, err := root.GetScalar("χ", 0)
	if err != nil || v != Integer(0) {
		t.Errorf("χ = %v, %v", v, err)
	}
	v, err = root.GetScalar("σ", 0)
	if err != nil || v != String("") {
		t.Errorf("σ = %v, %v", v, err)
	}
}

func TestUnknownVariableErrors(t *testing.T) {
	root := NewRootEnvironment(nil, nil, nil)
	if _, err := root.GetScalar("άγνωστη", 0); err == nil {
		t.Error("expected an error for an undeclared variable")
	}
}

func TestScalarAccessOnArrayErrors(t *testing.T) {
	root := NewRootEnvironment([]ast.VarDecl{
		{Name: "Α", Type: ast.IntegerType, Dims: []int{3}},
	}, nil, nil)
	if _, err := root.GetScalar("Α", 0); err == nil {
		t.Error("expected an error reading an array as a scalar")
	}
	if err := root.SetScalar("Α", Integer(1), 0); err == nil {
		t.Error("expected an error writing an array as a scalar")
	}
}

func TestArrayAccessOnScalarErrors(t *testing.T) {
	root := NewRootEnvironment([]ast.VarDecl{
		{Name: "χ", Type: ast.IntegerType},
	}, nil, nil)
	if _, err := root.Array("χ", 0); err == nil {
		t.Error("expected an error treating a scalar as an array")
	}
}

func TestChildEnvironmentParentsToRootNotCaller(t *testing.T) {
	root := NewRootEnvironment([]ast.VarDecl{
		{Name: "καθολική", Type: ast.IntegerType},
	}, nil, nil)
	_ = root.SetScalar("καθολική", Integer(7), 0)

	caller := NewChildEnvironment(root, []ast.VarDecl{
		{Name: "τοπική_κλήτη", Type: ast.IntegerType},
	})

	// A routine environment always parents to root, never to the calling
	// routine's environment — τοπική_κλήτη must be invisible here even
	// though, in this test, callee is constructed "from" caller's root.
	callee := NewChildEnvironment(root, []ast.VarDecl{
		{Name: "τοπική_καλούμενη", Type: ast.IntegerType},
	})

	if v, err := callee.GetScalar("καθολική", 0); err != nil || v != Integer(7) {
		t.Errorf("callee should see global: %v, %v", v, err)
	}
	if _, err := callee.GetScalar("τοπική_κλήτη", 0); err == nil {
		t.Error("callee must not see caller's locals")
	}
	_ = caller
}

func TestSetScalarOnUnknownNameErrors(t *testing.T) {
	root := NewRootEnvironment(nil, nil, nil)
	if err := root.SetScalar("άγνωστη", Integer(1), 0); err == nil {
		t.Error("expected an error")
	}
}
