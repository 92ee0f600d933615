package runtime

import (
	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errs"
)

// Environment pairs a per-scope declaration table with current values and
// a lexical parent link. procedures/functions are shared with the root
// environment: nested routine environments borrow the root's routine
// tables rather than owning their own.
type Environment struct {
	decls      map[string]ast.VarDecl
	values     map[string]Value
	parent     *Environment
	procedures map[string]*ast.Procedure
	functions  map[string]*ast.Function
}

// NewRootEnvironment builds the global environment: one entry per declared
// name, each initialised to its type's default value (or, for arrays, a
// fully default-initialised Array).
func NewRootEnvironment(decls []ast.VarDecl, procedures map[string]*ast.Procedure, functions map[string]*ast.Function) *Environment {
	env := &Environment{
		decls:      map[string]ast.VarDecl{},
		values:     map[string]Value{},
		procedures: procedures,
		functions:  functions,
	}
	for _, d := range decls {
		env.declare(d)
	}
	return env
}

// NewChildEnvironment builds a routine-call scope whose lexical parent is
// always root: routines do not close over the caller's locals, so the
// parent of a routine's child environment is the root, never the caller.
func NewChildEnvironment(root *Environment, decls []ast.VarDecl) *Environment {
	env := &Environment{
		decls:      map[string]ast.VarDecl{},
		values:     map[string]Value{},
		parent:     root,
		procedures: root.procedures,
		functions:  root.functions,
	}
	for _, d := range decls {
		env.declare(d)
	}
	return env
}

func (e *Environment) declare(d ast.VarDecl) {
	e.decls[d.Name] = d
	if d.IsArray() {
		e.values[d.Name] = NewArray(d.Type, d.Dims)
	} else {
		e.values[d.Name] = DefaultValue(d.Type)
	}
}

// findOwner returns the environment in the lexical chain that declares
// name, or nil if it is undeclared anywhere in the chain.
func (e *Environment) findOwner(name string) *Environment {
	if _, ok := e.decls[name]; ok {
		return e
	}
	if e.parent != nil {
		return e.parent.findOwner(name)
	}
	return nil
}

// Declaration returns the Variable Descriptor for name, resolved through
// the lexical chain.
func (e *Environment) Declaration(name string, line int) (ast.VarDecl, error) {
	owner := e.findOwner(name)
	if owner == nil {
		return ast.VarDecl{}, errs.NewRuntimeError(line, "Άγνωστη μεταβλητή '%s'", name)
	}
	return owner.decls[name], nil
}

// GetScalar returns the current value of a scalar-declared name.
func (e *Environment) GetScalar(name string, line int) (Value, error) {
	owner := e.findOwner(name)
	if owner == nil {
		return nil, errs.NewRuntimeError(line, "Άγνωστη μεταβλητή '%s'", name)
	}
	if owner.decls[name].IsArray() {
		return nil, errs.NewRuntimeError(line, "Η '%s' είναι πίνακας - δώσε δείκτες", name)
	}
	return owner.values[name], nil
}

// SetScalar stores val (already coerced by the caller) into a
// scalar-declared name.
func (e *Environment) SetScalar(name string, val Value, line int) error {
	owner := e.findOwner(name)
	if owner == nil {
		return errs.NewRuntimeError(line, "Άγνωστη μεταβλητή '%s'", name)
	}
	if owner.decls[name].IsArray() {
		return errs.NewRuntimeError(line, "Η '%s' είναι πίνακας - απαιτούνται δείκτες", name)
	}
	owner.values[name] = val
	return nil
}

// Array returns the *Array backing an array-declared name.
func (e *Environment) Array(name string, line int) (*Array, error) {
	owner := e.findOwner(name)
	if owner == nil {
		return nil, errs.NewRuntimeError(line, "Άγνωστη μεταβλητή '%s'", name)
	}
	if !owner.decls[name].IsArray() {
		return nil, errs.NewRuntimeError(line, "Η '%s' δεν είναι πίνακας", name)
	}
	arr, _ := owner.values[name].(*Array)
	return arr, nil
}

// Procedure looks up a declared procedure by name.
func (e *Environment) Procedure(name string) (*ast.Procedure, bool) {
	p, ok := e.procedures[name]
	return p, ok
}

// Function looks up a declared function by name.
func (e *Environment) Function(name string) (*ast.Function, bool) {
	f, ok := e.functions[name]
	return f, ok
}
