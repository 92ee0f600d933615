package runtime

import (
	"testing"

	"github.com/papagiannakis/glossa/internal/ast"
)

func TestCoerceToInteger(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want Value
	}{
		{"integer passes through", Integer(5), Integer(5)},
		{"real truncates", Real(3.9), Integer(3)},
		{"true becomes 1", Boolean(true), Integer(1)},
		{"false becomes 0", Boolean(false), Integer(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(ast.IntegerType, tt.in, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
	if _, err := Coerce(ast.IntegerType, String("x"), 0); err == nil {
		t.Error("expected an error coercing a string to integer")
	}
}

func TestCoerceToReal(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want Value
	}{
		{"real passes through", Real(2.5), Real(2.5)},
		{"integer widens", Integer(4), Real(4)},
		{"true becomes 1.0", Boolean(true), Real(1)},
		{"false becomes 0.0", Boolean(false), Real(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(ast.RealType, tt.in, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
	if _, err := Coerce(ast.RealType, String("x"), 0); err == nil {
		t.Error("expected an error coercing a string to real")
	}
}

func TestCoerceToBooleanIsExact(t *testing.T) {
	if _, err := Coerce(ast.BooleanType, Integer(1), 0); err == nil {
		t.Error("expected an error coercing integer to boolean")
	}
	got, err := Coerce(ast.BooleanType, Boolean(true), 0)
	if err != nil || got != Boolean(true) {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestCoerceToStringIsExact(t *testing.T) {
	if _, err := Coerce(ast.StringType, Integer(1), 0); err == nil {
		t.Error("expected an error coercing integer to string")
	}
	got, err := Coerce(ast.StringType, String("ok"), 0)
	if err != nil || got != String("ok") {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestCoerceIndex(t *testing.T) {
	tests := []struct {
		name    string
		in      Value
		want    int
		wantErr bool
	}{
		{"integer passes", Integer(3), 3, false},
		{"true is 1", Boolean(true), 1, false},
		{"false is 0", Boolean(false), 0, false},
		{"integral real passes", Real(4), 4, false},
		{"fractional real errors", Real(4.5), 0, true},
		{"string errors", String("x"), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceIndex(tt.in, 0)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
