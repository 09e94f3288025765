package lambda

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Term
	}{
		{"x", Var{Name: "x"}},
		{"(λ x. x)\n", Abs{Arg: "x", Body: Var{Name: "x"}}},
		{`(\x.x)`, Abs{Arg: "x", Body: Var{Name: "x"}}},
		{"(λx.x)", Abs{Arg: "x", Body: Var{Name: "x"}}},
		{"  ( f   a )  ", App{Fun: Var{Name: "f"}, Arg: Var{Name: "a"}}},
		{"((f a) b)", App{Fun: App{Fun: Var{Name: "f"}, Arg: Var{Name: "a"}}, Arg: Var{Name: "b"}}},
		{"(λ x'. (λ y_1. (x' y_1)))", Abs{Arg: "x'", Body: Abs{Arg: "y_1", Body: App{Fun: Var{Name: "x'"}, Arg: Var{Name: "y_1"}}}}},
		{"(λ α. α)", Abs{Arg: "α", Body: Var{Name: "α"}}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input  string
		offset int
	}{
		{"(λ x. x", 8},     // unbalanced
		{"(λ x x)", 6},     // missing dot
		{"(λ . x)", 4},     // missing binder
		{"(λ x. x) y", 10}, // trailing garbage
		{"(f a b)", 5},     // application takes exactly two terms
		{"(f)", 2},
		{"()", 1},
		{"", 0},
		{"\n", 1},
		{"(x + y)", 3},
	}
	for _, tt := range tests {
		_, err := Parse(tt.input)
		var syn *SyntaxError
		if !errors.As(err, &syn) {
			t.Errorf("Parse(%q): expected SyntaxError, got %v", tt.input, err)
			continue
		}
		if syn.Offset != tt.offset {
			t.Errorf("Parse(%q): expected offset %d, got %d (%v)", tt.input, tt.offset, syn.Offset, syn)
		}
	}
}

// Printing an AST and parsing it back yields the same AST.
func TestStringRoundtrip(t *testing.T) {
	inputs := []string{
		"(λ f. (λ x. (f (f x))))",
		"((λ x. (x x)) (λ x. (x x)))",
		"(a (b c))",
	}
	for _, in := range inputs {
		term, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if term.String() != in {
			t.Errorf("String() = %q, want %q", term.String(), in)
		}
		again, err := Parse(term.String())
		if err != nil || again != term {
			t.Errorf("reparse of %q gave %v, %v", in, again, err)
		}
	}
}
