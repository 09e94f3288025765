package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/lamnbe/pkg/lambda"
)

type TestCase struct {
	Name   string
	Input  string
	Output string
}

const testTemplate = `package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamnbe/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_%s_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "%s", input, output)
}
`

// church returns the Church numeral n applied to free f and x.
func church(n int) string {
	body := "x"
	for i := 0; i < n; i++ {
		body = fmt.Sprintf("(f %s)", body)
	}
	return body
}

func main() {
	const (
		S   = `(λ x. (λ y. (λ z. ((x z) (y z)))))`
		K   = `(λ x. (λ y. x))`
		KI  = `(λ x. (λ y. y))`
		NOT = `(λ b. ((b (λ x. (λ y. y))) (λ x. (λ y. x))))`
		AND = `(λ p. (λ q. ((p q) p)))`
		ONE = `(λ f. (λ x. (f x)))`
		TWO = `(λ f. (λ x. (f (f x))))`
	)

	tests := []TestCase{
		// Identity
		{"001_id", `(λ x. x)`, `(λ y. y)`},
		{"002_id_id", `((λ x. x) (λ y. y))`, `(λ z. z)`},

		// K Combinator (Erasure)
		{"003_k_1", `((` + K + ` a) b)`, `a`},
		{"004_k_2", `((` + KI + ` a) b)`, `b`},
		{"005_erase_complex", `((` + K + ` a) ((λ z. z) b))`, `a`},

		// S Combinator (Sharing)
		{"006_s_1", `(((` + S + ` (λ a. (λ b. a))) (λ c. (λ d. c))) e)`, `e`},
		{"007_s_2", `(((` + S + ` (λ a. (λ b. b))) (λ c. (λ d. c))) e)`, `(λ d. e)`},

		// Church Numerals
		{"010_zero", `(((λ f. (λ x. x)) f) x)`, church(0)},
		{"011_one", `((` + ONE + ` f) x)`, church(1)},
		{"012_two", `((` + TWO + ` f) x)`, church(2)},
		{"013_succ_0", `((((λ n. (λ f. (λ x. (f ((n f) x))))) (λ f. (λ x. x))) f) x)`, church(1)},
		{"014_succ_1", `((((λ n. (λ f. (λ x. (f ((n f) x))))) ` + ONE + `) f) x)`, church(2)},
		{"015_add_1_1", `(((((λ m. (λ n. (λ f. (λ x. ((m f) ((n f) x)))))) ` + ONE + `) ` + ONE + `) f) x)`, church(2)},
		{"016_mul_2_2", `(((((λ m. (λ n. (λ f. (m (n f))))) ` + TWO + `) ` + TWO + `) f) x)`, church(4)},

		// Logic
		{"020_true", `((` + K + ` a) b)`, `a`},
		{"021_false", `((` + KI + ` a) b)`, `b`},
		{"022_not_true", `(((` + NOT + ` ` + K + `) a) b)`, `b`},
		{"023_not_false", `(((` + NOT + ` ` + KI + `) a) b)`, `a`},
		{"024_and_true_true", `((((` + AND + ` ` + K + `) ` + K + `) a) b)`, `a`},
		{"025_and_true_false", `((((` + AND + ` ` + K + `) ` + KI + `) a) b)`, `b`},

		// Pairs
		{"030_pair_fst", `((λ p. (p ` + K + `)) (((λ x. (λ y. (λ f. ((f x) y)))) a) b))`, `a`},
		{"031_pair_snd", `((λ p. (p ` + KI + `)) (((λ x. (λ y. (λ f. ((f x) y)))) a) b))`, `b`},

		// Let bindings, written as redexes
		{"041_let_id", `((λ i. (i a)) (λ x. x))`, `a`},
		{"042_let_nested", `((λ x. ((λ y. x) b)) a)`, `a`},
		{"043_let_shadow", `((λ x. ((λ x. x) b)) a)`, `b`},

		// Complex / Stress
		{"050_deep_app", `((λ x. ((x x) x)) (λ y. y))`, `(λ y. y)`},
		{"051_share_app", `((λ f. (f (f x))) (λ y. y))`, `x`},
		{"060_pow_2_3", `(((((λ b. (λ e. (e b))) ` + TWO + `) (λ f. (λ x. (f (f (f x)))))) f) x)`, church(8)},

		// Sharing
		{"070_share_complex", `((λ x. (x (x a))) (λ y. y))`, `a`},
		{"071_erase_shared", `((` + KI + ` ((λ z. z) a)) b)`, `b`},
		{"072_self_app", `((λ x. (x x)) (λ y. y))`, `(λ y. y)`},

		// Nested Lambdas
		{"080_nested_1", `(λ x. (λ y. (λ z. ((x y) z))))`, `(λ a. (λ b. (λ c. ((a b) c))))`},
		{"081_nested_app", `(((λ x. (λ y. (x y))) a) b)`, `(a b)`},

		// Free variables
		{"090_free_1", `x`, `x`},
		{"091_free_app", `(x y)`, `(x y)`},
		{"092_free_abs", `(λ y. (x y))`, `(λ z. (x z))`},

		// Mixed
		{"100_mixed_1", `((λ x. x) ((λ y. y) a))`, `a`},
	}

	baseDir := "cmd/gentests/generated"
	generated := 0

	for _, tc := range tests {
		dir := filepath.Join(baseDir, tc.Name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("Error creating %s: %v\n", dir, err)
			continue
		}

		// Normalize Input
		inTerm, err := lambda.Parse(tc.Input)
		if err != nil {
			fmt.Printf("Error parsing input for %s: %v\n", tc.Name, err)
			continue
		}

		// Normalize Output
		outTerm, err := lambda.Parse(tc.Output)
		if err != nil {
			fmt.Printf("Error parsing output for %s: %v\n", tc.Name, err)
			continue
		}

		testGo := fmt.Sprintf(testTemplate, tc.Name, tc.Name)

		if err := writeCase(dir, inTerm.String()+"\n", outTerm.String()+"\n", testGo); err != nil {
			fmt.Printf("Error writing %s: %v\n", tc.Name, err)
			continue
		}
		generated++
	}

	fmt.Printf("Generated %d of %d tests\n", generated, len(tests))
	if generated != len(tests) {
		os.Exit(1)
	}
}

func writeCase(dir, input, output, testGo string) error {
	files := []struct{ name, content string }{
		{"input.lam", input},
		{"output.lam", output},
		{"reduction_test.go", testGo},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), []byte(f.content), 0644); err != nil {
			return err
		}
	}
	return nil
}
