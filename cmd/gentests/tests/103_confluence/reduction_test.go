package gentests

import (
	"context"
	_ "embed"
	"strings"
	"testing"

	"github.com/vic/lamnbe/pkg/lambda"
	"github.com/vic/lamnbe/pkg/nbe"
)

//go:embed input.lam
var input string

//go:embed output.lam
var output string

// Test_103_confluence checks that different spellings of 1+2 and 3
// (alpha variants, swapped operands, succ of succ) all print the same
// text, and that repeated runs on fresh machines agree step for step.
func Test_103_confluence(t *testing.T) {
	expected := strings.TrimSpace(output)

	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		var first nbe.Stats
		for run := 0; run < 3; run++ {
			m := nbe.NewMachine()
			got, err := lambda.Normalize(context.Background(), line, lambda.WithMachine(m))
			if err != nil {
				t.Fatalf("input %d: %v", i, err)
			}
			if got != expected {
				t.Errorf("input %d run %d: expected %s, got %s", i, run, expected, got)
			}
			if run == 0 {
				first = m.Stats()
				t.Logf("input %d: %+v", i, first)
			} else if m.Stats() != first {
				t.Errorf("input %d run %d: stats %+v differ from first run %+v", i, run, m.Stats(), first)
			}
		}
	}
}
