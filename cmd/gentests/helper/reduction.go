package gentests

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vic/lamnbe/pkg/lambda"
	"github.com/vic/lamnbe/pkg/nbe"
)

// Timeout bounds every fixture reduction.
const Timeout = 5 * time.Second

func CheckLambdaReduction(t *testing.T, testName string, inputStr string, outputStr string) {
	expectedOutput := strings.TrimSpace(outputStr)

	// Parse expected output
	expectedTerm, err := lambda.Parse(expectedOutput)
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}

	// Fixtures use free variables (a, b, f, x, ...) as observable
	// results, so they run in open mode. Both sides are compared after
	// alpha canonicalization: the fixture spells bound names freely.
	m := nbe.NewMachine()
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	start := time.Now()
	actualOutput, err := lambda.Normalize(ctx, inputStr, lambda.WithOpenTerms(), lambda.WithMachine(m))
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("%s: normalize error: %v", testName, err)
	}

	actualTerm, err := lambda.Parse(actualOutput)
	if err != nil {
		t.Fatalf("%s: output %q does not reparse: %v", testName, actualOutput, err)
	}

	normExpected := lambda.AlphaCanonical(expectedTerm).String()
	normActual := lambda.AlphaCanonical(actualTerm).String()

	if normActual != normExpected {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s", testName, strings.TrimSpace(inputStr), normExpected, normActual)
	}

	stats := m.Stats()
	t.Logf("%s: %d applications (%d beta) in %v", testName, stats.Total(), stats.Beta, elapsed)
}
