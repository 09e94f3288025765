package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamnbe/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_004_k_2_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "004_k_2", input, output)
}
