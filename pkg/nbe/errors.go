package nbe

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrHalted is returned once Halt has been called, usually because
	// the context given to Normalize was cancelled or timed out.
	ErrHalted = errors.New("evaluation halted")

	// ErrDepthExceeded is returned when nested apply/display calls pass
	// the machine's depth limit.
	ErrDepthExceeded = errors.New("maximum evaluation depth exceeded")
)

// UnboundVariableError reports a variable reference with no binding in
// the active environment.
type UnboundVariableError struct {
	Name  string
	Scope []string // names visible at the failing lookup, innermost first
}

func (e *UnboundVariableError) Error() string {
	if len(e.Scope) == 0 {
		return fmt.Sprintf("unbound variable %q", e.Name)
	}
	return fmt.Sprintf("unbound variable %q (in scope: %s)", e.Name, strings.Join(e.Scope, ", "))
}
