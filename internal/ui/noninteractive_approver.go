package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// NonInteractiveApprover denies every request. It is used when a protected
// environment is deployed without --force and nobody can answer a prompt.
type NonInteractiveApprover struct {
	output io.Writer
}

// NewNonInteractiveApprover creates a new NonInteractiveApprover.
func NewNonInteractiveApprover() dwgate.Approver {
	return &NonInteractiveApprover{output: os.Stderr}
}

func (a *NonInteractiveApprover) RequestApproval(_ context.Context, environment string) (bool, error) {
	fmt.Fprintf(a.output, "%s %s is protected and no terminal is attached to confirm; re-run with --force to deploy non-interactively.\n",
		SymbolCross, strings.ToUpper(environment))
	return false, nil
}

var _ dwgate.Approver = (*NonInteractiveApprover)(nil)
