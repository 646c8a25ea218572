package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// ForcedApprover implements the Approver interface for forced (non-interactive)
// approval. It displays a countdown and automatically approves after the countdown,
// used when the --force flag is provided.
type ForcedApprover struct {
	verbose   bool
	output    io.Writer
	countdown time.Duration
	sleepFn   func(time.Duration)
}

// NewForcedApprover creates a new ForcedApprover with the default countdown.
func NewForcedApprover(verbose bool) dwgate.Approver {
	return &ForcedApprover{
		verbose:   verbose,
		output:    os.Stderr,
		countdown: dwgate.DefaultForceApprovalCountdown,
		sleepFn:   time.Sleep,
	}
}

// RequestApproval displays a countdown and automatically approves after the countdown.
func (a *ForcedApprover) RequestApproval(ctx context.Context, environment string) (bool, error) {
	env := strings.ToUpper(environment)
	fmt.Fprintln(a.output)
	fmt.Fprintln(a.output, WarningStyle.Render(fmt.Sprintf("DANGER: deploying to protected environment %s without confirmation (--force)", env)))

	seconds := int(a.countdown.Seconds())
	if a.countdown > 0 && seconds == 0 {
		seconds = 1
	}
	for i := seconds; i > 0; i-- {
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.output)
			return false, ctx.Err()
		default:
			fmt.Fprintf(a.output, "\rDeploying to %s in: %d seconds... (Press Ctrl+C to cancel)", env, i)
			a.sleepFn(time.Second)
		}
	}

	if err := ctx.Err(); err != nil {
		fmt.Fprintln(a.output)
		return false, err
	}

	fmt.Fprintf(a.output, "\r%s Proceeding with deployment to %s...                              \n", SymbolCheck, env)
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ dwgate.Approver = (*ForcedApprover)(nil)
