package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It prompts the user to type the environment name
// before deploying to a protected environment.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover reading from stdin.
func NewInteractiveApprover(verbose bool) dwgate.Approver {
	return &InteractiveApprover{
		verbose: verbose,
		input:   os.Stdin,
		output:  os.Stderr,
	}
}

// RequestApproval prompts the user to type the environment name to confirm.
// The comparison is exact after trimming surrounding whitespace.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, environment string) (bool, error) {
	fmt.Fprintf(a.output, "\n%s\n", WarningStyle.Render(fmt.Sprintf("WARNING: You are about to deploy to the protected environment '%s'", environment)))
	fmt.Fprintln(a.output, "Every SQL artifact will be executed against it; statements are not rolled back on failure.")
	fmt.Fprintf(a.output, "\nTo confirm, type the environment name '%s' and press Enter: ", environment)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == environment {
			fmt.Fprintf(a.output, "%s Confirmed. Proceeding with deployment...\n", SymbolCheck)
			return true, nil
		}
		fmt.Fprintf(a.output, "%s Input '%s' does not match environment name '%s'. Deployment cancelled.\n", SymbolCross, input, environment)
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ dwgate.Approver = (*InteractiveApprover)(nil)
