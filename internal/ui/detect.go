package ui

import (
	"os"

	"golang.org/x/term"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// Mode represents the interaction mode for dwgate.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether dwgate can prompt the operator.
//
// Returns ModeNonInteractive if:
//   - DWGATE_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - stdin or stderr is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv("DWGATE_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}

	// Prompts are written to stderr
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

// SelectApprover returns the approver for a deployment: forced when force is
// set, interactive when a terminal is attached, and refusing otherwise.
func SelectApprover(force, verbose bool) dwgate.Approver {
	if force {
		return NewForcedApprover(verbose)
	}
	if IsInteractive() {
		return NewInteractiveApprover(verbose)
	}
	return NewNonInteractiveApprover()
}
