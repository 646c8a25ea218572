package dwgate

import "context"

// Approver handles operator approval before deploying to a protected environment.
//
// Implementations:
//   - ForcedApprover: Shows countdown and automatically approves
//   - InteractiveApprover: Prompts user to type the environment name for confirmation
//   - NonInteractiveApprover: Denies when no terminal is attached
type Approver interface {
	// RequestApproval prompts for confirmation before deploying to environment.
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, environment string) (bool, error)
}
