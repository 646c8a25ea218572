// Package ui renders console output and collects operator approval.
//
// ConsoleReporter writes the ordered outcome lines of a deployment or a
// validation run to stdout. Approvers guard deployments to protected
// environments: InteractiveApprover asks the operator to type the
// environment name, ForcedApprover counts down and proceeds (--force), and
// NonInteractiveApprover refuses when nobody is at the terminal.
package ui
