// Package services implements the two engines behind the dwgate commands.
//
// DeploymentService executes the SQL artifacts of an environment in folder,
// file and statement order and stops at the first failing statement.
// ValidationService evaluates every data-quality rule, accumulates failures
// and decides the outcome once all checks have run.
//
// Both services open exactly one warehouse session per call and release it on
// every exit path.
package services
