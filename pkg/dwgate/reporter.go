package dwgate

// Reporter renders the ordered, human-readable outcome lines of a run.
// Lines are emitted in execution order; nothing is buffered or reordered.
type Reporter interface {
	// Section starts a new group of lines, e.g. "Deploying ddl".
	Section(title string)

	// Step reports progress, e.g. the artifact or statement about to run.
	Step(format string, args ...interface{})

	// Pass reports a successful statement or check.
	Pass(description string)

	// Fail reports a failed statement or check.
	Fail(description string)

	// Summary prints the final line of a run.
	Summary(success bool, message string)
}
