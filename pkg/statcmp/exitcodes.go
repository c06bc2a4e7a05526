// Package statcmp provides public constants for external tools that run the
// statcmp CLI as part of a regression pipeline.
package statcmp

// Exit codes returned by the statcmp CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates both the alignments and the costs matched.
	ExitSuccess = 0

	// ExitMismatch indicates both reports loaded but the verdict failed.
	ExitMismatch = 1

	// ExitInputError indicates a malformed report, a result without a target
	// alignment, or wrong command line usage.
	ExitInputError = 2

	// ExitIOError indicates a report file could not be read.
	ExitIOError = 3
)
