// Package errors provides structured error types and exit codes for statcmp.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = 0 // Both criteria matched
	ExitMismatch     = 1 // Reports loaded but the verdict failed
	ExitInputError   = 2 // Malformed report, missing alignment or bad usage
	ExitIOError      = 3 // Report file missing or unreadable
	ExitRuntimeError = 1 // Anything not classified above
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindIO
	KindParse
	KindMissingAlignment
	KindVerdictMismatch
	KindUsage
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	case KindMissingAlignment:
		return "missing alignment"
	case KindVerdictMismatch:
		return "verdict mismatch"
	case KindUsage:
		return "usage"
	default:
		return "runtime"
	}
}

// Roles of the two reports taking part in a comparison.
const (
	RoleGroundTruth = "ground truth"
	RoleTest        = "test"
)

// Stages of a comparison run.
const (
	StageLoad    = "load"
	StageExtract = "extract"
	StageCompare = "compare"
)

// StatcmpError is the base error type for statcmp.
type StatcmpError struct {
	Kind    ErrorKind
	Message string
	Role    string // Report role if applicable
	Stage   string // Stage name if applicable
	File    string // Report path if applicable
	Cause   error  // Underlying error
}

func (e *StatcmpError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = fmt.Sprintf("%s: %s", e.File, msg)
	}
	if e.Role != "" && e.Stage != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Role, e.Stage, msg)
	}
	if e.Role != "" {
		return fmt.Sprintf("[%s] %s", e.Role, msg)
	}
	return msg
}

func (e *StatcmpError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *StatcmpError) ExitCode() int {
	switch e.Kind {
	case KindVerdictMismatch:
		return ExitMismatch
	case KindParse, KindMissingAlignment, KindUsage:
		return ExitInputError
	case KindIO:
		return ExitIOError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *StatcmpError {
	return &StatcmpError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *StatcmpError {
	return New(fmt.Sprintf(format, args...))
}

// IO creates an error for a report that could not be read.
func IO(file string, cause error) *StatcmpError {
	return &StatcmpError{
		Kind:    KindIO,
		Message: fmt.Sprintf("cannot read report: %v", cause),
		Stage:   StageLoad,
		File:    file,
		Cause:   cause,
	}
}

// Parse creates an error for a report whose content does not fit the schema.
func Parse(file string, cause error) *StatcmpError {
	return &StatcmpError{
		Kind:    KindParse,
		Message: fmt.Sprintf("cannot parse report: %v", cause),
		Stage:   StageLoad,
		File:    file,
		Cause:   cause,
	}
}

// MissingAlignment creates an error for a report whose result never reached
// the target and therefore carries no alignment.
func MissingAlignment(role, file string) *StatcmpError {
	return &StatcmpError{
		Kind:    KindMissingAlignment,
		Message: "result has no target alignment",
		Role:    role,
		Stage:   StageExtract,
		File:    file,
	}
}

// VerdictMismatch creates the error returned when both reports were compared
// and at least one criterion failed. The details were logged beforehand.
func VerdictMismatch() *StatcmpError {
	return &StatcmpError{
		Kind:    KindVerdictMismatch,
		Message: "see the log above",
		Stage:   StageCompare,
	}
}

// Usage creates a command line usage error.
func Usage(message string) *StatcmpError {
	return &StatcmpError{
		Kind:    KindUsage,
		Message: message,
	}
}

// WithRole returns a copy of the error attributed to the given report role.
func (e *StatcmpError) WithRole(role string) *StatcmpError {
	c := *e
	c.Role = role
	return &c
}

// Is reports whether err is a StatcmpError of the given kind.
func Is(err error, kind ErrorKind) bool {
	var se *StatcmpError
	if stderrors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var se *StatcmpError
	if stderrors.As(err, &se) {
		return se.ExitCode()
	}
	return ExitRuntimeError
}
