package build

import (
	"fmt"
	"time"
)

// Result captures the outcome of one tool invocation.
type Result struct {
	RunID    string
	Status   string // "success" (ran to completion, any exit code) or "failed" (could not start or read)
	ExitCode int    // -1 when the process never exited normally
	Duration time.Duration
	Error    error
}

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ExitLine is the synthetic line reporting a normal termination.
func ExitLine(code int) string {
	return fmt.Sprintf("Process exited with code: %d", code)
}

// ErrorLine is the synthetic line reporting a failed start or read.
func ErrorLine(err error) string {
	return "Error: " + err.Error()
}

// StatusLine returns the synthetic line that terminates the output of r.
func (r *Result) StatusLine() string {
	if r.Error != nil {
		return ErrorLine(r.Error)
	}
	return ExitLine(r.ExitCode)
}
