package main

import "fmt"

// ExitCode represents the exit status of grib.
type ExitCode int

const (
	// ExitSuccess indicates the review was posted or updated.
	ExitSuccess ExitCode = 0
	// ExitError indicates the run failed.
	ExitError ExitCode = 1
	// ExitInterrupted indicates the run was interrupted by a signal.
	ExitInterrupted ExitCode = 130
)

// Int returns the exit code as an int for use with os.Exit.
func (e ExitCode) Int() int {
	return int(e)
}

// exitCodeError is a wrapper type for returning exit codes via error interface.
// The failure has already been reported by the time it is returned.
type exitCodeError struct {
	code ExitCode
}

func (e exitCodeError) Error() string {
	switch e.code {
	case ExitError:
		return "grib failed with error"
	case ExitInterrupted:
		return "grib was interrupted"
	default:
		return fmt.Sprintf("exit code %d", e.code)
	}
}

func exitCode(code ExitCode) error {
	if code == ExitSuccess {
		return nil
	}
	return exitCodeError{code: code}
}
