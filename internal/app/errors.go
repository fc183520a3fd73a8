package app

import (
	"errors"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/profile"
)

// Process exit statuses.
const (
	ExitEnvironment = 1
	ExitSettings    = 2
	ExitUnexpected  = 100
)

// ExitError carries the process exit status for a failed run.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the status main should exit with for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUnexpected
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	switch {
	case errors.Is(err, profile.ErrEnvironmentNotFound):
		return &ExitError{Code: ExitEnvironment, Err: err}
	case errors.Is(err, profile.ErrSettingsNotFound):
		return &ExitError{Code: ExitSettings, Err: err}
	default:
		return &ExitError{Code: ExitUnexpected, Err: err}
	}
}
