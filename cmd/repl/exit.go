package main

import (
	"errors"
	"fmt"
)

// Exit codes of the command.
const (
	exitSuccess      = 0
	exitFailure      = 1 // Invalid or interrupted query.
	exitCommandError = 2 // Invalid flags or fact files.
)

// exitError is an error with a specific exit code.
type exitError struct {
	Code    int
	Message string
	Err     error
}

func (e *exitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *exitError) Unwrap() error {
	return e.Err
}

func newExitError(code int, message string) *exitError {
	return &exitError{Code: code, Message: message}
}

func wrapExitError(code int, message string, err error) *exitError {
	return &exitError{Code: code, Message: message, Err: err}
}

// getExitCode returns the code of an exitError, or exitFailure for other errors.
func getExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitFailure
}
