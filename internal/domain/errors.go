package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCommandNotFound is wrapped by CommandRunner implementations when the
// executable is not on PATH.
var ErrCommandNotFound = errors.New("command not found")

// NotFoundError means none of the candidate configuration files exist.
type NotFoundError struct {
	Kind       string
	Candidates []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s configuration file found (expected one of: %s)",
		e.Kind, strings.Join(e.Candidates, ", "))
}

// ParseError means a configuration file exists but could not be read or parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFilesError lists required files that do not exist.
type MissingFilesError struct {
	Files []string
}

func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("required file(s) not found: %s", strings.Join(e.Files, ", "))
}

// CommandError describes an external command that ran and exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int
	Output   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + firstLine(out)
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
