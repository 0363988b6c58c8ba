package pathkit

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Absence is never an error: probes report a missing path as false and a walk
// over something that is not a directory does nothing.
//
// Example usage:
//
//	ok, err := probe.IsDir(p)
//	if errors.Is(err, pathkit.ErrIO) {
//	    // permission denied, device error...
//	}
var (
	// ErrIO indicates a filesystem fault other than absence.
	ErrIO = errors.New("io error")

	// ErrInvalidPath indicates the path cannot be used for the operation,
	// for example creating a directory from an empty path.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotDirectory indicates a component expected to be a directory is
	// something else.
	ErrNotDirectory = errors.New("not a directory")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PathError records the operation and path of a failed filesystem call.
// errors.Is matches both the sentinel kind and the underlying cause.
type PathError struct {
	Op   string
	Path string
	kind error
	err  error
}

var _ error = (*PathError)(nil)

func newPathError(kind error, op string, p Path, cause error) error {
	return &PathError{Op: op, Path: p.String(), kind: kind, err: cause}
}

func newIOError(op string, p Path, cause error) error {
	return newPathError(ErrIO, op, p, cause)
}

func (e *PathError) Error() string {
	if e == nil {
		return "(*PathError)(nil)"
	}
	message := e.kind.Error() + ": " + e.Op + " " + strconv.Quote(e.Path)
	if e.err != nil {
		message += ": " + e.err.Error()
	}
	return message
}

func (e *PathError) Unwrap() []error {
	if e.err == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.err}
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrInvalidPath), errors.Is(err, ErrNotDirectory):
		return ExitInvalidPath
	}

	// Usage errors produced by the command line parser
	errStr := err.Error()
	for _, prefix := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"accepts ",
		"requires at least",
		"required flag",
		"invalid argument",
	} {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
