package recording

import (
	"errors"
	"fmt"
	"io/fs"
)

// Domain errors for loading a recording.
var (
	// ErrFile indicates the source file could not be opened or read.
	ErrFile = errors.New("recording: cannot read source file")

	// ErrParse indicates the file does not have the logger export layout.
	ErrParse = errors.New("recording: malformed logger export")
)

// FileError wraps an I/O failure with the path that caused it. The
// message leaves the path out; callers already name the file.
type FileError struct {
	Path    string
	Wrapped error
}

func (e *FileError) Error() string {
	var pe *fs.PathError
	if errors.As(e.Wrapped, &pe) {
		return pe.Op + ": " + pe.Err.Error()
	}
	return "read: " + e.Wrapped.Error()
}

func (e *FileError) Unwrap() []error {
	return []error{ErrFile, e.Wrapped}
}

// ParseError reports a structural problem at a given line (1-based).
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse line %d: %s", e.Line, e.Reason)
	}
	return "parse: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
