package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is returned when a catalog file cannot be opened, read or written.
	ErrIO = errors.New("catalog file inaccessible")

	// ErrFormat is returned when the table's header or rows are malformed.
	ErrFormat = errors.New("malformed catalog table")
)

// FormatError describes a malformed header or row. Line is 1-based; zero
// means the problem is not tied to a line.
type FormatError struct {
	Line   int
	Reason string
	cause  error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", ErrFormat, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrFormat, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func (e *FormatError) Unwrap() error { return e.cause }

func formatErr(line int, cause error, format string, args ...any) error {
	return &FormatError{Line: line, Reason: fmt.Sprintf(format, args...), cause: cause}
}

func ioErr(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}
