package shell

import (
	"errors"
	"fmt"
	"io/fs"
)

var ErrEmptyCommand = errors.New("empty command")

// ErrorKind classifies a command failure.
type ErrorKind int

const (
	UsageError ErrorKind = iota
	NotFoundError
	PermissionError
	EncodingError
	ResolutionError
	DispatchError
	IOError
)

func (k ErrorKind) String() string {
	switch k {
	case UsageError:
		return "usage"
	case NotFoundError:
		return "not_found"
	case PermissionError:
		return "permission"
	case EncodingError:
		return "encoding"
	case ResolutionError:
		return "resolution"
	case DispatchError:
		return "dispatch"
	default:
		return "io"
	}
}

// Error is the failure returned by command handlers. Msg is shown to the
// user as is.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func usageError(usage string) *Error {
	return &Error{Kind: UsageError, Msg: "Usage: " + usage}
}

// ErrUnknownCommand is returned for names missing from the dispatch table.
func ErrUnknownCommand(name string) *Error {
	return &Error{Kind: DispatchError, Msg: "Invalid command: " + name}
}

// pathError maps a file-system error on path to a typed Error.
func pathError(path string, err error) *Error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return newError(NotFoundError, err, "File not found -> %s", path)
	case errors.Is(err, fs.ErrPermission):
		return newError(PermissionError, err, "Permission denied: '%s'", path)
	default:
		return newError(IOError, err, "%v", err)
	}
}
