package osfile

import (
	"errors"
	"fmt"
	"io/fs"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/core"
)

// Error kinds. Every error returned by this package is a
// platformerrors.PlatformError whose cause chain contains exactly one of
// these sentinels, so callers can branch with errors.Is.
var (
	// ErrInvalidPath is returned when a path string cannot name an entry,
	// for example when its final segment is empty.
	ErrInvalidPath = errors.New("invalid path")

	// ErrIO is returned when the operating system rejects an operation.
	// The native error is kept in the chain.
	ErrIO = errors.New("i/o error")

	// ErrInvalidOperation is returned when an operation is not valid for the
	// entry or descriptor it was called on.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrUnsupported is returned when the platform does not provide an
	// operation.
	ErrUnsupported = core.ErrUnsupported
)

// CodeIO is the platform error code for operating system failures that do
// not map onto a more specific code.
const CodeIO platformerrors.ErrorCode = "IO_ERROR"

// newError builds a PlatformError of the given kind. op and path are recorded
// both in the message and as context.
func newError(kind error, code platformerrors.ErrorCode, op, path string, cause error) error {
	err := kind
	if cause != nil {
		err = fmt.Errorf("%w: %w", kind, cause)
	}
	return platformerrors.WrapWithContext(err, code, op+" "+path, map[string]interface{}{
		"op":   op,
		"path": path,
	})
}

func ioError(op, path string, cause error) error {
	return newError(ErrIO, classify(cause), op, path, cause)
}

func invalidPath(op, path, reason string) error {
	return newError(ErrInvalidPath, platformerrors.CodeInvalidInput, op, path, errors.New(reason))
}

func invalidOperation(op, path, reason string) error {
	return newError(ErrInvalidOperation, platformerrors.CodeInvalidInput, op, path, errors.New(reason))
}

func unsupported(op, path string) error {
	return newError(ErrUnsupported, platformerrors.CodeNotImplemented, op, path, nil)
}

// withTarget records the second path of a two-path operation.
func withTarget(err error, target string) error {
	if err == nil {
		return nil
	}
	return platformerrors.WithContext(err, "target", target)
}

// classify maps a native error onto a platform error code.
func classify(err error) platformerrors.ErrorCode {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return platformerrors.CodeNotFound
	case errors.Is(err, fs.ErrExist):
		return platformerrors.CodeAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return platformerrors.CodeForbidden
	default:
		return CodeIO
	}
}
