package osfile

import (
	"fmt"
	"io"

	"github.com/jmgilman/go/fs/osfile/internal/sys"
)

var (
	_ io.WriteCloser  = (*Writer)(nil)
	_ io.Seeker       = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
)

// OpenMode selects how a Writer opens its file.
type OpenMode int

const (
	// ModeCreate opens write-only, creating the file or truncating it.
	ModeCreate OpenMode = iota

	// ModeAppend opens write-only at the end of an existing file. Every
	// write goes to the end regardless of position.
	ModeAppend

	// ModeInsert opens read-write, creating the file if it is missing and
	// keeping its contents otherwise. It is the only mode that can Seek.
	ModeInsert
)

// ModeFromFile is ModeInsert under the name used for bulk-transfer targets.
const ModeFromFile = ModeInsert

// String returns the mode name.
func (m OpenMode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeAppend:
		return "append"
	case ModeInsert:
		return "insert"
	default:
		return fmt.Sprintf("OpenMode(%d)", int(m))
	}
}

func (m OpenMode) sysMode() (sys.Mode, bool) {
	switch m {
	case ModeCreate:
		return sys.Mode{Write: true, Create: true, Truncate: true, Perm: DefaultFilePerm}, true
	case ModeAppend:
		return sys.Mode{Append: true}, true
	case ModeInsert:
		return sys.Mode{Read: true, Write: true, Create: true, Perm: DefaultFilePerm}, true
	default:
		return sys.Mode{}, false
	}
}

// Writer is a write descriptor over one file. It owns the underlying handle
// until Close is called; all methods fail once it is closed. Writes are not
// buffered. A Writer is not safe for concurrent use.
type Writer struct {
	h    *sys.Handle
	path string
	mode OpenMode
}

// OpenWriter opens path for writing in the given mode.
func OpenWriter(path string, mode OpenMode) (*Writer, error) {
	m, ok := mode.sysMode()
	if !ok {
		return nil, invalidOperation("open", path, "unknown open mode "+mode.String())
	}
	h, err := sys.Open(path, m)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	return &Writer{h: h, path: path, mode: mode}, nil
}

// Write writes all of b at the current position, or at the end of the file
// in ModeAppend.
func (w *Writer) Write(b []byte) (int, error) {
	n, err := w.h.Write(b)
	if err != nil {
		return n, ioError("write", w.path, err)
	}
	return n, nil
}

// WriteString writes s.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Seek sets the position for the next write. Only ModeInsert writers can
// seek; other modes fail with ErrInvalidOperation.
func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	if w.mode != ModeInsert {
		return 0, invalidOperation("seek", w.path, "seek requires insert mode, writer is "+w.mode.String())
	}
	return seek(w.h, w.path, offset, whence)
}

// WriteFromFile writes the whole content of the file at source to this
// writer, starting at the current position, and returns the number of bytes
// transferred. On Linux the copy happens in the kernel when possible.
func (w *Writer) WriteFromFile(source string, opts ...TransferOption) (int64, error) {
	const op = "transfer"

	if w.h.Closed() {
		return 0, withTarget(ioError(op, w.path, sys.ErrClosed), source)
	}

	src, err := sys.Open(source, sys.ReadOnly)
	if err != nil {
		return 0, withTarget(ioError(op, source, err), w.path)
	}
	defer src.Close()

	size, err := src.Size()
	if err != nil {
		return 0, withTarget(ioError(op, source, err), w.path)
	}
	n, err := transfer(w.h, src, size, newTransferConfig(opts))
	if err != nil {
		return n, withTarget(ioError(op, source, err), w.path)
	}
	return n, nil
}

// WriteFromFileAt seeks to offset and then behaves like WriteFromFile. It
// requires a ModeInsert writer.
func (w *Writer) WriteFromFileAt(source string, offset int64, opts ...TransferOption) (int64, error) {
	pos, err := w.Seek(offset, io.SeekStart)
	if err != nil {
		return 0, err
	}
	if pos != offset {
		return 0, ioError("seek", w.path, fmt.Errorf("seek to %d landed at %d", offset, pos))
	}
	return w.WriteFromFile(source, opts...)
}

// Flush does nothing: writes are passed to the operating system as they are
// made.
func (w *Writer) Flush() error {
	return nil
}

// Mode returns the mode the Writer was opened with.
func (w *Writer) Mode() OpenMode {
	return w.mode
}

// Path returns the path the Writer was opened with.
func (w *Writer) Path() string {
	return w.path
}

// Close releases the handle. Further calls are no-ops.
func (w *Writer) Close() error {
	if err := w.h.Close(); err != nil {
		return ioError("close", w.path, err)
	}
	return nil
}
