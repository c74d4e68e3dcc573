package osfile

import (
	"fmt"
	"io"

	"github.com/jmgilman/go/fs/osfile/internal/sys"
)

var (
	_ io.ReadSeekCloser = (*Reader)(nil)
	_ io.ReaderAt       = (*Reader)(nil)
)

// Reader is a read-only descriptor over one file. It owns the underlying
// handle until Close is called; all methods fail once it is closed. A Reader
// is not safe for concurrent use.
type Reader struct {
	h    *sys.Handle
	path string
}

// OpenReader opens path for reading.
func OpenReader(path string) (*Reader, error) {
	h, err := sys.Open(path, sys.ReadOnly)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	return &Reader{h: h, path: path}, nil
}

// Read reads up to len(b) bytes from the current position. It returns
// 0, io.EOF only at the end of the file and may return fewer bytes than
// requested.
func (r *Reader) Read(b []byte) (int, error) {
	n, err := r.h.Read(b)
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return n, ioError("read", r.path, err)
	}
	return n, nil
}

// ReadAt reads len(b) bytes starting at off without moving the current
// position. As io.ReaderAt requires, a short count is always accompanied
// by an error, io.EOF when the file ends first.
func (r *Reader) ReadAt(b []byte, off int64) (int, error) {
	if off < 0 {
		return 0, ioError("read", r.path, fmt.Errorf("negative offset %d", off))
	}
	total := 0
	for total < len(b) {
		n, err := r.h.ReadAt(b[total:], off+int64(total))
		total += n
		if err == io.EOF {
			return total, io.EOF
		}
		if err != nil {
			return total, ioError("read", r.path, err)
		}
	}
	return total, nil
}

// Seek sets the position for the next Read and returns the new absolute
// offset.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	return seek(r.h, r.path, offset, whence)
}

// Size returns the current length of the file.
func (r *Reader) Size() (int64, error) {
	size, err := r.h.Size()
	if err != nil {
		return 0, ioError("stat", r.path, err)
	}
	return size, nil
}

// Path returns the path the Reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// Close releases the handle. Further calls are no-ops.
func (r *Reader) Close() error {
	if err := r.h.Close(); err != nil {
		return ioError("close", r.path, err)
	}
	return nil
}

func seek(h *sys.Handle, path string, offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart, io.SeekCurrent, io.SeekEnd:
	default:
		return 0, ioError("seek", path, fmt.Errorf("invalid whence %d", whence))
	}
	pos, err := h.Seek(offset, whence)
	if err != nil {
		return 0, ioError("seek", path, err)
	}
	return pos, nil
}
