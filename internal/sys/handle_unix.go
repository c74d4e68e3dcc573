//go:build unix

package sys

import (
	"io"

	"golang.org/x/sys/unix"
)

const closedFD = -1

// Handle owns one open POSIX file descriptor.
type Handle struct {
	fd int
}

// Open opens path with the access and creation policy described by m.
func Open(path string, m Mode) (*Handle, error) {
	flags := unix.O_CLOEXEC
	switch {
	case m.Read && (m.Write || m.Append):
		flags |= unix.O_RDWR
	case m.Write || m.Append:
		flags |= unix.O_WRONLY
	default:
		flags |= unix.O_RDONLY
	}
	if m.Append {
		flags |= unix.O_APPEND
	}
	if m.Create {
		flags |= unix.O_CREAT
	}
	if m.Truncate {
		flags |= unix.O_TRUNC
	}
	if m.Exclusive {
		flags |= unix.O_EXCL
	}

	for {
		fd, err := unix.Open(path, flags, m.Perm)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &Handle{fd: fd}, nil
	}
}

// Closed reports whether Close has been called.
func (h *Handle) Closed() bool {
	return h.fd == closedFD
}

// Read performs a single read(2). It returns io.EOF once the end of the file
// has been reached.
func (h *Handle) Read(p []byte) (int, error) {
	if h.Closed() {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := unix.Read(h.fd, clampChunk(p))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

// ReadAt performs a single pread(2) without moving the file offset.
func (h *Handle) ReadAt(p []byte, off int64) (int, error) {
	if h.Closed() {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := unix.Pread(h.fd, clampChunk(p), off)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

// Write writes all of p, retrying short writes until p is exhausted or the
// kernel reports an error.
func (h *Handle) Write(p []byte) (int, error) {
	if h.Closed() {
		return 0, ErrClosed
	}
	written := 0
	for written < len(p) {
		n, err := unix.Write(h.fd, clampChunk(p[written:]))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, io.ErrShortWrite
		}
		written += n
	}
	return written, nil
}

// Seek repositions the file offset.
func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	if h.Closed() {
		return 0, ErrClosed
	}
	return unix.Seek(h.fd, offset, whence)
}

// Size returns the file length reported by fstat(2).
func (h *Handle) Size() (int64, error) {
	if h.Closed() {
		return 0, ErrClosed
	}
	var st unix.Stat_t
	if err := unix.Fstat(h.fd, &st); err != nil {
		return 0, err
	}
	return st.Size, nil
}

// Perm returns the permission bits of the open file.
func (h *Handle) Perm() (uint32, error) {
	if h.Closed() {
		return 0, ErrClosed
	}
	var st unix.Stat_t
	if err := unix.Fstat(h.fd, &st); err != nil {
		return 0, err
	}
	return uint32(st.Mode) & 0o7777, nil
}

// SameFile reports whether path, with links followed, names the open file.
// A path that does not exist names nothing.
func (h *Handle) SameFile(path string) (bool, error) {
	if h.Closed() {
		return false, ErrClosed
	}
	var open, other unix.Stat_t
	if err := unix.Fstat(h.fd, &open); err != nil {
		return false, err
	}
	if err := unix.Stat(path, &other); err != nil {
		if err == unix.ENOENT || err == unix.ENOTDIR {
			return false, nil
		}
		return false, err
	}
	return open.Dev == other.Dev && open.Ino == other.Ino, nil
}

// Chmod sets the permission bits of the open file.
func (h *Handle) Chmod(perm uint32) error {
	if h.Closed() {
		return ErrClosed
	}
	return unix.Fchmod(h.fd, perm)
}

// Truncate sets the file length, padding with zero bytes when growing.
func (h *Handle) Truncate(size int64) error {
	if h.Closed() {
		return ErrClosed
	}
	return unix.Ftruncate(h.fd, size)
}

// Close releases the descriptor. Closing a closed Handle is a no-op.
func (h *Handle) Close() error {
	if h.Closed() {
		return nil
	}
	fd := h.fd
	h.fd = closedFD
	return unix.Close(fd)
}
