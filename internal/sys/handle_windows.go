//go:build windows

package sys

import (
	"io"

	"golang.org/x/sys/windows"
)

// Handle owns one open Windows file HANDLE.
type Handle struct {
	h windows.Handle
}

// Open opens path with the access and creation policy described by m. Files
// are shared for reading and writing so independent handles may coexist.
func Open(path string, m Mode) (*Handle, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	var access uint32
	switch {
	case m.Append && m.Read:
		access = windows.GENERIC_READ | windows.FILE_APPEND_DATA
	case m.Append:
		access = windows.FILE_APPEND_DATA
	case m.Write:
		access = windows.GENERIC_WRITE | windows.GENERIC_READ
	default:
		access = windows.GENERIC_READ
	}

	var disposition uint32
	switch {
	case m.Create && m.Exclusive:
		disposition = windows.CREATE_NEW
	case m.Create && m.Truncate:
		disposition = windows.CREATE_ALWAYS
	case m.Create:
		disposition = windows.OPEN_ALWAYS
	case m.Truncate:
		disposition = windows.TRUNCATE_EXISTING
	default:
		disposition = windows.OPEN_EXISTING
	}

	h, err := windows.CreateFile(
		name,
		access,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		disposition,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return nil, err
	}
	return &Handle{h: h}, nil
}

// Closed reports whether Close has been called.
func (h *Handle) Closed() bool {
	return h.h == windows.InvalidHandle
}

// Read performs a single ReadFile call. It returns io.EOF once the end of the
// file has been reached.
func (h *Handle) Read(p []byte) (int, error) {
	if h.Closed() {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	var done uint32
	err := windows.ReadFile(h.h, clampChunk(p), &done, nil)
	if err == windows.ERROR_HANDLE_EOF || err == windows.ERROR_BROKEN_PIPE {
		return 0, io.EOF
	}
	if err != nil {
		return 0, err
	}
	if done == 0 {
		return 0, io.EOF
	}
	return int(done), nil
}

// ReadAt reads at off using an overlapped offset. Synchronous handles move the
// file pointer on positional reads, so the previous position is restored.
func (h *Handle) ReadAt(p []byte, off int64) (int, error) {
	if h.Closed() {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	cur, err := windows.Seek(h.h, 0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	defer windows.Seek(h.h, cur, io.SeekStart) //nolint:errcheck

	o := windows.Overlapped{
		Offset:     uint32(off),
		OffsetHigh: uint32(off >> 32),
	}
	var done uint32
	err = windows.ReadFile(h.h, clampChunk(p), &done, &o)
	if err == windows.ERROR_HANDLE_EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, err
	}
	if done == 0 {
		return 0, io.EOF
	}
	return int(done), nil
}

// Write writes all of p, retrying short writes until p is exhausted.
func (h *Handle) Write(p []byte) (int, error) {
	if h.Closed() {
		return 0, ErrClosed
	}
	written := 0
	for written < len(p) {
		var done uint32
		if err := windows.WriteFile(h.h, clampChunk(p[written:]), &done, nil); err != nil {
			return written, err
		}
		if done == 0 {
			return written, io.ErrShortWrite
		}
		written += int(done)
	}
	return written, nil
}

// Seek repositions the file pointer.
func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	if h.Closed() {
		return 0, ErrClosed
	}
	return windows.Seek(h.h, offset, whence)
}

func (h *Handle) info() (windows.ByHandleFileInformation, error) {
	var fi windows.ByHandleFileInformation
	err := windows.GetFileInformationByHandle(h.h, &fi)
	return fi, err
}

// SameFile reports whether path, with links followed, names the open file.
// Files are compared by volume serial number and file index. A path that
// does not exist names nothing.
func (h *Handle) SameFile(path string) (bool, error) {
	if h.Closed() {
		return false, ErrClosed
	}
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}
	other, err := windows.CreateFile(
		name,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		if err == windows.ERROR_FILE_NOT_FOUND || err == windows.ERROR_PATH_NOT_FOUND {
			return false, nil
		}
		return false, err
	}
	defer windows.CloseHandle(other)

	a, err := h.info()
	if err != nil {
		return false, err
	}
	var b windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(other, &b); err != nil {
		return false, err
	}
	return a.VolumeSerialNumber == b.VolumeSerialNumber &&
		a.FileIndexHigh == b.FileIndexHigh &&
		a.FileIndexLow == b.FileIndexLow, nil
}

// Size returns the file length.
func (h *Handle) Size() (int64, error) {
	if h.Closed() {
		return 0, ErrClosed
	}
	fi, err := h.info()
	if err != nil {
		return 0, err
	}
	return int64(fi.FileSizeHigh)<<32 | int64(fi.FileSizeLow), nil
}

// Perm reports 0o444 for read-only files and 0o666 otherwise, which is all
// the Windows attribute model can express.
func (h *Handle) Perm() (uint32, error) {
	if h.Closed() {
		return 0, ErrClosed
	}
	fi, err := h.info()
	if err != nil {
		return 0, err
	}
	if fi.FileAttributes&windows.FILE_ATTRIBUTE_READONLY != 0 {
		return 0o444, nil
	}
	return 0o666, nil
}

// Chmod is a no-op on Windows.
func (h *Handle) Chmod(uint32) error {
	if h.Closed() {
		return ErrClosed
	}
	return nil
}

// Truncate sets the file length. SetEndOfFile works at the file pointer, so
// the pointer is moved to size and then restored.
func (h *Handle) Truncate(size int64) error {
	if h.Closed() {
		return ErrClosed
	}
	cur, err := windows.Seek(h.h, 0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if _, err := windows.Seek(h.h, size, io.SeekStart); err != nil {
		return err
	}
	if err := windows.SetEndOfFile(h.h); err != nil {
		return err
	}
	_, err = windows.Seek(h.h, cur, io.SeekStart)
	return err
}

// Close releases the handle. Closing a closed Handle is a no-op.
func (h *Handle) Close() error {
	if h.Closed() {
		return nil
	}
	raw := h.h
	h.h = windows.InvalidHandle
	return windows.CloseHandle(raw)
}
