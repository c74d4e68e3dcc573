package billyfs

import (
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/fs/core"

	"github.com/jmgilman/go/fs/osfile/internal/sys"
)

// file is a billy.File over one osfile handle.
type file struct {
	h    *sys.Handle
	name string
}

// Compile-time interface checks.
var (
	_ billy.File     = (*file)(nil)
	_ core.Truncater = (*file)(nil)
)

// Name returns the name the file was opened with.
func (f *file) Name() string {
	return f.name
}

func (f *file) Read(p []byte) (int, error) {
	n, err := f.h.Read(p)
	if err != nil && err != io.EOF {
		return n, pathError("read", f.name, err)
	}
	return n, err
}

// ReadAt fills p from off, returning io.EOF if the file ends first.
func (f *file) ReadAt(p []byte, off int64) (int, error) {
	total := 0
	for total < len(p) {
		n, err := f.h.ReadAt(p[total:], off+int64(total))
		total += n
		if err == io.EOF {
			return total, io.EOF
		}
		if err != nil {
			return total, pathError("read", f.name, err)
		}
	}
	return total, nil
}

func (f *file) Write(p []byte) (int, error) {
	n, err := f.h.Write(p)
	if err != nil {
		return n, pathError("write", f.name, err)
	}
	return n, nil
}

func (f *file) Seek(offset int64, whence int) (int64, error) {
	pos, err := f.h.Seek(offset, whence)
	if err != nil {
		return 0, pathError("seek", f.name, err)
	}
	return pos, nil
}

// Truncate sets the file length.
func (f *file) Truncate(size int64) error {
	if err := f.h.Truncate(size); err != nil {
		return pathError("truncate", f.name, err)
	}
	return nil
}

// Lock is not supported.
func (f *file) Lock() error {
	return billy.ErrNotSupported
}

// Unlock is not supported.
func (f *file) Unlock() error {
	return billy.ErrNotSupported
}

// Close releases the handle. Closing twice is a no-op.
func (f *file) Close() error {
	if err := f.h.Close(); err != nil {
		return pathError("close", f.name, err)
	}
	return nil
}
