//go:build windows

package sys

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// Remove deletes a single filesystem entry: DeleteFile for files, and
// RemoveDirectory for empty directories and directory links.
func Remove(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	err = windows.DeleteFile(p)
	if err == nil {
		return nil
	}
	if rerr := windows.RemoveDirectory(p); rerr == nil {
		return nil
	} else if rerr != windows.ERROR_DIRECTORY {
		return rerr
	}
	return err
}

// Rename moves oldpath to newpath. Existing targets are replaced, moves
// across volumes fall back to a copy, and the call returns only once the
// move has been flushed.
func Rename(oldpath, newpath string) error {
	from, err := windows.UTF16PtrFromString(oldpath)
	if err != nil {
		return err
	}
	to, err := windows.UTF16PtrFromString(newpath)
	if err != nil {
		return err
	}
	return windows.MoveFileEx(from, to,
		windows.MOVEFILE_COPY_ALLOWED|windows.MOVEFILE_REPLACE_EXISTING|windows.MOVEFILE_WRITE_THROUGH)
}

// Mkdir creates a single directory. perm has no meaning on Windows.
func Mkdir(path string, _ uint32) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	return windows.CreateDirectory(p, nil)
}

// IsCrossDevice always reports false: MoveFileEx copies across volumes.
func IsCrossDevice(error) bool {
	return false
}

// IsNotDirectory reports whether err says a path component is not a
// directory. The os package reports reading a file as a directory with
// ENOTDIR; the native calls use ERROR_DIRECTORY.
func IsNotDirectory(err error) bool {
	return errors.Is(err, syscall.ENOTDIR) || errors.Is(err, windows.ERROR_DIRECTORY)
}
