//go:build unix

package sys

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Remove deletes a single filesystem entry: unlink for files and links,
// rmdir for empty directories.
func Remove(path string) error {
	err := unix.Unlink(path)
	if err == nil {
		return nil
	}
	rerr := unix.Rmdir(path)
	if rerr == nil {
		return nil
	}
	// ENOTDIR means path was never a directory, so the unlink error is
	// the meaningful one.
	if rerr == unix.ENOTDIR {
		return err
	}
	return rerr
}

// Rename moves oldpath to newpath, replacing newpath if it is a file.
func Rename(oldpath, newpath string) error {
	return unix.Rename(oldpath, newpath)
}

// Mkdir creates a single directory.
func Mkdir(path string, perm uint32) error {
	return unix.Mkdir(path, perm)
}

// Symlink creates link pointing at target. dir is ignored on POSIX.
func Symlink(target, link string, _ bool) error {
	return unix.Symlink(target, link)
}

// IsCrossDevice reports whether err is the result of a rename across
// filesystems.
func IsCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}

// IsNotDirectory reports whether err says a path component is not a
// directory.
func IsNotDirectory(err error) bool {
	return errors.Is(err, unix.ENOTDIR)
}
