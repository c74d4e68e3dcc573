//go:build windows && (amd64 || arm64)

package sys

import (
	"golang.org/x/sys/windows"
)

// symbolicLinkAllowUnprivileged lets accounts without SeCreateSymbolicLink
// create links when Developer Mode is enabled.
const symbolicLinkAllowUnprivileged = 0x2

// Symlink creates link pointing at target. dir must be true when target is
// a directory.
func Symlink(target, link string, dir bool) error {
	l, err := windows.UTF16PtrFromString(link)
	if err != nil {
		return err
	}
	t, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return err
	}
	var flags uint32
	if dir {
		flags |= windows.SYMBOLIC_LINK_FLAG_DIRECTORY
	}
	err = windows.CreateSymbolicLink(l, t, flags|symbolicLinkAllowUnprivileged)
	if err == windows.ERROR_INVALID_PARAMETER {
		// Older builds reject the unprivileged flag.
		err = windows.CreateSymbolicLink(l, t, flags)
	}
	return err
}
