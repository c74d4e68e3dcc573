// Package sys is the platform dispatch layer beneath osfile.
//
// It exposes one Handle type whose representation is selected at compile
// time: a POSIX file descriptor on unix platforms and a HANDLE on Windows.
// Callers above this package never branch on the operating system.
package sys

import "github.com/jmgilman/go/fs/core"

// Mode describes how a Handle is opened. Access is derived from Read, Write
// and Append; Create, Truncate and Exclusive select the creation policy.
type Mode struct {
	Read      bool
	Write     bool
	Append    bool
	Create    bool
	Truncate  bool
	Exclusive bool

	// Perm is applied (before umask) when the file is created.
	Perm uint32
}

// ReadOnly opens an existing file for reading.
var ReadOnly = Mode{Read: true}

var (
	// ErrClosed is returned by every method of a closed Handle.
	ErrClosed = core.ErrClosed

	// ErrUnsupported is returned for primitives the platform does not offer.
	ErrUnsupported = core.ErrUnsupported
)

// maxChunk bounds a single read or write request so that the length always
// fits the native length type.
const maxChunk = 1 << 30

func clampChunk(p []byte) []byte {
	if len(p) > maxChunk {
		return p[:maxChunk]
	}
	return p
}
