//go:build linux

package sys

import (
	"golang.org/x/sys/unix"
)

// sendfileChunk is the largest count passed to a single sendfile(2) call.
const sendfileChunk = 1 << 30

// Sendfile copies count bytes from the current offset of src to dst inside
// the kernel. handled is false when the kernel refuses the pair before any
// byte moved (for example an O_APPEND target); the caller should then fall
// back to a userspace copy.
func Sendfile(dst, src *Handle, count int64) (written int64, handled bool, err error) {
	if dst.Closed() || src.Closed() {
		return 0, true, ErrClosed
	}
	for written < count {
		chunk := count - written
		if chunk > sendfileChunk {
			chunk = sendfileChunk
		}
		n, err := unix.Sendfile(dst.fd, src.fd, nil, int(chunk))
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		if err != nil {
			if written == 0 && refused(err) {
				return 0, false, nil
			}
			return written, true, err
		}
		if n == 0 {
			// Source shrank underneath us.
			break
		}
		written += int64(n)
	}
	return written, true, nil
}

func refused(err error) bool {
	switch err {
	case unix.EINVAL, unix.ENOSYS, unix.EOPNOTSUPP, unix.EXDEV:
		return true
	}
	return false
}
