package osfile

import (
	"io"

	"github.com/jmgilman/go/fs/osfile/internal/sys"
)

// transfer copies size bytes from the current offset of src to dst. The
// kernel does the copy when it can; otherwise the bytes go through a
// userspace buffer until src is exhausted.
func transfer(dst, src *sys.Handle, size int64, cfg transferConfig) (int64, error) {
	if cfg.zeroCopy && size > 0 {
		n, handled, err := sys.Sendfile(dst, src, size)
		if handled {
			return n, err
		}
		log().Debug("zero-copy transfer unavailable, using buffered copy", "size", size)
	}
	return io.CopyBuffer(dst, src, make([]byte, cfg.bufferSize))
}
