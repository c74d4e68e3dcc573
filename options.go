package osfile

// DefaultBufferSize is the size of the buffer used when a transfer cannot be
// done by the kernel.
const DefaultBufferSize = 8 * 1024

// TransferOption configures a bulk transfer (Writer.WriteFromFile and
// Path.CopyFile).
type TransferOption func(*transferConfig)

type transferConfig struct {
	bufferSize int
	zeroCopy   bool
}

func newTransferConfig(opts []TransferOption) transferConfig {
	cfg := transferConfig{
		bufferSize: DefaultBufferSize,
		zeroCopy:   true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBufferSize sets the buffer size for userspace copies. Values below one
// are ignored.
func WithBufferSize(n int) TransferOption {
	return func(c *transferConfig) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// WithoutZeroCopy disables the in-kernel fast path, forcing a buffered copy.
func WithoutZeroCopy() TransferOption {
	return func(c *transferConfig) {
		c.zeroCopy = false
	}
}
