package osfile

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(nopLogger())
}

func nopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SetLogger installs the logger used for diagnostic output. Passing nil
// restores the default, which discards everything.
//
// Debug records cover fallbacks (sendfile, cross-device rename), skipped
// listing entries and recursive removal. Warn records report errors swallowed
// by Path.RemoveQuietly.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = nopLogger()
	}
	logger.Store(l)
}

func log() *slog.Logger {
	return logger.Load()
}
