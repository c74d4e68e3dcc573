//go:build windows && !(amd64 || arm64)

package sys

// Symlink is not available on 32-bit Windows builds.
func Symlink(_, _ string, _ bool) error {
	return ErrUnsupported
}
