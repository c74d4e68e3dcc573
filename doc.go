// Package osfile provides path snapshots, unbuffered file descriptors and
// directory listing over the local operating system filesystem.
//
// A Path is an immutable record of what an entry looked like when it was
// constructed: whether it existed and whether it was a directory or a
// regular file. It never re-reads the filesystem on its own. Operations that
// mutate the filesystem (Remove, Rename, CopyFile, Resize) act immediately
// and return a new snapshot where one makes sense.
//
// Usage:
//
//	p, err := osfile.NewPath("data/out.bin")
//	if err != nil {
//	    return err
//	}
//	w, err := p.OpenWrite(osfile.ModeCreate)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	_, err = w.Write(payload)
//
// # Descriptors
//
// Reader and Writer each own exactly one operating system handle: a file
// descriptor on unix platforms and a HANDLE on Windows. Close is idempotent
// and every other method fails once the descriptor is closed. Release them
// with defer.
//
// Writers open in one of three modes. ModeCreate truncates or creates,
// ModeAppend writes at the end of an existing file, and ModeInsert allows
// seeking and writing at arbitrary offsets. Writer.WriteFromFile copies a
// whole file into the writer; on Linux this uses sendfile(2) when the kernel
// accepts the pair of descriptors.
//
// # Listing
//
// ListDirectory returns one level of entries as Paths, directories first and
// then everything else, each group sorted by name. This order is part of the
// contract.
//
// # Errors
//
// Every error is a github.com/jmgilman/go/errors PlatformError whose chain
// contains one of ErrInvalidPath, ErrIO, ErrInvalidOperation or
// ErrUnsupported, plus the native error for operating system failures, so
// errors.Is(err, fs.ErrNotExist) works as usual. Nothing is retried.
//
// # Thread Safety
//
// Paths are values and safe to share. Descriptors are not safe for
// concurrent use; independent descriptors on the same file are fine.
package osfile
