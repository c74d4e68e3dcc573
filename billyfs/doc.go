// Package billyfs exposes osfile as a go-billy filesystem, so go-git and
// other billy consumers can work on top of osfile descriptors and listings.
//
// Usage:
//
//	bfs := billyfs.New("/srv/repo")
//	f, err := bfs.Create("notes/today.txt")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
// Errors follow the os package conventions (*fs.PathError carrying the
// native error), so os.IsNotExist works as billy consumers expect.
//
// File locking is not supported: Lock and Unlock return
// billy.ErrNotSupported and LockCapability is not advertised.
package billyfs
