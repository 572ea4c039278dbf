//go:build !darwin && !linux

package backend

import "fmt"

// OpenLibrary is only supported where shared libraries can be loaded
// without cgo.
func OpenLibrary(path string) (Conn, error) {
	return nil, fmt.Errorf("%w: %s: loading libraries by path needs linux or darwin", ErrLoad, path)
}
