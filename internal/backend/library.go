//go:build darwin || linux

package backend

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// sharedLibrary is a SQLite shared library loaded at runtime by path.
type sharedLibrary struct {
	handle uintptr

	libversionNumber  func() int32
	threadsafe        func() int32
	sourceid          func() string
	compileoptionGet  func(n int32) string
	compileoptionUsed func(name string) int32
}

// librarySymbols are the C functions a loaded library must export.
var librarySymbols = []string{
	"sqlite3_libversion_number",
	"sqlite3_threadsafe",
	"sqlite3_sourceid",
	"sqlite3_compileoption_get",
	"sqlite3_compileoption_used",
}

// OpenLibrary loads the SQLite shared library at path, e.g.
// "/usr/lib/x86_64-linux-gnu/libsqlite3.so.0". A bare file name is looked up
// the way the dynamic linker looks it up.
func OpenLibrary(path string) (Conn, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	// RegisterLibFunc panics on a missing symbol.
	for _, sym := range librarySymbols {
		if _, err := purego.Dlsym(handle, sym); err != nil {
			_ = purego.Dlclose(handle)
			return nil, fmt.Errorf("%w: %s: missing %s", ErrLoad, path, sym)
		}
	}

	lib := &sharedLibrary{handle: handle}
	purego.RegisterLibFunc(&lib.libversionNumber, handle, "sqlite3_libversion_number")
	purego.RegisterLibFunc(&lib.threadsafe, handle, "sqlite3_threadsafe")
	purego.RegisterLibFunc(&lib.sourceid, handle, "sqlite3_sourceid")
	purego.RegisterLibFunc(&lib.compileoptionGet, handle, "sqlite3_compileoption_get")
	purego.RegisterLibFunc(&lib.compileoptionUsed, handle, "sqlite3_compileoption_used")

	return lib, nil
}

func (l *sharedLibrary) LibVersionNumber() int {
	return int(l.libversionNumber())
}

func (l *sharedLibrary) ThreadSafe() int {
	return int(l.threadsafe())
}

// CompileOptionGet reports NULL past the last option as an empty name,
// which also ends the enumeration.
func (l *sharedLibrary) CompileOptionGet(n int) (string, bool) {
	opt := l.compileoptionGet(int32(n))
	return opt, opt != ""
}

func (l *sharedLibrary) CompileOptionUsed(name string) bool {
	return l.compileoptionUsed(name) != 0
}

func (l *sharedLibrary) SourceID() string {
	return l.sourceid()
}

func (l *sharedLibrary) Close() error {
	return purego.Dlclose(l.handle)
}
