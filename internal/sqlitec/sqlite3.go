//go:build cgo && libsqlite3

package sqlitec

/*
#cgo LDFLAGS: -lsqlite3
#include <stdlib.h>
#include <sqlite3.h>
*/
import "C"
import "unsafe"

// Library is the SQLite library linked into the running binary.
type Library struct{}

// LibVersion returns the library version as a string, e.g. "3.45.0".
//
// https://www.sqlite.org/c3ref/libversion.html
func LibVersion() string {
	return C.GoString(C.sqlite3_libversion())
}

// LibVersionNumber returns the library version as an integer, e.g. 3045000.
//
// https://www.sqlite.org/c3ref/libversion.html
func LibVersionNumber() int {
	return int(C.sqlite3_libversion_number())
}

// SourceID returns the check-in identifier of the library source.
//
// https://www.sqlite.org/c3ref/libversion.html
func SourceID() string {
	return C.GoString(C.sqlite3_sourceid())
}

// ThreadSafe returns the threading mode the library was compiled with:
// 0 for single-thread, 1 for serialized and 2 for multi-thread.
//
// https://www.sqlite.org/c3ref/threadsafe.html
func ThreadSafe() int {
	return int(C.sqlite3_threadsafe())
}

// CompileOptionGet returns the compile option at index n. The second
// result is false once n is past the last option, where the C function
// returns NULL.
//
// https://www.sqlite.org/c3ref/compileoption_get.html
func CompileOptionGet(n int) (string, bool) {
	opt := C.sqlite3_compileoption_get(C.int(n))
	if opt == nil {
		return "", false
	}
	return C.GoString(opt), true
}

// CompileOptionUsed returns true if the named option was used at build
// time. The SQLITE_ prefix is optional.
//
// https://www.sqlite.org/c3ref/compileoption_get.html
func CompileOptionUsed(name string) bool {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	return C.sqlite3_compileoption_used(cName) != 0
}

func (Library) LibVersionNumber() int {
	return LibVersionNumber()
}

func (Library) ThreadSafe() int {
	return ThreadSafe()
}

func (Library) CompileOptionGet(n int) (string, bool) {
	return CompileOptionGet(n)
}

func (Library) CompileOptionUsed(name string) bool {
	return CompileOptionUsed(name)
}

func (Library) SourceID() string {
	return SourceID()
}
