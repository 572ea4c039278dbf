// Package probe reports the build characteristics of a linked SQLite
// library: its version number, its thread-safety mode and the compile-time
// options it was built with.
//
// The text layout written by Write is consumed by build scripts:
//
//	<version number>
//	<thread-safety mode>
//	<blank line>
//	<option 0>
//	<option 1>
//	...
package probe

import (
	"bufio"
	"io"
	"iter"
	"strconv"
)

// Library is a SQLite build whose characteristics can be queried.
//
//   - https://www.sqlite.org/c3ref/libversion.html
//   - https://www.sqlite.org/c3ref/threadsafe.html
//   - https://www.sqlite.org/c3ref/compileoption_get.html
type Library interface {
	// LibVersionNumber returns major*1000000 + minor*1000 + patch.
	LibVersionNumber() int
	// ThreadSafe returns 0 (single-thread), 1 (serialized) or 2 (multi-thread).
	ThreadSafe() int
	// CompileOptionGet returns the compile option at index n, or false once
	// n is past the last option.
	CompileOptionGet(n int) (string, bool)
}

// Options enumerates the compile options of lib, starting at index 0 and
// stopping at the first index that yields no option.
//
// An empty option name ends the enumeration as well, so a report never
// contains more than one blank line.
func Options(lib Library) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; ; i++ {
			opt, ok := lib.CompileOptionGet(i)
			if !ok || opt == "" {
				return
			}
			if !yield(opt) {
				return
			}
		}
	}
}

// Write writes the probe report for lib to w.
func Write(w io.Writer, lib Library) error {
	bw := bufio.NewWriter(w)

	writeLine(bw, strconv.Itoa(lib.LibVersionNumber()))
	writeLine(bw, strconv.Itoa(lib.ThreadSafe()))
	writeLine(bw, "")

	for opt := range Options(lib) {
		writeLine(bw, opt)
	}

	// bufio.Writer keeps the first write error, Flush reports it.
	return bw.Flush()
}

func writeLine(bw *bufio.Writer, line string) {
	_, _ = bw.WriteString(line)
	_ = bw.WriteByte('\n')
}
