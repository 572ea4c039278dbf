package probe

import (
	"bytes"
	"io"
	"slices"
)

// Report is a collected snapshot of a probed library.
//
// Report implements Library, so a parsed report can be written back out or
// fed to feature detection exactly like a live library.
type Report struct {
	VersionNumber int      `json:"version_number" yaml:"version_number"`
	ThreadSafety  int      `json:"thread_safe" yaml:"thread_safe"`
	Options       []string `json:"compile_options" yaml:"compile_options"`
}

// Collect queries lib once and returns the result as a Report.
func Collect(lib Library) Report {
	options := slices.Collect(Options(lib))
	if options == nil {
		options = []string{}
	}

	return Report{
		VersionNumber: lib.LibVersionNumber(),
		ThreadSafety:  lib.ThreadSafe(),
		Options:       options,
	}
}

func (r Report) LibVersionNumber() int {
	return r.VersionNumber
}

func (r Report) ThreadSafe() int {
	return r.ThreadSafety
}

func (r Report) CompileOptionGet(n int) (string, bool) {
	if n < 0 || n >= len(r.Options) {
		return "", false
	}
	return r.Options[n], true
}

// WriteTo writes r in the probe text layout.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := Write(&buf, r); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}
