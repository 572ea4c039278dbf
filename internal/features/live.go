package features

import "github.com/nsqlite/sqliteprobe/internal/probe"

// OptionLibrary is a loaded library that can also answer whether a single
// compile option was used, as sqlite3_compileoption_used does.
type OptionLibrary interface {
	probe.Library
	CompileOptionUsed(name string) bool
}

// Live is a Prober that asks a loaded library on every call instead of
// reading a collected report.
type Live struct {
	lib OptionLibrary
}

// FromOptionLibrary builds a Prober over a loaded library.
func FromOptionLibrary(lib OptionLibrary) *Live {
	return &Live{lib: lib}
}

func (l *Live) Version() Version {
	return VersionFromNumber(l.lib.LibVersionNumber())
}

func (l *Live) Threading() Threading {
	return ThreadingFromCode(l.lib.ThreadSafe())
}

func (l *Live) IsSet(flag Flag) bool {
	return l.lib.CompileOptionUsed(flag.Name())
}
