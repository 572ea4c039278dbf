package features

import (
	"fmt"

	"github.com/orsinium-labs/enum"
)

// Threading is the threading mode SQLite was built with.
//
// https://www.sqlite.org/threadsafe.html
type Threading enum.Member[string]

var (
	ThreadingSingleThread = Threading{Value: "single-thread"}
	ThreadingMultiThread  = Threading{Value: "multi-thread"}
	ThreadingSerialized   = Threading{Value: "serialized"}

	ThreadingModes = enum.New(
		ThreadingSingleThread,
		ThreadingMultiThread,
		ThreadingSerialized,
	)
)

// ThreadingFromCode maps the result of sqlite3_threadsafe to a Threading.
// Unknown codes are treated as single-thread.
func ThreadingFromCode(code int) Threading {
	switch code {
	case 1:
		return ThreadingSerialized
	case 2:
		return ThreadingMultiThread
	default:
		return ThreadingSingleThread
	}
}

// ParseThreading parses a threading mode by name.
func ParseThreading(name string) (Threading, error) {
	t := ThreadingModes.Parse(name)
	if t == nil {
		return Threading{}, fmt.Errorf("unknown threading mode: %q", name)
	}
	return *t, nil
}

// IsThreadSafe returns true if the library may be used from multiple
// threads.
func (t Threading) IsThreadSafe() bool {
	return t == ThreadingMultiThread || t == ThreadingSerialized
}

func (t Threading) String() string {
	return t.Value
}

func (t Threading) MarshalText() ([]byte, error) {
	return []byte(t.Value), nil
}

func (t *Threading) UnmarshalText(text []byte) error {
	parsed, err := ParseThreading(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
