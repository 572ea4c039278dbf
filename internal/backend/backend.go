// Package backend opens the SQLite builds the probe can report on.
//
// Which backends exist depends on how the binary was built:
//
//   - system:  cgo and the libsqlite3 build tag, links the system library
//   - mattn:   cgo, the amalgamation bundled by github.com/mattn/go-sqlite3
//   - modernc: always, the pure Go modernc.org/sqlite
package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nsqlite/sqliteprobe/internal/probe"
	"github.com/orsinium-labs/enum"
)

// Name identifies a backend.
type Name enum.Member[string]

var (
	NameSystem  = Name{Value: "system"}
	NameMattn   = Name{Value: "mattn"}
	NameModernc = Name{Value: "modernc"}

	// Names is ordered by preference, see Default.
	Names = enum.New(NameSystem, NameMattn, NameModernc)
)

var (
	ErrUnknown     = errors.New("unknown backend")
	ErrUnavailable = errors.New("backend not compiled into this binary")
	ErrLoad        = errors.New("failed to load SQLite library")
)

// buildHints tells the user how to get a backend compiled in.
var buildHints = map[Name]string{
	NameSystem:  "build with CGO_ENABLED=1 and -tags libsqlite3",
	NameMattn:   "build with CGO_ENABLED=1",
	NameModernc: "always available",
}

// Conn is an opened SQLite build.
type Conn interface {
	probe.Library
	io.Closer
}

type opener func(ctx context.Context) (Conn, error)

// openers is filled by the init functions of the compiled-in backends.
var openers = map[Name]opener{}

func register(name Name, open opener) {
	openers[name] = open
}

// ParseName parses a backend name.
func ParseName(s string) (Name, error) {
	name := Names.Parse(strings.ToLower(strings.TrimSpace(s)))
	if name == nil {
		return Name{}, fmt.Errorf("%w: %q, valid values are: %s", ErrUnknown, s, strings.Join(Names.Values(), ", "))
	}
	return *name, nil
}

// Available returns the compiled-in backends in order of preference.
func Available() []Name {
	available := []Name{}
	for _, name := range Names.Members() {
		if _, ok := openers[name]; ok {
			available = append(available, name)
		}
	}
	return available
}

// Default returns the most preferred compiled-in backend.
func Default() Name {
	available := Available()
	if len(available) == 0 {
		return NameModernc
	}
	return available[0]
}

// Open opens the named backend.
func Open(ctx context.Context, name Name) (Conn, error) {
	if !Names.Contains(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name.Value)
	}

	open, ok := openers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnavailable, name.Value, buildHints[name])
	}

	conn, err := open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s backend: %w", name.Value, err)
	}
	return conn, nil
}

func (n Name) String() string {
	return n.Value
}

func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.Value), nil
}
