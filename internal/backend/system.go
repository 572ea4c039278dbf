//go:build cgo && libsqlite3

package backend

import (
	"context"

	"github.com/nsqlite/sqliteprobe/internal/sqlitec"
)

func init() {
	register(NameSystem, func(context.Context) (Conn, error) {
		return systemConn{}, nil
	})
}

// systemConn is the library linked into the binary. It holds no resources.
type systemConn struct {
	sqlitec.Library
}

func (systemConn) Close() error {
	return nil
}
