package backend

import (
	"context"

	"modernc.org/libc"
	sqlite3 "modernc.org/sqlite/lib"
)

func init() {
	register(NameModernc, openModernc)
}

// moderncConn calls the transpiled C API of modernc.org/sqlite directly.
// Every call needs a libc thread-local storage handle, released by Close.
type moderncConn struct {
	tls *libc.TLS
}

func openModernc(context.Context) (Conn, error) {
	return &moderncConn{tls: libc.NewTLS()}, nil
}

func (c *moderncConn) LibVersionNumber() int {
	return int(sqlite3.Xsqlite3_libversion_number(c.tls))
}

func (c *moderncConn) ThreadSafe() int {
	return int(sqlite3.Xsqlite3_threadsafe(c.tls))
}

func (c *moderncConn) CompileOptionGet(n int) (string, bool) {
	p := sqlite3.Xsqlite3_compileoption_get(c.tls, int32(n))
	if p == 0 {
		return "", false
	}
	return libc.GoString(p), true
}

func (c *moderncConn) CompileOptionUsed(name string) bool {
	cName, err := libc.CString(name)
	if err != nil {
		return false
	}
	defer libc.Xfree(c.tls, cName)

	return sqlite3.Xsqlite3_compileoption_used(c.tls, cName) != 0
}

func (c *moderncConn) SourceID() string {
	return libc.GoString(sqlite3.Xsqlite3_sourceid(c.tls))
}

func (c *moderncConn) Close() error {
	c.tls.Close()
	return nil
}
