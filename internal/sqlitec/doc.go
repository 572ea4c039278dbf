// Package sqlitec provides a lightweight wrapper around the introspection
// functions of a system SQLite C library.
//
// It is only compiled with cgo and the libsqlite3 build tag, which links
// against the libsqlite3 found by the C toolchain:
//
//	go build -tags libsqlite3 ./cmd/sqliteprobe
//
//   - https://www.sqlite.org/cintro.html
//   - https://www.sqlite.org/c3ref/intro.html
package sqlitec
