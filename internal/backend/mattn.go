//go:build cgo

package backend

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-sqlite3"
)

const mattnDriverName = "sqlite3"

func init() {
	register(NameMattn, openMattn)
}

// mattnConn is a snapshot of the SQLite amalgamation bundled with
// github.com/mattn/go-sqlite3, which does not export the compile option
// accessors. PRAGMA compile_options walks sqlite3_compileoption_get in
// index order, so the snapshot keeps the library's ordering.
type mattnConn struct {
	versionNumber int
	threadSafe    int
	options       []string
}

func openMattn(ctx context.Context) (Conn, error) {
	db, err := sql.Open(mattnDriverName, ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	defer db.Close()

	options, err := queryCompileOptions(ctx, db)
	if err != nil {
		return nil, err
	}

	threadSafe, err := threadSafeFromOptions(options)
	if err != nil {
		return nil, err
	}

	_, versionNumber, _ := sqlite3.Version()

	return &mattnConn{
		versionNumber: versionNumber,
		threadSafe:    threadSafe,
		options:       options,
	}, nil
}

func queryCompileOptions(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, "PRAGMA compile_options")
	if err != nil {
		return nil, fmt.Errorf("failed to query compile options: %w", err)
	}
	defer rows.Close()

	options := []string{}
	for rows.Next() {
		var opt string
		if err := rows.Scan(&opt); err != nil {
			return nil, fmt.Errorf("failed to scan compile option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read compile options: %w", err)
	}

	return options, nil
}

// threadSafeFromOptions reads the THREADSAFE=<n> option every SQLite build
// reports.
func threadSafeFromOptions(options []string) (int, error) {
	for _, opt := range options {
		value, ok := strings.CutPrefix(opt, "THREADSAFE=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid THREADSAFE compile option %q: %w", opt, err)
		}
		return n, nil
	}
	return 0, errors.New("THREADSAFE compile option not reported")
}

func (c *mattnConn) LibVersionNumber() int {
	return c.versionNumber
}

func (c *mattnConn) ThreadSafe() int {
	return c.threadSafe
}

func (c *mattnConn) CompileOptionGet(n int) (string, bool) {
	if n < 0 || n >= len(c.options) {
		return "", false
	}
	return c.options[n], true
}

func (c *mattnConn) Close() error {
	return nil
}
