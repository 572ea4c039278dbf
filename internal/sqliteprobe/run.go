// Package sqliteprobe runs the probe: it opens a SQLite backend and prints
// its version number, thread-safety mode and compile options.
package sqliteprobe

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nsqlite/sqliteprobe/internal/backend"
	"github.com/nsqlite/sqliteprobe/internal/format"
	"github.com/nsqlite/sqliteprobe/internal/log"
	"github.com/nsqlite/sqliteprobe/internal/probe"
	"github.com/nsqlite/sqliteprobe/internal/sqliteprobe/config"
)

// Run runs sqliteprobe. The probe is short and does not react to signals;
// SIGINT and SIGTERM terminate the process with their default action.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	logger := log.NewDiscardLogger()
	if conf.Verbose {
		logger = log.NewLogger(os.Stderr, true).WithRunID()
	}

	return run(ctx, conf, os.Stdout, logger)
}

// run always runs to completion: a cancelled ctx does not cut the report
// short.
func run(ctx context.Context, conf config.Config, stdout io.Writer, logger log.Logger) error {
	conn, err := backend.Open(context.WithoutCancel(ctx), conf.ParsedBackend)
	if err != nil {
		return err
	}
	defer conn.Close()

	logger.DebugNs(log.NsBackend, "backend opened", log.KV{
		"backend":   conf.ParsedBackend.Value,
		"available": backend.Available(),
	})

	switch conf.ParsedFormat {
	case format.JSON:
		err = format.WriteJSON(stdout, probe.Collect(conn))
	case format.YAML:
		err = format.WriteYAML(stdout, probe.Collect(conn))
	default:
		err = probe.Write(stdout, conn)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.DebugNs(log.NsProbe, "report written", log.KV{
		"format":         conf.ParsedFormat.Value,
		"version_number": conn.LibVersionNumber(),
		"thread_safe":    conn.ThreadSafe(),
	})

	return nil
}
