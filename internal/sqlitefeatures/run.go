// Package sqlitefeatures reports which SQLite features a library supports.
// It probes in-process, loads a shared library by path, parses the output
// of a probe executable or re-reads saved cfg output.
package sqlitefeatures

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsqlite/sqliteprobe/internal/log"
	"github.com/nsqlite/sqliteprobe/internal/sqlitefeatures/config"
)

// Run runs sqlitefeatures.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.NewDiscardLogger()
	if conf.Verbose {
		logger = log.NewLogger(os.Stderr, true).WithRunID()
	}

	return run(ctx, conf, os.Stdout, logger)
}

func run(ctx context.Context, conf config.Config, stdout io.Writer, logger log.Logger) error {
	d, err := detect(ctx, conf, logger)
	if err != nil {
		return err
	}

	logger.DebugNs(log.NsFeatures, "features detected", log.KV{
		"version":   d.lib.Version,
		"threading": d.lib.Threading,
		"supported": len(d.lib.Features),
	})

	if err := render(stdout, conf.ParsedFormat, d); err != nil {
		return fmt.Errorf("failed to write features: %w", err)
	}
	return nil
}
