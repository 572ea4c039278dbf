package sqlitefeatures

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/nsqlite/sqliteprobe/internal/backend"
	"github.com/nsqlite/sqliteprobe/internal/features"
	"github.com/nsqlite/sqliteprobe/internal/log"
	"github.com/nsqlite/sqliteprobe/internal/probe"
	"github.com/nsqlite/sqliteprobe/internal/sqlitefeatures/config"
)

var ErrEmptyProbeOutput = errors.New("probe executable produced no output")

// detection is what a source yields. report is nil when the source only
// knows the detected features, as with saved cfg output.
type detection struct {
	lib    features.Library
	report *probe.Report
}

// detect picks the source named by the configuration: saved cfg output,
// a probe executable, a shared library loaded by path or an in-process
// backend.
func detect(ctx context.Context, conf config.Config, logger log.Logger) (detection, error) {
	switch {
	case conf.FromCfg != "":
		logger.DebugNs(log.NsFeatures, "reading cfg", log.KV{"path": conf.FromCfg})
		lib, err := readCfg(conf.FromCfg)
		if err != nil {
			return detection{}, err
		}
		return detection{lib: lib}, nil

	case conf.ProbeBin != "":
		logger.DebugNs(log.NsProbe, "running probe executable", log.KV{"path": conf.ProbeBin})
		report, err := runProbeBin(ctx, conf.ProbeBin, logger)
		if err != nil {
			return detection{}, err
		}
		return detection{lib: features.Detect(features.FromReport(report)), report: &report}, nil

	case conf.Library != "":
		conn, err := backend.OpenLibrary(conf.Library)
		if err != nil {
			return detection{}, err
		}
		defer conn.Close()
		logger.DebugNs(log.NsBackend, "library loaded", log.KV{"path": conf.Library})
		return detectConn(conn, logger), nil

	default:
		conn, err := backend.Open(ctx, conf.ParsedBackend)
		if err != nil {
			return detection{}, err
		}
		defer conn.Close()
		logger.DebugNs(log.NsBackend, "backend opened", log.KV{"backend": conf.ParsedBackend.Value})
		return detectConn(conn, logger), nil
	}
}

// detectConn evaluates the feature rules against a live library. Libraries
// that answer sqlite3_compileoption_used are asked flag by flag, the others
// through their collected compile options.
func detectConn(conn backend.Conn, logger log.Logger) detection {
	report := probe.Collect(conn)

	var prober features.Prober = features.FromReport(report)
	if lib, ok := conn.(features.OptionLibrary); ok {
		prober = features.FromOptionLibrary(lib)
	}

	if src, ok := conn.(interface{ SourceID() string }); ok {
		logger.DebugNs(log.NsBackend, "library source", log.KV{"source_id": src.SourceID()})
	}

	return detection{lib: features.Detect(prober), report: &report}
}

// readCfg parses cfg output saved to path, or read from stdin for "-".
func readCfg(path string) (features.Library, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return features.Library{}, fmt.Errorf("failed to open cfg: %w", err)
		}
		defer f.Close()
		r = f
	}

	lib, err := features.ParseCfg(r)
	if err != nil {
		return features.Library{}, fmt.Errorf("failed to parse cfg %s: %w", path, err)
	}
	return lib, nil
}

// runProbeBin executes path without arguments and parses its stdout.
// A missing or empty stream is a failure of the probe.
func runProbeBin(ctx context.Context, path string, logger log.Logger) (probe.Report, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return probe.Report{}, fmt.Errorf("probe executable failed: %w", err)
		}
		return probe.Report{}, fmt.Errorf("probe executable failed: %w: %s", err, msg)
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		logger.WarnNs(log.NsProbe, "probe executable wrote to stderr", log.KV{
			"path":   path,
			"stderr": msg,
		})
	}

	if stdout.Len() == 0 {
		return probe.Report{}, ErrEmptyProbeOutput
	}

	report, err := probe.Parse(&stdout)
	if err != nil {
		return probe.Report{}, fmt.Errorf("failed to parse probe output: %w", err)
	}
	return report, nil
}
