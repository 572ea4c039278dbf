package sqliteprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/nsqlite/sqliteprobe/internal/backend"
	"github.com/nsqlite/sqliteprobe/internal/format"
	"github.com/nsqlite/sqliteprobe/internal/log"
	"github.com/nsqlite/sqliteprobe/internal/probe"
	"github.com/nsqlite/sqliteprobe/internal/sqliteprobe/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runProbe(t *testing.T, f format.Format) []byte {
	t.Helper()

	conf := config.Config{
		ParsedBackend: backend.NameModernc,
		ParsedFormat:  f,
	}

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), conf, &stdout, log.NewDiscardLogger()))
	return stdout.Bytes()
}

func TestRun(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		out := runProbe(t, format.Text)

		report, err := probe.Parse(bytes.NewReader(out))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, report.VersionNumber, 3000000)
		assert.NotEmpty(t, report.Options)
		assert.Equal(t, 1, bytes.Count(out, []byte("\n\n")), "exactly one blank line")
	})

	t.Run("TextIsIdempotent", func(t *testing.T) {
		assert.Equal(t, runProbe(t, format.Text), runProbe(t, format.Text))
	})

	t.Run("JSON", func(t *testing.T) {
		var fromJSON probe.Report
		require.NoError(t, json.Unmarshal(runProbe(t, format.JSON), &fromJSON))

		fromText, err := probe.Parse(bytes.NewReader(runProbe(t, format.Text)))
		require.NoError(t, err)
		assert.Equal(t, fromText, fromJSON)
	})

	t.Run("YAML", func(t *testing.T) {
		var fromYAML probe.Report
		require.NoError(t, yaml.Unmarshal(runProbe(t, format.YAML), &fromYAML))

		fromText, err := probe.Parse(bytes.NewReader(runProbe(t, format.Text)))
		require.NoError(t, err)
		assert.Equal(t, fromText, fromYAML)
	})

	t.Run("VerboseLogsStayOffStdout", func(t *testing.T) {
		conf := config.Config{
			ParsedBackend: backend.NameModernc,
			ParsedFormat:  format.Text,
		}

		var stdout, stderr bytes.Buffer
		logger := log.NewLogger(&stderr, true).WithRunID()
		require.NoError(t, run(context.Background(), conf, &stdout, logger))

		assert.Contains(t, stderr.String(), `"msg":"report written"`)
		assert.Contains(t, stderr.String(), `"run_id"`)
		assert.NotContains(t, stdout.String(), "run_id")
	})
}

func TestRunIgnoresCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, name := range backend.Available() {
		t.Run(name.Value, func(t *testing.T) {
			conf := config.Config{ParsedBackend: name, ParsedFormat: format.Text}

			var stdout bytes.Buffer
			require.NoError(t, run(ctx, conf, &stdout, log.NewDiscardLogger()))

			report, err := probe.Parse(&stdout)
			require.NoError(t, err)
			assert.NotEmpty(t, report.Options)
		})
	}
}

func TestRunUnavailableBackend(t *testing.T) {
	for _, name := range backend.Names.Members() {
		if name == backend.NameModernc {
			continue
		}
		available := false
		for _, a := range backend.Available() {
			available = available || a == name
		}
		if available {
			continue
		}

		conf := config.Config{ParsedBackend: name, ParsedFormat: format.Text}
		var stdout bytes.Buffer
		err := run(context.Background(), conf, &stdout, log.NewDiscardLogger())
		assert.ErrorIs(t, err, backend.ErrUnavailable)
		assert.Empty(t, stdout.Bytes())
	}
}
