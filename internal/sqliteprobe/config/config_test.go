package config

import (
	"testing"

	"github.com/nsqlite/sqliteprobe/internal/backend"
	"github.com/nsqlite/sqliteprobe/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantBackend backend.Name
		wantFormat  format.Format
		wantErr     bool
	}{
		{
			name:        "defaults",
			cfg:         Config{Format: "text"},
			wantBackend: backend.Default(),
			wantFormat:  format.Text,
		},
		{
			name:        "explicit backend and json",
			cfg:         Config{Backend: "modernc", Format: "json"},
			wantBackend: backend.NameModernc,
			wantFormat:  format.JSON,
		},
		{
			name:        "yaml",
			cfg:         Config{Backend: "mattn", Format: "yaml"},
			wantBackend: backend.NameMattn,
			wantFormat:  format.YAML,
		},
		{
			name:    "unknown backend",
			cfg:     Config{Backend: "postgres", Format: "text"},
			wantErr: true,
		},
		{
			name:    "table is not a probe format",
			cfg:     Config{Format: "table"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "valid values are")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBackend, cfg.ParsedBackend)
			assert.Equal(t, tt.wantFormat, cfg.ParsedFormat)
		})
	}
}

func TestMustParseNoArgs(t *testing.T) {
	cfg := MustParse([]string{"sqliteprobe"})
	assert.Equal(t, backend.Default(), cfg.ParsedBackend)
	assert.Equal(t, format.Text, cfg.ParsedFormat)
	assert.False(t, cfg.Verbose)
}
