package styled

import (
	"testing"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	assert.Equal(t, "yes", Check(true))
	assert.Equal(t, "no", Check(false))
}

func TestNewTableWriter(t *testing.T) {
	tw := NewTableWriter()
	tw.AppendHeader(table.Row{"Feature", "Supported"})
	tw.AppendRow(table.Row{"fts5", "yes"})

	out := tw.Render()
	assert.Contains(t, out, "Feature")
	assert.Contains(t, out, "fts5")
}
