package sqlitefeatures

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/sqliteprobe/internal/features"
	"github.com/nsqlite/sqliteprobe/internal/format"
	"github.com/nsqlite/sqliteprobe/internal/styled"
)

// summary is the structured form of the json and yaml outputs. Compile
// options are left out when the source did not report them.
type summary struct {
	Version        features.Version      `json:"version" yaml:"version"`
	VersionNumber  int                   `json:"version_number" yaml:"version_number"`
	Threading      features.Threading    `json:"threading" yaml:"threading"`
	Features       []features.FeatureKey `json:"features" yaml:"features"`
	CompileOptions []string              `json:"compile_options,omitempty" yaml:"compile_options,omitempty"`
}

func render(w io.Writer, f format.Format, d detection) error {
	switch f {
	case format.Cfg:
		return d.lib.WriteCfg(w)
	case format.JSON:
		return format.WriteJSON(w, newSummary(d))
	case format.YAML:
		return format.WriteYAML(w, newSummary(d))
	default:
		return renderTable(w, d)
	}
}

func newSummary(d detection) summary {
	s := summary{
		Version:       d.lib.Version,
		VersionNumber: d.lib.Version.Number(),
		Threading:     d.lib.Threading,
		Features:      d.lib.Features,
	}
	if d.report != nil {
		s.CompileOptions = d.report.Options
	}
	return s
}

func renderTable(w io.Writer, d detection) error {
	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Feature", "Supported"})

	for _, key := range features.FeatureKeys.Members() {
		tw.AppendRow(table.Row{key.Value, styled.Check(d.lib.IsSupported(key))})
	}

	tw.AppendFooter(table.Row{
		"Total",
		fmt.Sprintf("%d/%d", len(d.lib.Features), features.FeatureKeys.Len()),
	})

	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return err
	}

	note := fmt.Sprintf("SQLite %s (%d), %s", d.lib.Version, d.lib.Version.Number(), d.lib.Threading)
	if d.report != nil {
		note += fmt.Sprintf(", %d compile options", len(d.report.Options))
	}
	_, err := styled.Dimmed().Fprintln(w, note)
	return err
}
