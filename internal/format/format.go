// Package format holds the output formats shared by the probe tools.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/orsinium-labs/enum"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format enum.Member[string]

var (
	Text  = Format{Value: "text"}
	Table = Format{Value: "table"}
	Cfg   = Format{Value: "cfg"}
	JSON  = Format{Value: "json"}
	YAML  = Format{Value: "yaml"}

	Formats = enum.New(Text, Table, Cfg, JSON, YAML)
)

// Parse parses name and checks it is one of allowed.
func Parse(name string, allowed ...Format) (Format, error) {
	f := Formats.Parse(name)
	if f != nil {
		for _, a := range allowed {
			if *f == a {
				return *f, nil
			}
		}
	}

	valid := make([]string, len(allowed))
	for i, a := range allowed {
		valid[i] = a.Value
	}
	return Format{}, fmt.Errorf(
		"invalid format %q, valid values are: %s",
		name, strings.Join(valid, ", "),
	)
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// WriteYAML writes v as a YAML document.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return nil
}

func (f Format) String() string {
	return f.Value
}
