package config

import (
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/nsqlite/sqliteprobe/internal/backend"
	"github.com/nsqlite/sqliteprobe/internal/format"
	"github.com/nsqlite/sqliteprobe/internal/version"
)

// Config represents the configuration for sqliteprobe.
//
// Every field is optional and the zero-argument invocation prints the
// plain text report of the default backend. No environment variables are
// read so that a build script always gets the same output.
type Config struct {
	Backend string `arg:"--backend" help:"SQLite build to probe (system, mattn, modernc); defaults to the first one compiled in"`
	Format  string `arg:"--format" help:"Output format (text, json, yaml)" default:"text"`
	Verbose bool   `arg:"--verbose" help:"Write debug logs to stderr" default:"false"`

	ParsedBackend backend.Name  `arg:"-"`
	ParsedFormat  format.Format `arg:"-"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.ProbeVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	return cfg
}

// validate checks the raw flags and fills the parsed fields.
func (cfg *Config) validate() error {
	cfg.ParsedBackend = backend.Default()
	if cfg.Backend != "" {
		name, err := backend.ParseName(cfg.Backend)
		if err != nil {
			return err
		}
		cfg.ParsedBackend = name
	}

	f, err := format.Parse(cfg.Format, format.Text, format.JSON, format.YAML)
	if err != nil {
		return err
	}
	cfg.ParsedFormat = f

	return nil
}
