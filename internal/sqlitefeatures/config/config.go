package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/nsqlite/sqliteprobe/internal/backend"
	"github.com/nsqlite/sqliteprobe/internal/format"
	"github.com/nsqlite/sqliteprobe/internal/version"
)

// Config represents the configuration for sqlitefeatures.
type Config struct {
	Backend  string `arg:"--backend,env:SQLITEFEATURES_BACKEND" help:"SQLite build to probe in-process (system, mattn, modernc); defaults to the first one compiled in"`
	ProbeBin string `arg:"--probe-bin,env:SQLITEFEATURES_PROBE_BIN" help:"Run this probe executable and parse its output instead of probing in-process"`
	Library  string `arg:"--library,env:SQLITEFEATURES_LIBRARY" help:"Load this SQLite shared library and probe it (linux and darwin)"`
	FromCfg  string `arg:"--from-cfg,env:SQLITEFEATURES_FROM_CFG" help:"Read features from saved cfg output instead of probing, - for stdin"`
	Format   string `arg:"--format,env:SQLITEFEATURES_FORMAT" help:"Output format (table, cfg, json, yaml)" default:"table"`
	Verbose  bool   `arg:"--verbose,env:SQLITEFEATURES_VERBOSE" help:"Write debug logs to stderr" default:"false"`

	ParsedBackend backend.Name  `arg:"-"`
	ParsedFormat  format.Format `arg:"-"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.FeaturesVersion())
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
	sources := 0
	for _, s := range []string{cfg.Backend, cfg.ProbeBin, cfg.Library, cfg.FromCfg} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return errors.New("--backend, --probe-bin, --library and --from-cfg are mutually exclusive")
	}

	cfg.ParsedBackend = backend.Default()
	if cfg.Backend != "" {
		name, err := backend.ParseName(cfg.Backend)
		if err != nil {
			return err
		}
		cfg.ParsedBackend = name
	}

	f, err := format.Parse(cfg.Format, format.Table, format.Cfg, format.JSON, format.YAML)
	if err != nil {
		return err
	}
	cfg.ParsedFormat = f

	return nil
}
