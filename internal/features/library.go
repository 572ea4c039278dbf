package features

import (
	"slices"

	"github.com/nsqlite/sqliteprobe/internal/probe"
)

// Probed is a Prober backed by a probe report. Compile options that no
// feature rule depends on are dropped.
type Probed struct {
	version   Version
	threading Threading
	flags     map[Flag]struct{}
}

// FromReport builds a Probed from a collected or parsed probe report.
func FromReport(report probe.Report) *Probed {
	flags := make(map[Flag]struct{})
	for _, opt := range report.Options {
		if flag, ok := FlagOfOption(opt); ok {
			flags[flag] = struct{}{}
		}
	}

	return &Probed{
		version:   VersionFromNumber(report.VersionNumber),
		threading: ThreadingFromCode(report.ThreadSafety),
		flags:     flags,
	}
}

func (p *Probed) Version() Version {
	return p.version
}

func (p *Probed) Threading() Threading {
	return p.threading
}

func (p *Probed) IsSet(flag Flag) bool {
	_, ok := p.flags[flag]
	return ok
}

// Library is a fully feature-probed SQLite library.
type Library struct {
	Version   Version      `json:"version" yaml:"version"`
	Threading Threading    `json:"threading" yaml:"threading"`
	Features  []FeatureKey `json:"features" yaml:"features"`
}

// Detect evaluates every feature rule against p.
func Detect(p Prober) Library {
	return Library{
		Version:   p.Version(),
		Threading: p.Threading(),
		Features:  Supported(p),
	}
}

// IsSupported returns true if key is among the library's features.
func (l Library) IsSupported(key FeatureKey) bool {
	return slices.Contains(l.Features, key)
}
