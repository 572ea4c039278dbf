package features

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line prefixes of the cfg layout, read by build scripts:
//
//	sqlite_has_<feature key>
//	...
//	sqlite_version=<major.minor.patch>
//	sqlite_threading=<threading mode>
const (
	cfgFeaturePrefix   = "sqlite_has_"
	cfgVersionPrefix   = "sqlite_version="
	cfgThreadingPrefix = "sqlite_threading="
)

var (
	ErrCfgMissingVersion   = errors.New("missing sqlite_version")
	ErrCfgInvalidVersion   = errors.New("invalid sqlite_version")
	ErrCfgMissingThreading = errors.New("missing sqlite_threading")
	ErrCfgInvalidThreading = errors.New("invalid sqlite_threading")
	ErrCfgInvalidFeature   = errors.New("invalid feature key")
	ErrCfgUnknownLine      = errors.New("unrecognized cfg line")
)

// WriteCfg writes one line per supported feature followed by the version
// and the threading mode.
func (l Library) WriteCfg(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, key := range l.Features {
		fmt.Fprintf(bw, "%s%s\n", cfgFeaturePrefix, key.Value)
	}
	fmt.Fprintf(bw, "%s%s\n", cfgVersionPrefix, l.Version)
	fmt.Fprintf(bw, "%s%s\n", cfgThreadingPrefix, l.Threading)
	return bw.Flush()
}

// ParseCfg reads back the output of WriteCfg. Lines may come in any order,
// blank lines are ignored and features are returned in FeatureKeys order.
func ParseCfg(r io.Reader) (Library, error) {
	var (
		version      Version
		threading    Threading
		hasVersion   bool
		hasThreading bool
		supported    = map[FeatureKey]struct{}{}
	)

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, cfgFeaturePrefix):
			key, err := ParseFeatureKey(strings.TrimPrefix(line, cfgFeaturePrefix))
			if err != nil {
				return Library{}, fmt.Errorf("line %d: %w: %q", lineNo, ErrCfgInvalidFeature, line)
			}
			supported[key] = struct{}{}

		case strings.HasPrefix(line, cfgVersionPrefix):
			v, err := ParseVersion(strings.TrimPrefix(line, cfgVersionPrefix))
			if err != nil {
				return Library{}, fmt.Errorf("line %d: %w: %w", lineNo, ErrCfgInvalidVersion, err)
			}
			version, hasVersion = v, true

		case strings.HasPrefix(line, cfgThreadingPrefix):
			t, err := ParseThreading(strings.TrimPrefix(line, cfgThreadingPrefix))
			if err != nil {
				return Library{}, fmt.Errorf("line %d: %w: %w", lineNo, ErrCfgInvalidThreading, err)
			}
			threading, hasThreading = t, true

		default:
			return Library{}, fmt.Errorf("line %d: %w: %q", lineNo, ErrCfgUnknownLine, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Library{}, fmt.Errorf("failed to read cfg: %w", err)
	}

	if !hasVersion {
		return Library{}, ErrCfgMissingVersion
	}
	if !hasThreading {
		return Library{}, ErrCfgMissingThreading
	}

	keys := []FeatureKey{}
	for _, key := range FeatureKeys.Members() {
		if _, ok := supported[key]; ok {
			keys = append(keys, key)
		}
	}

	return Library{
		Version:   version,
		Threading: threading,
		Features:  keys,
	}, nil
}
