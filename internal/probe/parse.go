package probe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrMissingVersion   = errors.New("missing version line")
	ErrInvalidVersion   = errors.New("invalid version number")
	ErrMissingThreading = errors.New("missing threading line")
	ErrInvalidThreading = errors.New("invalid threading mode")
)

// Parse reads a report in the layout produced by Write.
//
// The two header lines are required. The separator line is skipped without
// being checked and blank lines among the options are ignored.
func Parse(r io.Reader) (Report, error) {
	scanner := bufio.NewScanner(r)

	version, err := parseHeaderLine(scanner, 1, ErrMissingVersion, ErrInvalidVersion)
	if err != nil {
		return Report{}, err
	}

	threadSafety, err := parseHeaderLine(scanner, 2, ErrMissingThreading, ErrInvalidThreading)
	if err != nil {
		return Report{}, err
	}

	// The third line is dropped whatever it holds, so output without the
	// blank separator loses its first option.
	scanner.Scan()

	options := []string{}
	for scanner.Scan() {
		opt := strings.TrimSpace(scanner.Text())
		if opt == "" {
			continue
		}
		options = append(options, opt)
	}
	if err := scanner.Err(); err != nil {
		return Report{}, fmt.Errorf("failed to read compile options: %w", err)
	}

	return Report{
		VersionNumber: version,
		ThreadSafety:  threadSafety,
		Options:       options,
	}, nil
}

func parseHeaderLine(scanner *bufio.Scanner, lineNo int, errMissing, errInvalid error) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("line %d: %w: %w", lineNo, errMissing, err)
		}
		return 0, fmt.Errorf("line %d: %w", lineNo, errMissing)
	}

	line := strings.TrimSpace(scanner.Text())
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w: %q", lineNo, errInvalid, line)
	}
	return n, nil
}
