package features

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	majorMagnitude = 1_000_000
	minorMagnitude = 1_000
)

var ErrInvalidVersion = errors.New("invalid SQLite version")

// Version is a SQLite release version.
//
// https://www.sqlite.org/c3ref/c_source_id.html
type Version struct {
	Major int
	Minor int
	Patch int
}

// NewVersion returns the version major.minor.patch.
func NewVersion(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Release returns the version major.minor.0.
func Release(major, minor int) Version {
	return NewVersion(major, minor, 0)
}

// VersionFromNumber decodes a SQLITE_VERSION_NUMBER style integer.
//
// Example:
//
//	3050004 -> 3.50.4
func VersionFromNumber(num int) Version {
	major, rest := num/majorMagnitude, num%majorMagnitude
	minor, patch := rest/minorMagnitude, rest%minorMagnitude
	return NewVersion(major, minor, patch)
}

// ParseVersion parses exactly three dot separated integers.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		nums[i] = n
	}

	return NewVersion(nums[0], nums[1], nums[2]), nil
}

// Number encodes v as a SQLITE_VERSION_NUMBER style integer.
func (v Version) Number() int {
	return v.Major*majorMagnitude + v.Minor*minorMagnitude + v.Patch
}

// Compare returns -1, 0 or 1 when v is older than, equal to or newer
// than other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Number() < other.Number():
		return -1
	case v.Number() > other.Number():
		return 1
	default:
		return 0
	}
}

// Less reports whether v is older than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
