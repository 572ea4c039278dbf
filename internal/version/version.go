// Package version holds the release version of the probe tools.
package version

import "fmt"

const (
	Version = "v0.1.0"

	colorReset    = "\033[0m"
	colorCyanBold = "\033[36;1m"
)

// bannerTpl returns the colored one-line banner shown by --version.
func bannerTpl() string {
	return colorCyanBold + "%s " + Version + colorReset +
		"\nFor more information visit https://github.com/nsqlite/sqliteprobe"
}

// ProbeVersion returns the version banner of sqliteprobe.
func ProbeVersion() string {
	return fmt.Sprintf(bannerTpl(), "sqliteprobe")
}

// FeaturesVersion returns the version banner of sqlitefeatures.
func FeaturesVersion() string {
	return fmt.Sprintf(bannerTpl(), "sqlitefeatures")
}
