package styled

import "github.com/fatih/color"

// Dimmed is the color for secondary output: unsupported features and the
// summary line under a report.
func Dimmed() *color.Color {
	return color.RGB(128, 128, 128)
}

// Highlight is the color for supported features.
func Highlight() *color.Color {
	return color.New(color.FgGreen)
}
