package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconWarning = "!"
	iconArrow   = "→"
	iconNoColor = "··"
)

// =============================================================================
// Status Output
// =============================================================================

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

var styleKey = lipgloss.NewStyle().Foreground(colorGray)

// keyWidth fits the longest documented property key.
const keyWidth = 20

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(fmt.Sprintf("%-*s", keyWidth, key))+" "+StyleValue.Render(value))
}

// printColor prints a labeled color with a swatch.
func printColor(w io.Writer, key, color string) {
	fmt.Fprintln(w, styleKey.Render(fmt.Sprintf("%-*s", keyWidth, key))+" "+swatch(color)+" "+StyleValue.Render(color))
}

// =============================================================================
// Swatches
// =============================================================================

// swatch renders a two-cell block in color. Only hex colors can be shown;
// anything else (rgba() strings, empty values) renders as a dim placeholder.
func swatch(color string) string {
	if !strings.HasPrefix(color, "#") {
		return StyleDim.Render(iconNoColor)
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}

// swatches renders a row of swatches.
func swatches(colors ...string) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = swatch(c)
	}
	return strings.Join(parts, " ")
}
