package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Colors adapted to light and dark terminals
var (
	DirectoryColor = lipgloss.AdaptiveColor{
		Light: "#0550ae",
		Dark:  "#79c0ff",
	}

	URLColor = lipgloss.AdaptiveColor{
		Light: "#6e7781",
		Dark:  "#8b949e",
	}
)

// Styles for tree rendering
var (
	DirectoryStyle = lipgloss.NewStyle().
			Foreground(DirectoryColor).
			Bold(true)

	URLStyle = lipgloss.NewStyle().
			Foreground(URLColor).
			Faint(true)
)

// SetColorMode applies the configured color mode ("auto", "always" or
// "never") to both style engines
func SetColorMode(mode string) {
	switch mode {
	case "always":
		pterm.EnableColor()
	case "never":
		disableColor()
	default:
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			disableColor()
		}
	}
}

func disableColor() {
	pterm.DisableColor()
	lipgloss.SetColorProfile(termenv.Ascii)
}
