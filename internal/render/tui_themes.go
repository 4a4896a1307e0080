package render

import (
	"github.com/charmbracelet/lipgloss"
)

// TUITheme defines the color scheme for the TUI interface
type TUITheme struct {
	Name        string
	Description string

	// Base colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Text colors
	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// Built-in TUI themes
var (
	// HarvestTheme is the default: leafy greens with a squash-orange accent
	HarvestTheme = TUITheme{
		Name:        "harvest",
		Description: "Harvest - Dark theme with green and orange accents",

		Background: lipgloss.Color("#1b1f17"),
		Surface:    lipgloss.Color("#262c20"),
		Border:     lipgloss.Color("#4a5a3a"),

		Primary:   lipgloss.Color("#8fc46a"),
		Secondary: lipgloss.Color("#c9e4a6"),
		Accent:    lipgloss.Color("#f0a04b"),
		Warning:   lipgloss.Color("#e9c46a"),
		Error:     lipgloss.Color("#e76f51"),

		Text:     lipgloss.Color("#eef2e6"),
		TextDim:  lipgloss.Color("#8a9a7b"),
		TextMute: lipgloss.Color("#4a5a3a"),
	}

	// MidnightTheme is a cool blue dark theme
	MidnightTheme = TUITheme{
		Name:        "midnight",
		Description: "Midnight - Dark theme with blue accents",

		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#24283b"),
		Border:     lipgloss.Color("#414868"),

		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#9ece6a"),
		Accent:    lipgloss.Color("#bb9af7"),
		Warning:   lipgloss.Color("#e0af68"),
		Error:     lipgloss.Color("#f7768e"),

		Text:     lipgloss.Color("#c0caf5"),
		TextDim:  lipgloss.Color("#565f89"),
		TextMute: lipgloss.Color("#3b4261"),
	}

	// CompostTheme is warm and earthy
	CompostTheme = TUITheme{
		Name:        "compost",
		Description: "Compost - Warm brown theme with muted tones",

		Background: lipgloss.Color("#2a211c"),
		Surface:    lipgloss.Color("#3a2e27"),
		Border:     lipgloss.Color("#6b5646"),

		Primary:   lipgloss.Color("#d4a373"),
		Secondary: lipgloss.Color("#a3b18a"),
		Accent:    lipgloss.Color("#e9c46a"),
		Warning:   lipgloss.Color("#f4a261"),
		Error:     lipgloss.Color("#d62828"),

		Text:     lipgloss.Color("#f5ebe0"),
		TextDim:  lipgloss.Color("#a68a73"),
		TextMute: lipgloss.Color("#6b5646"),
	}
)

var currentTUITheme = HarvestTheme

// GetTUITheme returns the currently active TUI theme
func GetTUITheme() TUITheme {
	return currentTUITheme
}

// SetTUITheme sets the active TUI theme by name
func SetTUITheme(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if ok {
		currentTUITheme = theme
		return true
	}
	return false
}

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, t := range AvailableTUIThemes() {
		if t.Name == name {
			return t, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes returns a list of all available TUI themes
func AvailableTUIThemes() []TUITheme {
	return []TUITheme{
		HarvestTheme,
		MidnightTheme,
		CompostTheme,
	}
}

// TUIThemeNames returns just the theme names for selection
func TUIThemeNames() []string {
	themes := AvailableTUIThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
