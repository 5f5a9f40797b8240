package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/textselect/internal/config"
)

// ApplyTheme overrides style tokens from the theme configuration. Must run
// before the first View call; lipgloss styles capture colors at build time.
func ApplyTheme(theme config.ThemeConfig) {
	switch theme.Mode {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	if theme.SelectionBackground != "" {
		c := lipgloss.AdaptiveColor{Light: theme.SelectionBackground, Dark: theme.SelectionBackground}
		SelectionBackgroundColor = c
		SelectionStyle = SelectionStyle.Background(c)
	}
	if theme.SelectionForeground != "" {
		c := lipgloss.AdaptiveColor{Light: theme.SelectionForeground, Dark: theme.SelectionForeground}
		SelectionForegroundColor = c
		SelectionStyle = SelectionStyle.Foreground(c)
	}
}
