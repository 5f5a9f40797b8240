// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#CCCCCC"} // Document text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BBBBBB"} // File name, line counts
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text

	// Selection highlight
	SelectionBackgroundColor = lipgloss.AdaptiveColor{Light: "#ADD6FF", Dark: "#264F78"}
	SelectionForegroundColor = lipgloss.AdaptiveColor{Light: "#1E1E1E", Dark: "#FFFFFF"}

	// Status bar
	StatusBarBgColor   = lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#2D3436"}
	StatusBarTextColor = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#BBBBBB"}

	// Status feedback
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Copy confirmations
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Clipboard/reload failures

	// Scrollbar
	ScrollbarTrackColor = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#3A3A3A"}
	ScrollbarThumbColor = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"}

	// Styles
	TextStyle = lipgloss.NewStyle().
			Foreground(TextPrimaryColor)

	SelectionStyle = lipgloss.NewStyle().
			Foreground(SelectionForegroundColor).
			Background(SelectionBackgroundColor)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(StatusBarTextColor).
			Background(StatusBarBgColor).
			Padding(0, 1)

	StatusBarNameStyle = lipgloss.NewStyle().
				Foreground(StatusBarTextColor).
				Background(StatusBarBgColor).
				Bold(true).
				Padding(0, 1)

	StatusSuccessStyle = lipgloss.NewStyle().
				Foreground(StatusSuccessColor).
				Background(StatusBarBgColor)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(StatusErrorColor).
				Background(StatusBarBgColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)
)
