// Package config provides configuration types and defaults for textselect.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all configuration options for textselect.
type Config struct {
	// WordWrap wraps long lines to the viewport width instead of scrolling
	// horizontally.
	WordWrap bool `mapstructure:"word_wrap"`

	// AutoReload reloads the document when the backing file changes.
	AutoReload bool `mapstructure:"auto_reload"`

	// Clipboard selects the copy backend: "system" or "osc52".
	Clipboard string `mapstructure:"clipboard"`

	UI    UIConfig    `mapstructure:"ui"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar    bool `mapstructure:"show_status_bar"`
	ShowScrollbar    bool `mapstructure:"show_scrollbar"`
	ParagraphSpacing int  `mapstructure:"paragraph_spacing"` // Extra rows between logical lines
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// SelectionBackground overrides the selection highlight color (hex).
	SelectionBackground string `mapstructure:"selection_background"`

	// SelectionForeground overrides the selected text color (hex).
	SelectionForeground string `mapstructure:"selection_foreground"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		WordWrap:   false,
		AutoReload: true,
		Clipboard:  "system",
		UI: UIConfig{
			ShowStatusBar:    true,
			ShowScrollbar:    true,
			ParagraphSpacing: 0,
		},
		Theme: ThemeConfig{},
	}
}

// Validate checks the configuration for values that cannot be applied.
func Validate(c Config) error {
	switch c.Clipboard {
	case "", "system", "osc52", "mock":
	default:
		return fmt.Errorf("unknown clipboard backend %q (want system or osc52)", c.Clipboard)
	}

	switch c.Theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("unknown theme mode %q (want light or dark)", c.Theme.Mode)
	}

	if c.UI.ParagraphSpacing < 0 {
		return fmt.Errorf("paragraph_spacing must be >= 0, got %d", c.UI.ParagraphSpacing)
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# textselect configuration

# Wrap long lines to the viewport width
# word_wrap: false

# Reload the document when the file changes on disk
# auto_reload: true

# Clipboard backend: "system" (pbcopy/xclip/wl-copy) or "osc52" (escape
# sequence, works over SSH)
# clipboard: system

ui:
  show_status_bar: true
  show_scrollbar: true
  # Extra blank rows between lines
  # paragraph_spacing: 0

theme:
  # Force light or dark mode; empty uses terminal detection
  # mode: ""
  # selection_background: "#264F78"
  # selection_foreground: ""
`
}

// WriteDefaultConfig writes the default config template to path, creating
// parent directories as needed. Fails if the file already exists.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(DefaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
