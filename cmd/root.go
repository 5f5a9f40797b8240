package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/textselect/internal/app"
	"github.com/zjrosen/textselect/internal/config"
	"github.com/zjrosen/textselect/internal/document"
	"github.com/zjrosen/textselect/internal/log"
	"github.com/zjrosen/textselect/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "textselect [file]",
	Short: "A terminal viewer with mouse text selection",
	Long: `A terminal viewer for plain text with full mouse text selection:
click and drag, double-click for words, triple-click for lines, and
Ctrl+C to copy. Reads a file argument or standard input.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/textselect/config.yaml)")
	rootCmd.Flags().BoolP("wrap", "w", false,
		"wrap long lines to the terminal width")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"disable reloading when the file changes on disk")
	rootCmd.Flags().String("clipboard", "",
		"clipboard backend: system or osc52")
	rootCmd.Flags().Bool("debug", false,
		"write a debug log to textselect.log")

	// Bind flags to viper
	_ = viper.BindPFlag("word_wrap", rootCmd.Flags().Lookup("wrap"))
	_ = viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("word_wrap", defaults.WordWrap)
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("clipboard", defaults.Clipboard)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.show_scrollbar", defaults.UI.ShowScrollbar)
	viper.SetDefault("ui.paragraph_spacing", defaults.UI.ParagraphSpacing)
	viper.SetDefault("theme.mode", defaults.Theme.Mode)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .textselect.yaml (current directory)
		// 2. ~/.config/textselect/config.yaml (user config)
		if _, err := os.Stat(".textselect.yaml"); err == nil {
			viper.SetConfigFile(".textselect.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "textselect"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at the user path
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "textselect", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
				// If write fails, just continue with defaults (no config file)
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cleanup, err := log.InitWithTeaLog("textselect.log", "textselect")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
	}

	// Handle --no-auto-reload flag (negated logic)
	if noAutoReload, _ := cmd.Flags().GetBool("no-auto-reload"); noAutoReload {
		cfg.AutoReload = false
	}

	doc, err := loadDocument(args)
	if err != nil {
		return err
	}

	styles.ApplyTheme(cfg.Theme)
	zone.NewGlobal()

	model := app.New(doc, cfg)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	finalModel, err := p.Run()

	// Clean up watcher resources
	if m, ok := finalModel.(app.Model); ok {
		if closeErr := m.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// loadDocument reads the file argument, or stdin when piped.
func loadDocument(args []string) (*document.Document, error) {
	if len(args) == 1 {
		doc, err := document.Load(args[0])
		if err != nil {
			return nil, fmt.Errorf("loading document: %w", err)
		}
		return doc, nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return nil, fmt.Errorf("no file given and nothing piped on stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return document.FromString("(stdin)", string(data)), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
