// Package app contains the root application model.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/textselect/internal/clipboard"
	"github.com/zjrosen/textselect/internal/config"
	"github.com/zjrosen/textselect/internal/document"
	"github.com/zjrosen/textselect/internal/keys"
	"github.com/zjrosen/textselect/internal/log"
	"github.com/zjrosen/textselect/internal/textselect"
	"github.com/zjrosen/textselect/internal/ui/styles"
	"github.com/zjrosen/textselect/internal/ui/viewer"
	"github.com/zjrosen/textselect/internal/watcher"
)

// Zone IDs for clickable status bar segments.
const (
	zoneWrapToggle = "statusbar.wrap"
)

// Model is the root application state.
type Model struct {
	viewer viewer.Model
	keyMap keys.KeyMap
	help   help.Model
	cfg    config.Config

	width  int
	height int

	showStatusBar bool
	showHelp      bool

	// File watcher for auto-reload
	watcherHandle *watcher.Watcher
	watcherCh     <-chan struct{}
}

// New creates the application model for the given document.
func New(doc *document.Document, cfg config.Config) Model {
	clip := clipboard.ForBackend(cfg.Clipboard)

	var (
		watcherHandle *watcher.Watcher
		watcherCh     <-chan struct{}
	)
	if cfg.AutoReload && doc.Path() != "" {
		w, err := watcher.New(watcher.DefaultConfig(doc.Path()))
		if err == nil {
			if ch, startErr := w.Start(); startErr == nil {
				watcherHandle = w
				watcherCh = ch
				log.Debug(log.CatWatcher, "watching document", "path", doc.Path())
			} else {
				_ = w.Stop()
			}
		}
		// The app works fine without auto-reload; watcher errors are not fatal.
	}

	return Model{
		viewer:        viewer.New(doc, cfg, clip),
		keyMap:        keys.DefaultKeyMap(),
		help:          help.New(),
		cfg:           cfg,
		showStatusBar: cfg.UI.ShowStatusBar,
		watcherHandle: watcherHandle,
		watcherCh:     watcherCh,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.watcherCh != nil {
		return m.listenForChanges()
	}
	return nil
}

// listenForChanges waits for the next watcher notification.
func (m Model) listenForChanges() tea.Cmd {
	ch := m.watcherCh
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return viewer.ReloadMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeViewer()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keyMap.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			m.resizeViewer()
			return m, nil

		case key.Matches(msg, m.keyMap.ToggleStatusBar):
			m.showStatusBar = !m.showStatusBar
			m.resizeViewer()
			return m, nil
		}

		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if z := zone.Get(zoneWrapToggle); z != nil && z.InBounds(msg) {
				m.viewer.ToggleWordWrap()
				return m, nil
			}
		}

		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Update(msg)
		return m, cmd

	case viewer.ReloadMsg:
		log.Info(log.CatWatcher, "document changed, reloading")
		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Update(msg)

		if m.watcherCh != nil {
			return m, tea.Batch(cmd, m.listenForChanges())
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewer, cmd = m.viewer.Update(msg)
	return m, cmd
}

// resizeViewer gives the viewer the rows left over after chrome.
func (m *Model) resizeViewer() {
	height := m.height - m.chromeRows()
	if height < 0 {
		height = 0
	}
	m.viewer.SetSize(m.width, height)
}

// chromeRows counts the rows taken by the status bar and help.
func (m Model) chromeRows() int {
	rows := 0
	if m.showStatusBar {
		rows++
	}
	if m.showHelp {
		rows += lipgloss.Height(m.help.View(m.keyMap))
	}
	return rows
}

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{m.viewer.View()}

	if m.showHelp {
		sections = append(sections, m.help.View(m.keyMap))
	}
	if m.showStatusBar {
		sections = append(sections, m.statusBar())
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// statusBar renders the bottom bar: document name, status message, and a
// clickable wrap indicator.
func (m Model) statusBar() string {
	doc := m.viewer.Document()

	name := styles.StatusBarNameStyle.Render(doc.Name())

	status, isErr := m.viewer.Status()
	statusStyle := styles.StatusSuccessStyle
	if isErr {
		statusStyle = styles.StatusErrorStyle
	}
	msg := statusStyle.Render(status)

	span := ""
	if m.viewer.HasSelection() {
		span = styles.StatusBarStyle.Render(
			fmt.Sprintf("%d selected", textselect.GraphemeCount(m.viewer.SelectedText())))
	}

	wrapLabel := "wrap: off"
	if m.viewer.WordWrap() {
		wrapLabel = "wrap: on"
	}
	wrapSeg := zone.Mark(zoneWrapToggle, styles.StatusBarStyle.Render(wrapLabel))

	lines := styles.StatusBarStyle.Render(fmt.Sprintf("%d lines", doc.LineCount()))

	left := lipgloss.JoinHorizontal(lipgloss.Top, name, msg)
	right := lipgloss.JoinHorizontal(lipgloss.Top, span, wrapSeg, lines)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	filler := styles.StatusBarStyle.Render(padSpaces(gap))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, filler, right)
}

func padSpaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}
