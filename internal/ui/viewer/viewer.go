// Package viewer renders a read-only document with mouse-driven text
// selection. It is the terminal host for the selection engine: it snapshots
// input per message, feeds the engine, and turns the engine's highlight
// commands into styled output.
package viewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/zjrosen/textselect/internal/clipboard"
	"github.com/zjrosen/textselect/internal/config"
	"github.com/zjrosen/textselect/internal/document"
	"github.com/zjrosen/textselect/internal/keys"
	"github.com/zjrosen/textselect/internal/log"
	"github.com/zjrosen/textselect/internal/textselect"
	"github.com/zjrosen/textselect/internal/ui/styles"
)

// autoscrollInterval is how often the drag loop re-runs the engine while the
// pointer is outside the viewport.
const autoscrollInterval = 50 * time.Millisecond

// maxFrameDelta caps the measured frame time so a long pause between events
// does not produce one huge scroll jump.
const maxFrameDelta = 250 * time.Millisecond

// AutoscrollTickMsg drives selection autoscroll while a drag is outside the
// viewport.
type AutoscrollTickMsg time.Time

// ReloadMsg asks the viewer to re-read its document from disk.
type ReloadMsg struct{}

// Model is the document viewer component.
type Model struct {
	doc    *document.Document
	engine *textselect.TextSelect
	clip   clipboard.Clipboard
	keyMap keys.KeyMap
	cfg    config.Config

	width  int
	height int

	scrollX float64
	scrollY float64

	// Input snapshot for the current engine pass.
	mouseX, mouseY int
	mouseDown      bool
	clicks         int
	shift          bool
	copyReq        bool
	selectAllReq   bool

	streak        clickStreak
	lastEngineRun time.Time
	frameDelta    time.Duration
	scrollbarDrag bool
	autoTicking   bool

	// Highlight rects from the last engine pass, viewport-relative.
	rects []textselect.Rect

	statusMsg string
	statusErr bool
}

// New creates a viewer for the given document.
func New(doc *document.Document, cfg config.Config, clip clipboard.Clipboard) Model {
	m := Model{
		doc:    doc,
		engine: textselect.New(doc),
		clip:   clip,
		keyMap: keys.DefaultKeyMap(),
		cfg:    cfg,
	}
	if cfg.WordWrap {
		m.engine.SetWordWrap(true)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampScroll()
}

// HasSelection reports whether the viewer holds a complete selection.
func (m Model) HasSelection() bool {
	return m.engine.HasSelection()
}

// SelectedText returns the current selection's text.
func (m Model) SelectedText() string {
	return m.engine.SelectedText()
}

// Status returns the most recent status message and whether it is an error.
func (m Model) Status() (string, bool) {
	return m.statusMsg, m.statusErr
}

// Document returns the viewed document.
func (m Model) Document() *document.Document {
	return m.doc
}

// WordWrap reports whether word wrap is active.
func (m Model) WordWrap() bool {
	return m.engine.WordWrap()
}

// ToggleWordWrap flips word wrap and resets horizontal scroll, which has no
// meaning for wrapped content.
func (m *Model) ToggleWordWrap() {
	m.engine.SetWordWrap(!m.engine.WordWrap())
	m.SetScroll(0, m.scrollY)
	log.Debug(log.CatWrap, "word wrap toggled", "enabled", m.engine.WordWrap())
	m.runEngine()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.runEngine()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case AutoscrollTickMsg:
		if m.mouseDown && !m.Hovered() {
			m.runEngine()
			return m, m.autoscrollTick()
		}
		m.autoTicking = false
		return m, nil

	case ReloadMsg:
		m.reload()
		m.runEngine()
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	m.mouseX, m.mouseY = msg.X, msg.Y
	m.shift = msg.Shift

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.SetScroll(m.scrollX, m.scrollY-3)
		m.runEngine()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.SetScroll(m.scrollX, m.scrollY+3)
		m.runEngine()
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.mouseDown = true
		m.scrollbarDrag = m.overScrollbar(msg.X, msg.Y)
		m.clicks = m.streak.press(msg.X, msg.Y, time.Now())
		log.Debug(log.CatInput, "mouse press", "x", msg.X, "y", msg.Y, "clicks", m.clicks)
		m.runEngine()

	case tea.MouseActionMotion:
		if !m.mouseDown {
			return m, nil
		}
		m.runEngine()
		if !m.Hovered() && !m.autoTicking {
			m.autoTicking = true
			return m, m.autoscrollTick()
		}

	case tea.MouseActionRelease:
		m.mouseDown = false
		m.scrollbarDrag = false
		m.runEngine()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.SelectAll):
		m.selectAllReq = true
		m.runEngine()

	case key.Matches(msg, m.keyMap.Copy):
		// Ctrl+C copies when a selection exists and otherwise keeps its
		// usual meaning of quitting.
		if !m.engine.HasSelection() {
			return m, tea.Quit
		}
		m.copyReq = true
		m.runEngine()

	case key.Matches(msg, m.keyMap.Clear):
		m.engine.ClearSelection()
		m.statusMsg = ""
		m.runEngine()

	case key.Matches(msg, m.keyMap.Up):
		m.SetScroll(m.scrollX, m.scrollY-1)
		m.runEngine()
	case key.Matches(msg, m.keyMap.Down):
		m.SetScroll(m.scrollX, m.scrollY+1)
		m.runEngine()
	case key.Matches(msg, m.keyMap.PageUp):
		m.SetScroll(m.scrollX, m.scrollY-float64(m.height))
		m.runEngine()
	case key.Matches(msg, m.keyMap.PageDown):
		m.SetScroll(m.scrollX, m.scrollY+float64(m.height))
		m.runEngine()
	case key.Matches(msg, m.keyMap.Home):
		m.SetScroll(m.scrollX, 0)
		m.runEngine()
	case key.Matches(msg, m.keyMap.End):
		m.SetScroll(m.scrollX, float64(m.totalRows()))
		m.runEngine()

	case key.Matches(msg, m.keyMap.ToggleWrap):
		m.ToggleWordWrap()

	case key.Matches(msg, m.keyMap.Reload):
		m.reload()
		m.runEngine()
	}

	return m, nil
}

func (m *Model) reload() {
	if err := m.doc.Reload(); err != nil {
		log.ErrorErr(log.CatWatcher, "document reload failed", err)
		m.statusMsg = "reload failed"
		m.statusErr = true
		return
	}
	m.clampScroll()
	m.statusMsg = "reloaded"
	m.statusErr = false
}

// runEngine snapshots frame timing, runs one selection engine pass, and
// resets the per-frame input flags.
func (m *Model) runEngine() {
	now := time.Now()
	if !m.lastEngineRun.IsZero() {
		m.frameDelta = now.Sub(m.lastEngineRun)
		if m.frameDelta > maxFrameDelta {
			m.frameDelta = maxFrameDelta
		}
	}
	m.lastEngineRun = now

	m.rects = m.rects[:0]
	m.engine.Update(m)

	m.clicks = 0
	m.copyReq = false
	m.selectAllReq = false
}

func (m Model) autoscrollTick() tea.Cmd {
	return tea.Tick(autoscrollInterval, func(t time.Time) tea.Msg {
		return AutoscrollTickMsg(t)
	})
}

// contentWidth returns the columns available to text, excluding the
// scrollbar column.
func (m Model) contentWidth() int {
	if m.cfg.UI.ShowScrollbar && m.width > 0 {
		return m.width - 1
	}
	return m.width
}

func (m Model) overScrollbar(x, y int) bool {
	return m.cfg.UI.ShowScrollbar && x == m.width-1 && y < m.height
}

// totalRows returns the number of display rows including paragraph spacing.
func (m Model) totalRows() int {
	return len(m.displayRows())
}

// clampScroll keeps the scroll offsets within the scrollable range.
func (m *Model) clampScroll() {
	m.scrollX, m.scrollY = m.clampedScroll(m.scrollX, m.scrollY)
}

func (m Model) clampedScroll(x, y float64) (float64, float64) {
	maxY := float64(m.totalRows() - m.height)
	if maxY < 0 {
		maxY = 0
	}

	maxX := 0.0
	if !m.engine.WordWrap() {
		widest := 0
		for i := 0; i < m.doc.LineCount(); i++ {
			if w := textselect.StringDisplayWidth(m.doc.LineAt(i)); w > widest {
				widest = w
			}
		}
		maxX = float64(widest - m.contentWidth())
		if maxX < 0 {
			maxX = 0
		}
	}

	if x < 0 {
		x = 0
	} else if x > maxX {
		x = maxX
	}
	if y < 0 {
		y = 0
	} else if y > maxY {
		y = maxY
	}
	return x, y
}

// displayRows flattens the engine's sub-lines into renderable rows,
// inserting paragraph spacing rows between logical lines.
func (m Model) displayRows() []string {
	subLines := m.engine.SubLines(&m)

	rows := make([]string, 0, len(subLines))
	for i, sub := range subLines {
		rows = append(rows, sub.Text)
		if i+1 < len(subLines) && subLines[i+1].Line != sub.Line {
			for s := 0; s < m.cfg.UI.ParagraphSpacing; s++ {
				rows = append(rows, "")
			}
		}
	}
	return rows
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	rows := m.displayRows()
	top := int(m.scrollY)
	left := int(m.scrollX)
	contentWidth := m.contentWidth()

	out := make([]string, 0, m.height)
	for vr := 0; vr < m.height; vr++ {
		r := top + vr
		if r >= len(rows) {
			out = append(out, "")
			continue
		}

		visible := sliceFromDisplayCol(rows[r], left)
		visible = sliceToDisplayCol(visible, contentWidth)

		if span, ok := m.rowHighlight(vr); ok {
			startCol := max(0, span.MinX)
			endCol := min(span.MaxX, contentWidth)
			out = append(out, highlightSpan(visible, startCol, endCol))
		} else {
			out = append(out, styles.TextStyle.Render(visible))
		}
	}

	body := strings.Join(out, "\n")
	if !m.cfg.UI.ShowScrollbar {
		return body
	}

	bar := RenderScrollbar(ScrollbarConfig{
		TotalLines:     len(rows),
		ViewportHeight: m.height,
		ScrollOffset:   top,
		TrackChar:      string(scrollbarTrackChar),
		ThumbChar:      string(scrollbarThumbChar),
	})

	bodyBlock := lipgloss.NewStyle().Width(contentWidth).Height(m.height).Render(body)
	return lipgloss.JoinHorizontal(lipgloss.Top, bodyBlock, bar)
}

// rowHighlight returns the highlight span covering the given viewport row.
func (m Model) rowHighlight(vr int) (textselect.Rect, bool) {
	for _, r := range m.rects {
		if vr >= r.MinY && vr < r.MaxY {
			return r, true
		}
	}
	return textselect.Rect{}, false
}

// The methods below implement textselect.Host.

// MousePosition returns the pointer position in absolute cells.
func (m Model) MousePosition() (int, int) { return m.mouseX, m.mouseY }

// MouseDown reports whether the left button is held.
func (m Model) MouseDown() bool { return m.mouseDown }

// MouseClicks returns the click-streak count for a press this frame.
func (m Model) MouseClicks() int { return m.clicks }

// ShiftHeld reports whether shift was held during the press.
func (m Model) ShiftHeld() bool { return m.shift }

// Hovered reports whether the pointer is over the text content area.
func (m Model) Hovered() bool {
	return m.mouseX >= 0 && m.mouseX < m.contentWidth() &&
		m.mouseY >= 0 && m.mouseY < m.height
}

// ActiveTarget reports whether the viewer owns pointer input.
func (m Model) ActiveTarget() bool { return true }

// ScrollbarActive reports whether a scrollbar drag is in progress.
func (m Model) ScrollbarActive() bool { return m.scrollbarDrag }

// CopyRequested reports the copy shortcut for this frame.
func (m Model) CopyRequested() bool { return m.copyReq }

// SelectAllRequested reports the select-all shortcut for this frame.
func (m Model) SelectAllRequested() bool { return m.selectAllReq }

// DeltaTime returns the time since the previous engine pass.
func (m Model) DeltaTime() time.Duration { return m.frameDelta }

// ContentOrigin returns where content row 0, column 0 sits in viewport
// cells; it goes negative as the view scrolls.
func (m Model) ContentOrigin() (int, int) {
	return -int(m.scrollX), -int(m.scrollY)
}

// Bounds returns the visible content area.
func (m Model) Bounds() textselect.Rect {
	return textselect.Rect{MinX: 0, MinY: 0, MaxX: m.contentWidth(), MaxY: m.height}
}

// WrapWidth returns the wrap width, or 0 when wrapping is off.
func (m Model) WrapWidth() int {
	if !m.engine.WordWrap() {
		return 0
	}
	return m.contentWidth()
}

// LineHeight returns the height of one display row.
func (m Model) LineHeight() int { return 1 }

// ParagraphSpacing returns the configured extra rows between lines.
func (m Model) ParagraphSpacing() int { return m.cfg.UI.ParagraphSpacing }

// Scroll returns the current scroll offsets.
func (m Model) Scroll() (float64, float64) { return m.scrollX, m.scrollY }

// SetScroll replaces the scroll offsets, clamped to the scrollable range.
func (m *Model) SetScroll(x, y float64) {
	m.scrollX, m.scrollY = m.clampedScroll(x, y)
}

// MeasureText returns the display width of s in columns.
func (m Model) MeasureText(s string) int {
	return textselect.StringDisplayWidth(s)
}

// WrapLine word-wraps a logical line to the given width.
func (m Model) WrapLine(s string, width int) []string {
	wrapped := wrap.String(wordwrap.String(s, width), width)
	return strings.Split(wrapped, "\n")
}

// HighlightRect records a selection rect for the next View.
func (m *Model) HighlightRect(r textselect.Rect) {
	m.rects = append(m.rects, r)
}

// SetClipboard copies the selected text out.
func (m *Model) SetClipboard(text string) {
	if err := m.clip.Copy(text); err != nil {
		log.ErrorErr(log.CatClipboard, "copy failed", err)
		m.statusMsg = "copy failed"
		m.statusErr = true
		return
	}
	log.Info(log.CatClipboard, "copied selection", "chars", len(text))
	m.statusMsg = fmt.Sprintf("copied %d chars", len(text))
	m.statusErr = false
}

// SetPointerShape is a no-op; terminals do not expose the pointer cursor.
func (m Model) SetPointerShape(textselect.PointerShape) {}
