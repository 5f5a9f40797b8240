package viewer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/textselect/internal/clipboard"
	"github.com/zjrosen/textselect/internal/config"
	"github.com/zjrosen/textselect/internal/document"
)

func newTestViewer(content string) (Model, *clipboard.Mock) {
	clip := &clipboard.Mock{}
	doc := document.FromString("test.txt", content)

	cfg := config.Defaults()
	cfg.UI.ShowScrollbar = false

	m := New(doc, cfg, clip)
	m.SetSize(40, 10)
	return m, clip
}

func mousePress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func mouseMotion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func mouseRelease(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestDragSelection(t *testing.T) {
	m, _ := newTestViewer("hello world\nsecond line")

	m, _ = m.Update(mousePress(2, 0))
	m, _ = m.Update(mouseMotion(6, 0))
	m, _ = m.Update(mouseRelease(6, 0))

	require.True(t, m.HasSelection())
	assert.Equal(t, "llo ", m.SelectedText())
}

func TestDragAcrossLines(t *testing.T) {
	m, _ := newTestViewer("abc\ndefg")

	m, _ = m.Update(mousePress(1, 0))
	m, _ = m.Update(mouseMotion(2, 1))

	assert.Equal(t, "bc\nde", m.SelectedText())
}

func TestDoubleClickThroughStreak(t *testing.T) {
	m, _ := newTestViewer("hello, world")

	m, _ = m.Update(mousePress(8, 0))
	m, _ = m.Update(mouseRelease(8, 0))
	m, _ = m.Update(mousePress(8, 0))

	assert.Equal(t, "world", m.SelectedText())
}

func TestTripleClickThroughStreak(t *testing.T) {
	m, _ := newTestViewer("first line\nsecond")

	for i := 0; i < 3; i++ {
		m, _ = m.Update(mousePress(3, 0))
		m, _ = m.Update(mouseRelease(3, 0))
	}

	assert.Equal(t, "first line\n", m.SelectedText())
}

func TestCtrlAThenCtrlCCopies(t *testing.T) {
	m, clip := newTestViewer("abc\ndef")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	require.True(t, m.HasSelection())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, "abc\ndef", clip.Last())

	status, isErr := m.Status()
	assert.Contains(t, status, "copied")
	assert.False(t, isErr)
}

func TestCtrlCWithoutSelectionQuits(t *testing.T) {
	m, clip := newTestViewer("abc")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, clip.Copied)
}

func TestEscClearsSelection(t *testing.T) {
	m, _ := newTestViewer("abc")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	require.True(t, m.HasSelection())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, m.HasSelection())
}

func TestWheelScrollClamped(t *testing.T) {
	content := strings.Repeat("line\n", 50)
	m, _ := newTestViewer(content)

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	_, y := m.Scroll()
	assert.InDelta(t, 3.0, y, 1e-9)

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	_, y = m.Scroll()
	assert.Zero(t, y, "scrolling up past the top clamps to zero")
}

func TestViewShowsContent(t *testing.T) {
	m, _ := newTestViewer("hello world")

	view := m.View()
	assert.Contains(t, view, "hello world")
}

func TestViewScrolledContent(t *testing.T) {
	m, _ := newTestViewer("one\ntwo\nthree\nfour")
	m.SetSize(10, 2)
	m.SetScroll(0, 2)

	view := m.View()
	assert.NotContains(t, view, "one")
	assert.Contains(t, view, "three")
}

func TestWordWrapToggle(t *testing.T) {
	m, _ := newTestViewer("a long line that will definitely wrap somewhere")
	m.SetSize(10, 10)

	require.False(t, m.WordWrap())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	assert.True(t, m.WordWrap())
}

func TestReloadMsg(t *testing.T) {
	m, _ := newTestViewer("original")

	m, _ = m.Update(ReloadMsg{})
	status, isErr := m.Status()
	assert.Equal(t, "reloaded", status)
	assert.False(t, isErr)
}

func TestSelectionSurvivesRelease(t *testing.T) {
	m, _ := newTestViewer("persistent text")

	m, _ = m.Update(mousePress(0, 0))
	m, _ = m.Update(mouseMotion(10, 0))
	m, _ = m.Update(mouseRelease(10, 0))
	m, _ = m.Update(mouseMotion(3, 0))

	assert.Equal(t, "persistent", m.SelectedText())
}
