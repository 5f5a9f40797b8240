package textselect

import (
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// fakeLines serves a fixed slice of logical lines.
type fakeLines struct {
	lines []string
}

func (f fakeLines) LineAt(i int) string {
	return f.lines[i]
}

func (f fakeLines) LineCount() int {
	return len(f.lines)
}

// fakeHost is a scriptable Host for driving the engine frame by frame.
// Input fields are set directly by tests; output commands are recorded.
type fakeHost struct {
	mouseX, mouseY  int
	mouseDown       bool
	clicks          int
	shift           bool
	hovered         bool
	activeTarget    bool
	scrollbarActive bool
	copyReq         bool
	selectAllReq    bool
	dt              time.Duration

	originX, originY int
	bounds           Rect
	wrapWidth        int
	lineHeight       int
	spacing          int
	scrollX, scrollY float64

	rects     []Rect
	clipboard string
	pointer   PointerShape
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		hovered:      true,
		activeTarget: true,
		dt:           16 * time.Millisecond,
		bounds:       Rect{MinX: 0, MinY: 0, MaxX: 80, MaxY: 24},
		lineHeight:   1,
	}
}

func (h *fakeHost) MousePosition() (int, int) { return h.mouseX, h.mouseY }
func (h *fakeHost) MouseDown() bool { return h.mouseDown }
func (h *fakeHost) MouseClicks() int { return h.clicks }
func (h *fakeHost) ShiftHeld() bool { return h.shift }
func (h *fakeHost) Hovered() bool { return h.hovered }
func (h *fakeHost) ActiveTarget() bool { return h.activeTarget }
func (h *fakeHost) ScrollbarActive() bool { return h.scrollbarActive }
func (h *fakeHost) CopyRequested() bool { return h.copyReq }
func (h *fakeHost) SelectAllRequested() bool { return h.selectAllReq }
func (h *fakeHost) DeltaTime() time.Duration { return h.dt }
func (h *fakeHost) ContentOrigin() (int, int) { return h.originX, h.originY }
func (h *fakeHost) Bounds() Rect { return h.bounds }
func (h *fakeHost) WrapWidth() int { return h.wrapWidth }
func (h *fakeHost) LineHeight() int { return h.lineHeight }
func (h *fakeHost) ParagraphSpacing() int { return h.spacing }
func (h *fakeHost) Scroll() (float64, float64) { return h.scrollX, h.scrollY }
func (h *fakeHost) SetScroll(x, y float64) { h.scrollX, h.scrollY = x, y }
func (h *fakeHost) MeasureText(s string) int { return StringDisplayWidth(s) }
func (h *fakeHost) HighlightRect(r Rect) { h.rects = append(h.rects, r) }
func (h *fakeHost) SetClipboard(text string) { h.clipboard = text }
func (h *fakeHost) SetPointerShape(s PointerShape) { h.pointer = s }

func (h *fakeHost) WrapLine(s string, width int) []string {
	wrapped := wrap.String(wordwrap.String(s, width), width)
	return strings.Split(wrapped, "\n")
}

// frame runs one engine update with per-frame output cleared first.
func (h *fakeHost) frame(ts *TextSelect) {
	h.rects = nil
	ts.Update(h)
	h.clicks = 0
	h.copyReq = false
	h.selectAllReq = false
}

// press simulates a button press at the given absolute cell.
func (h *fakeHost) press(ts *TextSelect, x, y, clicks int) {
	h.mouseX, h.mouseY = x, y
	h.mouseDown = true
	h.clicks = clicks
	h.frame(ts)
}

// drag simulates pointer movement with the button still held.
func (h *fakeHost) drag(ts *TextSelect, x, y int) {
	h.mouseX, h.mouseY = x, y
	h.mouseDown = true
	h.frame(ts)
}

// release simulates letting go of the button.
func (h *fakeHost) release(ts *TextSelect) {
	h.mouseDown = false
	h.frame(ts)
}
