package textselect

import "time"

// Lines provides read-only access to the text under selection.
// The engine never stores line content; it re-reads lines through this
// interface on every update so the host remains the single source of truth.
// Implementations must be cheap and side-effect free, as the engine may call
// them several times per frame.
type Lines interface {
	// LineAt returns the text of the 0-based logical line.
	LineAt(i int) string

	// LineCount returns the total number of logical lines.
	LineCount() int
}

// PointerShape is a mouse cursor hint issued while the pointer hovers the
// text. Terminal hosts that cannot change the pointer may ignore it.
type PointerShape int

const (
	PointerDefault PointerShape = iota
	PointerText
)

// Rect is a rectangle in cells. X values are display columns, Y values are
// rows; both Max bounds are exclusive, so the rect covers
// [MinX, MaxX) x [MinY, MaxY) on a cell grid.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether the given point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Host is the per-frame contract between the selection engine and the view
// that embeds it. The engine queries input and geometry, measures text, and
// issues output commands; it holds no reference to host state between
// frames. All coordinates are terminal cells: columns on X, rows on Y.
type Host interface {
	// Input state for the current frame.

	// MousePosition returns the pointer position in absolute cells.
	MousePosition() (x, y int)
	// MouseDown reports whether the primary button is currently held.
	MouseDown() bool
	// MouseClicks returns the consecutive-click count for a press completed
	// this frame, or 0 when no press occurred. Counts keep increasing for
	// rapid clicks in place (1, 2, 3, 4, ...).
	MouseClicks() int
	// ShiftHeld reports whether shift was held during the press.
	ShiftHeld() bool
	// Hovered reports whether the pointer is over the text content area.
	Hovered() bool
	// ActiveTarget reports whether this view owns pointer input. A drag that
	// started on another widget must not move the selection here.
	ActiveTarget() bool
	// ScrollbarActive reports whether the pointer is interacting with a
	// scrollbar; autoscroll is suppressed while it is.
	ScrollbarActive() bool
	// CopyRequested and SelectAllRequested report shortcut activation for
	// the current frame.
	CopyRequested() bool
	SelectAllRequested() bool
	// DeltaTime returns the time elapsed since the previous frame, used to
	// scale autoscroll speed.
	DeltaTime() time.Duration

	// Geometry.

	// ContentOrigin returns the absolute position of line 0, column 0 of the
	// content, already adjusted for scrolling (it moves up and left as the
	// view scrolls down and right).
	ContentOrigin() (x, y int)
	// Bounds returns the visible window area in absolute cells.
	Bounds() Rect
	// WrapWidth returns the column width used for word wrapping.
	WrapWidth() int
	// LineHeight returns the height of one rendered (sub-)line in rows.
	LineHeight() int
	// ParagraphSpacing returns the extra rows between logical lines. No
	// spacing is applied between sub-lines of one wrapped logical line.
	ParagraphSpacing() int
	// Scroll returns the current scroll offsets. Offsets are fractional so
	// autoscroll can move at speeds below one cell per frame.
	Scroll() (x, y float64)
	// SetScroll replaces the scroll offsets.
	SetScroll(x, y float64)

	// Text primitives.

	// MeasureText returns the display width of s in columns.
	MeasureText(s string) int
	// WrapLine word-wraps a single logical line to the given width and
	// returns the resulting display rows, at least one even for empty input.
	WrapLine(s string, width int) []string

	// Output commands.

	// HighlightRect requests a filled selection rectangle in absolute cells,
	// already translated by the content origin.
	HighlightRect(r Rect)
	// SetClipboard places text on the system clipboard.
	SetClipboard(text string)
	// SetPointerShape sets the mouse cursor hint.
	SetPointerShape(s PointerShape)
}
