// Package textselect implements mouse-driven text selection for read-only
// text rendered by a host view. The engine owns nothing but two selection
// endpoints: line content is fetched on demand through the Lines interface,
// input and geometry are queried from the Host each frame, and output is
// issued as highlight, clipboard, and scroll commands. It is single
// threaded and designed to be driven once per UI frame.
package textselect

// TextSelect tracks a selection over the host's text.
//
// The endpoints move through three states: uninitialized (both invalid),
// pending (start set by a click, end invalid), and complete (both valid).
// Copy and drawing act only on a complete selection.
type TextSelect struct {
	lines    Lines
	wordWrap bool

	// Selection endpoints in chronological order; the earlier endpoint is
	// not necessarily the upper-left one. Normalized on read.
	selStart CursorPos
	selEnd   CursorPos

	// Armed by a press over the content and cleared on release, so a drag
	// that began over another widget does not move the selection.
	shouldHandleMouse bool
}

// Option configures a TextSelect.
type Option func(*TextSelect)

// WithWordWrap enables sub-line segmentation at the host's wrap width.
func WithWordWrap() Option {
	return func(ts *TextSelect) {
		ts.wordWrap = true
	}
}

// New creates a TextSelect reading text through lines.
func New(lines Lines, opts ...Option) *TextSelect {
	ts := &TextSelect{
		lines:    lines,
		selStart: invalidPos,
		selEnd:   invalidPos,
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

// WordWrap reports whether sub-line segmentation is enabled.
func (ts *TextSelect) WordWrap() bool {
	return ts.wordWrap
}

// SetWordWrap toggles sub-line segmentation. Takes effect on the next
// update; nothing is cached between frames.
func (ts *TextSelect) SetWordWrap(enabled bool) {
	ts.wordWrap = enabled
}

// HasSelection reports whether a complete selection exists.
func (ts *TextSelect) HasSelection() bool {
	return !ts.selStart.Invalid() && !ts.selEnd.Invalid()
}

// ClearSelection resets both endpoints to the uninitialized state.
func (ts *TextSelect) ClearSelection() {
	ts.selStart = invalidPos
	ts.selEnd = invalidPos
}

// Selection returns the normalized selection range. ok is false when no
// complete selection exists.
func (ts *TextSelect) Selection() (sel Selection, ok bool) {
	if !ts.HasSelection() {
		return Selection{}, false
	}
	return normalizeSelection(ts.selStart, ts.selEnd), true
}

// SelectAll selects from the beginning of the first line to the end of the
// last line. A no-op when there are no lines.
func (ts *TextSelect) SelectAll() {
	numLines := ts.lines.LineCount()
	if numLines == 0 {
		return
	}

	lastLineIdx := numLines - 1
	ts.selStart = CursorPos{X: 0, Y: 0}
	ts.selEnd = CursorPos{X: GraphemeCount(ts.lines.LineAt(lastLineIdx)), Y: lastLineIdx}
}

// Update runs one frame of input handling, selection drawing, and shortcut
// dispatch. Call it once per host frame after the text has been laid out.
func (ts *TextSelect) Update(host Host) {
	hovered := host.Hovered()
	if hovered {
		host.SetPointerShape(PointerText)
	}

	subLines := ts.SubLines(host)

	clicks := host.MouseClicks()
	if clicks > 0 && hovered {
		ts.shouldHandleMouse = true
	}
	if !host.MouseDown() {
		ts.shouldHandleMouse = false
	}

	if host.MouseDown() {
		if ts.shouldHandleMouse {
			ts.handleMouseDown(host, subLines, clicks)
		}
		if !hovered {
			ts.handleScrolling(host)
		}
	}

	ts.drawSelection(host, subLines)

	if host.SelectAllRequested() {
		ts.SelectAll()
	} else if host.CopyRequested() {
		ts.Copy(host)
	}
}

// handleMouseDown interprets a press or an ongoing drag. clicks is the
// click count for a press completed this frame (0 while dragging).
func (ts *TextSelect) handleMouseDown(host Host, subLines []SubLine, clicks int) {
	if len(subLines) == 0 {
		return
	}

	mouseX, mouseY := host.MousePosition()
	originX, originY := host.ContentOrigin()
	relX := mouseX - originX
	relY := mouseY - originY

	subY := subLineIndexAt(subLines, relY, host.LineHeight(), host.ParagraphSpacing())
	sub := subLines[subY]

	wholeY := sub.Line
	wholeLine := ts.lines.LineAt(wholeY)

	// Row-relative hit test, then shift by the graphemes of preceding
	// sub-lines of the same logical line.
	wholeX := charIndexAt(sub.Text, relX, host.MeasureText) + sub.Offset

	switch {
	case clicks > 0 && clicks%3 == 0:
		ts.selectLine(wholeX, wholeY, wholeLine)
	case clicks > 0 && clicks%2 == 0:
		ts.selectWord(wholeX, wholeY, wholeLine)
	case clicks > 0 && host.ShiftHeld():
		// Extend from the existing start, or from the origin when no
		// selection has been started yet.
		if ts.selStart.Invalid() {
			ts.selStart = CursorPos{X: 0, Y: 0}
		}
		ts.selEnd = CursorPos{X: wholeX, Y: wholeY}
	case clicks > 0:
		// Plain click: place the start, leave the end pending until a drag
		// or shift-click completes it.
		ts.selStart = CursorPos{X: wholeX, Y: wholeY}
		ts.selEnd = invalidPos
	default:
		// Button held with no new click: drag extends the end only.
		ts.selEnd = CursorPos{X: wholeX, Y: wholeY}
	}
}

// selectLine implements triple click: the whole logical line, extended
// through the start of the next line so the rendered newline is included,
// except on the last line where it runs to the line's end.
func (ts *TextSelect) selectLine(_ int, wholeY int, wholeLine string) {
	atLastLine := wholeY == ts.lines.LineCount()-1

	ts.selStart = CursorPos{X: 0, Y: wholeY}
	if atLastLine {
		ts.selEnd = CursorPos{X: GraphemeCount(wholeLine), Y: wholeY}
	} else {
		ts.selEnd = CursorPos{X: 0, Y: wholeY + 1}
	}
}

// selectWord implements double click: expand outward from the clicked
// grapheme while the boundary classification matches, selecting a maximal
// run of boundary or non-boundary characters.
func (ts *TextSelect) selectWord(wholeX, wholeY int, wholeLine string) {
	count := GraphemeCount(wholeLine)
	if count == 0 {
		ts.selStart = CursorPos{X: 0, Y: wholeY}
		ts.selEnd = CursorPos{X: 0, Y: wholeY}
		return
	}

	// A click past the end of the line classifies like the last grapheme.
	clicked := wholeX
	if clicked >= count {
		clicked = count - 1
	}
	currentBoundary := isBoundary(firstRune(GraphemeAt(wholeLine, clicked)))

	// Scan left until the classification flips.
	for i := clicked; i >= 0; i-- {
		if isBoundary(firstRune(GraphemeAt(wholeLine, i))) != currentBoundary {
			break
		}
		ts.selStart = CursorPos{X: i, Y: wholeY}
	}

	// Scan right; the end is exclusive, so it advances one past the run.
	for end := clicked; end <= count; end++ {
		ts.selEnd = CursorPos{X: end, Y: wholeY}
		if end == count {
			break
		}
		if isBoundary(firstRune(GraphemeAt(wholeLine, end))) != currentBoundary {
			break
		}
	}
}

// subLineIndexAt maps a content-relative row offset to a sub-line index by
// accumulating line heights. Paragraph spacing applies between logical
// lines only, never between sub-lines of one wrapped line. Offsets past the
// last sub-line clamp to it.
func subLineIndexAt(subLines []SubLine, relY, lineHeight, paragraphSpacing int) int {
	subY := 0
	accumulatedHeight := lineHeight
	for i := 1; i < len(subLines); i++ {
		if relY < accumulatedHeight {
			break
		}
		subY++
		accumulatedHeight += lineHeight
		if subLines[i].Line != subLines[i-1].Line {
			accumulatedHeight += paragraphSpacing
		}
	}
	return subY
}
