package textselect

import "strings"

// SelectedText assembles the selected text. Segments are joined with a
// newline unless a segment already carries its own, so hosts may expose
// lines with or without trailing newlines. A stale selection that
// references lines past the current end of the text yields nothing.
func (ts *TextSelect) SelectedText() string {
	sel, ok := ts.Selection()
	if !ok {
		return ""
	}

	numLines := ts.lines.LineCount()
	if sel.StartY >= numLines || sel.EndY >= numLines {
		return ""
	}

	var sb strings.Builder
	for y := sel.StartY; y <= sel.EndY; y++ {
		line := ts.lines.LineAt(y)

		start := 0
		if y == sel.StartY {
			start = sel.StartX
		}
		end := GraphemeCount(line)
		if y == sel.EndY && sel.EndX < end {
			end = sel.EndX
		}

		segment := SliceByGraphemes(line, start, end)
		sb.WriteString(segment)
		if y < sel.EndY && !strings.HasSuffix(segment, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Copy places the selected text on the host's clipboard. A no-op when no
// complete selection exists or the selection's lines no longer do.
func (ts *TextSelect) Copy(host Host) {
	sel, ok := ts.Selection()
	if !ok || sel.EndY >= ts.lines.LineCount() {
		return
	}
	host.SetClipboard(ts.SelectedText())
}
