package textselect

// drawSelection emits one highlight rect per display row covered by the
// current selection. Rows are walked top to bottom with the same height
// accumulation as hit testing, so highlights land exactly where clicks do.
// A stale selection whose lines no longer exist (the host shrank the text
// between frames) draws nothing.
func (ts *TextSelect) drawSelection(host Host, subLines []SubLine) {
	sel, ok := ts.Selection()
	if !ok {
		return
	}

	numLines := ts.lines.LineCount()
	if sel.StartY >= numLines || sel.EndY >= numLines {
		return
	}

	originX, originY := host.ContentOrigin()
	lineHeight := host.LineHeight()
	paragraphSpacing := host.ParagraphSpacing()
	newlineWidth := host.MeasureText(" ")

	rowTop := 0
	for i, sub := range subLines {
		top := rowTop

		rowTop += lineHeight
		if i+1 < len(subLines) && subLines[i+1].Line != sub.Line {
			rowTop += paragraphSpacing
		}

		if sub.Line < sel.StartY {
			continue
		}
		if sub.Line > sel.EndY {
			break
		}

		count := GraphemeCount(sub.Text)
		lastOfLine := i+1 == len(subLines) || subLines[i+1].Line != sub.Line

		startCh := 0
		if sub.Line == sel.StartY {
			startCh = clampInt(sel.StartX-sub.Offset, 0, count)
			// Row lies at or wholly before the start. A start exactly at
			// the row's end belongs to the next row, not this one.
			if sel.StartX-sub.Offset >= count && sub.Line < sel.EndY {
				continue
			}
		}

		endCh := count
		if sub.Line == sel.EndY {
			// Row lies wholly after the end within a wrapped line.
			if sel.EndX-sub.Offset < 0 {
				continue
			}
			endCh = clampInt(sel.EndX-sub.Offset, 0, count)
		}

		minX := host.MeasureText(SliceByGraphemes(sub.Text, 0, startCh))
		maxX := host.MeasureText(SliceByGraphemes(sub.Text, 0, endCh))

		// A fully selected line shows its newline as one extra cell, and
		// its highlight runs on through the paragraph spacing below it.
		bottom := top + lineHeight
		if lastOfLine && sub.Line < sel.EndY {
			maxX += newlineWidth
			bottom += paragraphSpacing
		}

		if minX == maxX {
			continue
		}

		host.HighlightRect(Rect{
			MinX: originX + minX,
			MinY: originY + top,
			MaxX: originX + maxX,
			MaxY: originY + bottom,
		})
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
