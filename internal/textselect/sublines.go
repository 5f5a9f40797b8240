package textselect

import "strings"

// SubLine is one display row of a logical line. When word wrap is off every
// logical line maps to exactly one SubLine; when it is on, a logical line
// maps to one or more.
type SubLine struct {
	// Text is the row's content, without the logical line's trailing
	// newline.
	Text string

	// Line is the index of the logical line this row belongs to.
	Line int

	// Offset is the grapheme index of Text within the logical line.
	// Selection endpoints are logical-line relative; Offset converts
	// between row-relative and line-relative indices.
	Offset int
}

// SubLines segments the current text into display rows. Segmentation is
// recomputed on every call; line content is never cached across frames, so
// host edits between frames are picked up immediately.
func (ts *TextSelect) SubLines(host Host) []SubLine {
	numLines := ts.lines.LineCount()

	// At minimum one sub-line per logical line.
	result := make([]SubLine, 0, numLines)

	wrapWidth := host.WrapWidth()
	for i := 0; i < numLines; i++ {
		whole := trimLineEnding(ts.lines.LineAt(i))

		if !ts.wordWrap || wrapWidth <= 0 {
			result = append(result, SubLine{Text: whole, Line: i})
			continue
		}

		result = append(result, segmentLine(whole, i, host.WrapLine(whole, wrapWidth))...)
	}
	return result
}

// segmentLine maps the host's wrapped rows back onto the logical line,
// assigning each row its grapheme offset. Word wrap drops whitespace at
// wrap points; those graphemes are skipped when locating the next row.
// An empty logical line yields exactly one empty sub-line, never zero.
func segmentLine(whole string, lineIdx int, rows []string) []SubLine {
	subs := make([]SubLine, 0, len(rows))

	offset := 0
	rest := whole
	for _, row := range rows {
		if row == "" {
			continue
		}

		// Advance past graphemes the wrapper trimmed at the break point
		// (trailing whitespace of the previous row).
		for len(rest) > 0 && !strings.HasPrefix(rest, row) {
			_, rest = nextGrapheme(rest)
			offset++
		}
		// A row the wrapper invented out of thin air cannot be mapped back
		// onto the logical line; stop rather than mis-assign offsets.
		if !strings.HasPrefix(rest, row) {
			break
		}

		subs = append(subs, SubLine{Text: row, Line: lineIdx, Offset: offset})
		offset += GraphemeCount(row)
		rest = rest[len(row):]
	}

	if len(subs) == 0 {
		subs = append(subs, SubLine{Text: "", Line: lineIdx})
	}
	return subs
}

// trimLineEnding strips one trailing newline (or CRLF) from a logical line.
// The newline occupies no columns and would otherwise wrap into a spurious
// empty row. Whole-line character counts (select-all, triple click on the
// last line) still use the untrimmed text.
func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
