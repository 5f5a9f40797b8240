package viewer

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/zjrosen/textselect/internal/ui/styles"
)

// highlightSpan applies the selection style to the display columns
// [startCol, endCol) of a rendered row. Column arithmetic is grapheme
// aware so wide characters never get split by the style boundaries.
func highlightSpan(row string, startCol, endCol int) string {
	if startCol >= endCol {
		return styles.TextStyle.Render(row)
	}

	left := sliceToDisplayCol(row, startCol)
	mid := sliceByDisplayCols(row, startCol, endCol)
	right := sliceFromDisplayCol(row, endCol)

	// The highlight may extend past the text (newline cell); pad with
	// spaces so the background is visible.
	pad := endCol - startCol - uniseg.StringWidth(mid)
	if pad > 0 && right == "" {
		mid += strings.Repeat(" ", pad)
	}

	var b strings.Builder
	if left != "" {
		b.WriteString(styles.TextStyle.Render(left))
	}
	b.WriteString(styles.SelectionStyle.Render(mid))
	if right != "" {
		b.WriteString(styles.TextStyle.Render(right))
	}
	return b.String()
}

// sliceByDisplayCols extracts a substring between display column positions.
// This properly handles wide characters like emojis.
func sliceByDisplayCols(s string, startCol, endCol int) string {
	if startCol >= endCol || s == "" {
		return ""
	}

	var result strings.Builder
	currentCol := 0
	state := -1

	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		width := uniseg.StringWidth(cluster)

		// Check if this cluster is within our selection range
		clusterEnd := currentCol + width
		if currentCol >= startCol && clusterEnd <= endCol {
			result.WriteString(cluster)
		} else if currentCol < endCol && clusterEnd > startCol {
			// Cluster partially overlaps - include it
			result.WriteString(cluster)
		}

		currentCol = clusterEnd
		if currentCol >= endCol {
			break
		}

		s = rest
		state = newState
	}

	return result.String()
}

// sliceFromDisplayCol extracts substring from a display column to end of string.
func sliceFromDisplayCol(s string, startCol int) string {
	if startCol <= 0 {
		return s
	}
	if s == "" {
		return ""
	}

	currentCol := 0
	state := -1

	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		width := uniseg.StringWidth(cluster)

		if currentCol >= startCol {
			// Return from current position
			return s
		}

		currentCol += width
		s = rest
		state = newState
	}

	return "" // Past end of string
}

// sliceToDisplayCol extracts substring from start to a display column.
func sliceToDisplayCol(s string, endCol int) string {
	if endCol <= 0 {
		return ""
	}
	if s == "" {
		return ""
	}

	var result strings.Builder
	currentCol := 0
	state := -1

	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		width := uniseg.StringWidth(cluster)

		if currentCol+width > endCol {
			break
		}

		result.WriteString(cluster)
		currentCol += width
		s = rest
		state = newState
	}

	return result.String()
}
