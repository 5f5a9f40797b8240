package textselect

// MeasureFunc returns the display width of a string in columns. Hosts
// provide their own; StringDisplayWidth is the terminal default.
type MeasureFunc func(s string) int

// charIndexAt maps a column offset to the grapheme index under it using an
// iterative binary search over measured prefix widths. Grapheme i occupies
// the half-open column span [width(prefix of i), width(prefix of i+1)).
//
// Degenerate inputs clamp instead of failing: a negative offset or an empty
// line returns 0, and an offset at or past the end of the line returns the
// line's grapheme count. The search is iterative with explicit bounds so a
// single multi-megabyte line cannot exhaust the stack.
func charIndexAt(s string, x int, measure MeasureFunc) int {
	if x < 0 {
		return 0
	}
	if s == "" {
		return 0
	}

	count := GraphemeCount(s)
	lo, hi := 0, count

	for lo <= hi {
		mid := lo + (hi-lo)/2

		// Width of the prefix ending before mid: the column where the
		// mid-th grapheme starts.
		widthToMidEx := measure(SliceByGraphemes(s, 0, mid))
		// Width including mid: the column where the next grapheme starts.
		widthToMid := measure(SliceByGraphemes(s, 0, mid+1))

		switch {
		case x < widthToMidEx:
			hi = mid - 1
		case x >= widthToMid:
			lo = mid + 1
		default:
			return mid
		}
	}

	// Exhausted range: the offset lies past the last grapheme.
	return count
}
