package textselect

// invalidIndex marks an endpoint coordinate that has not been set.
const invalidIndex = -1

// CursorPos is a position in the text: X is a grapheme index within the
// logical line, Y is the logical line index. Either coordinate may hold the
// invalid sentinel; a position is invalid if either does.
type CursorPos struct {
	X int
	Y int
}

// invalidPos is the reset value for selection endpoints.
var invalidPos = CursorPos{X: invalidIndex, Y: invalidIndex}

// Invalid reports whether the position carries a sentinel coordinate.
func (p CursorPos) Invalid() bool {
	return p.X == invalidIndex || p.Y == invalidIndex
}

// Selection is a normalized selection range: StartY <= EndY always, and
// StartX <= EndX when both endpoints share a line.
type Selection struct {
	StartX int
	StartY int
	EndX   int
	EndY   int
}

// normalizeSelection orders two endpoints chronologically by (y, then x) and
// returns the line-ordered range. The endpoints may arrive reversed: the
// user can drag up or left, which swaps which endpoint was placed first.
func normalizeSelection(a, b CursorPos) Selection {
	aFirst := a.Y < b.Y || (a.Y == b.Y && a.X < b.X)

	startX, endX := a.X, b.X
	if !aFirst {
		startX, endX = b.X, a.X
	}

	startY, endY := a.Y, b.Y
	if startY > endY {
		startY, endY = endY, startY
	}

	return Selection{StartX: startX, StartY: startY, EndX: endX, EndY: endY}
}
