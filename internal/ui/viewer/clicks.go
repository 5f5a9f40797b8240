package viewer

import "time"

const (
	// multiClickThreshold is the longest gap between presses that still
	// extends a click streak.
	multiClickThreshold = 350 * time.Millisecond

	// multiClickMaxDist is how far (in cells) consecutive presses may move
	// and still count as the same streak.
	multiClickMaxDist = 1
)

// clickStreak counts consecutive rapid presses in place. The count keeps
// climbing for as long as the streak continues (1, 2, 3, 4, ...); the
// selection engine applies its modulo rules on top.
type clickStreak struct {
	count    int
	lastAt   time.Time
	lastX    int
	lastY    int
}

// press records a press and returns the streak's click count.
func (c *clickStreak) press(x, y int, at time.Time) int {
	sameSpot := intAbs(x-c.lastX) <= multiClickMaxDist && intAbs(y-c.lastY) <= multiClickMaxDist
	inTime := c.count > 0 && at.Sub(c.lastAt) <= multiClickThreshold

	if inTime && sameSpot {
		c.count++
	} else {
		c.count = 1
	}

	c.lastAt = at
	c.lastX, c.lastY = x, y
	return c.count
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
